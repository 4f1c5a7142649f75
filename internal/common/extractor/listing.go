package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/project-tktt/go-jobscraper/internal/common/chain"
	"github.com/sirupsen/logrus"
)

// heuristicBlocks are the block-level tags scanned by the last-resort
// container fallback.
const heuristicBlocks = "div, li, article, section"

// RawListing is one fragment's extracted fields before normalization.
// Optional fields may be empty here; defaults are applied downstream.
type RawListing struct {
	Title      string
	Company    string
	Location   string
	Experience string
	ApplyLink  string
}

// Listings extracts up to limit listing fragments from a parsed page.
//
// Container rules are tried in order; the first rule matching at least one
// node supplies all fragments (results are never merged across container
// rules). If no rule matches, a generic heuristic scans block elements whose
// class contains "job" or "tuple". Fragments missing title or apply link are
// dropped; a broken fragment is skipped, never aborts the loop.
func Listings(doc *goquery.Document, rules FieldRules, limit int, log logrus.FieldLogger) []RawListing {
	fragments, ok := chain.First(rules.Container, func(rule Rule) (*goquery.Selection, bool) {
		sel := doc.Find(rule)
		return sel, sel.Length() > 0
	})
	if ok {
		log.WithField("fragments", fragments.Length()).Debug("container rule matched")
	} else {
		fragments = heuristicFragments(doc)
		log.WithField("fragments", fragments.Length()).Debug("falling back to class heuristic")
	}

	var out []RawListing
	fragments.EachWithBreak(func(i int, frag *goquery.Selection) bool {
		if i >= limit {
			return false
		}
		listing, ok := extractFragment(frag, rules, log)
		if ok {
			out = append(out, listing)
		}
		return true
	})

	return out
}

// heuristicFragments is the last-resort container scan. It ranks below every
// explicit rule and offers no precision guarantee; the title+link requirement
// downstream is the only filter on its false positives.
func heuristicFragments(doc *goquery.Document) *goquery.Selection {
	return doc.Find(heuristicBlocks).FilterFunction(func(_ int, s *goquery.Selection) bool {
		class := strings.ToLower(s.AttrOr("class", ""))
		return strings.Contains(class, "job") || strings.Contains(class, "tuple")
	})
}

// extractFragment pulls the field set out of one fragment. A panic inside a
// malformed fragment is recovered and reported as a miss.
func extractFragment(frag *goquery.Selection, rules FieldRules, log logrus.FieldLogger) (listing RawListing, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Warn("skipping malformed fragment")
			ok = false
		}
	}()

	listing.Title, _ = FirstText(frag, rules.Title)
	listing.Company, _ = FirstText(frag, rules.Company)
	listing.Location, _ = FirstText(frag, rules.Location)
	listing.Experience, _ = FirstText(frag, rules.Experience)

	// Apply link: re-walk the title rules reading each candidate's href.
	listing.ApplyLink, _ = FirstAttr(frag, rules.Title, "href")

	if listing.Title == "" || listing.ApplyLink == "" {
		return RawListing{}, false
	}
	return listing, true
}
