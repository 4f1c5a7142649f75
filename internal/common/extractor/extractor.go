package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/project-tktt/go-jobscraper/internal/common/chain"
)

// Rule is a single CSS selector tried against a scope. Rules for one field
// are ordered by priority: the list encodes which markup variants a source
// has used over time. New rules are appended, never replace old ones.
type Rule = string

// FieldRules holds the selector fallback chains for one source.
type FieldRules struct {
	// Container locates the repeating listing fragments on the page
	Container []Rule
	// Per-field rules, applied within each fragment.
	// Title doubles as the apply-link chain: the same rules are re-walked
	// reading href instead of text.
	Title      []Rule
	Company    []Rule
	Location   []Rule
	Experience []Rule
}

// FirstText returns the trimmed text of the first rule whose first match has
// non-empty text. A rule that matches an empty node fails that rung and the
// chain moves on.
func FirstText(scope *goquery.Selection, rules []Rule) (string, bool) {
	return chain.First(rules, func(rule Rule) (string, bool) {
		node := scope.Find(rule).First()
		if node.Length() == 0 {
			return "", false
		}
		text := strings.TrimSpace(node.Text())
		return text, text != ""
	})
}

// FirstAttr walks rules the same way but reads attr off the matched node
// itself, with no descendant search. Rules selecting nodes without the
// attribute fail that rung.
func FirstAttr(scope *goquery.Selection, rules []Rule, attr string) (string, bool) {
	return chain.First(rules, func(rule Rule) (string, bool) {
		node := scope.Find(rule).First()
		if node.Length() == 0 {
			return "", false
		}
		val := strings.TrimSpace(node.AttrOr(attr, ""))
		return val, val != ""
	})
}
