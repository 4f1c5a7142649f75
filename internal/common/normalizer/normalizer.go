package normalizer

import (
	"html"
	"net/url"
	"strings"

	"github.com/project-tktt/go-jobscraper/internal/common/cleaner"
	"github.com/project-tktt/go-jobscraper/internal/common/extractor"
	"github.com/project-tktt/go-jobscraper/internal/domain"
)

// Normalizer converts raw extracted listings to the normalized Job format
type Normalizer struct {
	cleaner *cleaner.Cleaner
}

// New creates a new normalizer
func New() *Normalizer {
	return &Normalizer{cleaner: cleaner.New()}
}

// Normalize builds a Job from one raw listing. The apply link is resolved
// against baseOrigin when relative; already-absolute links pass through
// unchanged. Optional fields default to NotSpecified. Returns false when the
// title or the resolved link ends up empty.
func (n *Normalizer) Normalize(raw extractor.RawListing, source domain.Source, baseOrigin string) (domain.Job, bool) {
	job := domain.Job{
		Title:      n.text(raw.Title),
		Company:    n.textOrDefault(raw.Company),
		Location:   n.textOrDefault(raw.Location),
		Experience: n.textOrDefault(raw.Experience),
		Platform:   string(source),
	}

	link, ok := absolutize(raw.ApplyLink, baseOrigin)
	if !ok || job.Title == "" {
		return domain.Job{}, false
	}
	job.ApplyLink = link

	return job, true
}

func (n *Normalizer) text(s string) string {
	return strings.TrimSpace(html.UnescapeString(n.cleaner.CleanToText(s)))
}

func (n *Normalizer) textOrDefault(s string) string {
	if t := n.text(s); t != "" {
		return t
	}
	return domain.NotSpecified
}

// absolutize resolves link against origin when it carries no scheme.
// Absolute links are returned verbatim.
func absolutize(link, origin string) (string, bool) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", false
	}

	u, err := url.Parse(link)
	if err != nil {
		return "", false
	}
	if u.IsAbs() {
		return link, true
	}

	base, err := url.Parse(origin)
	if err != nil || base.Scheme == "" {
		return "", false
	}

	return base.ResolveReference(u).String(), true
}
