package module

import (
	"context"

	"github.com/project-tktt/go-jobscraper/internal/common/extractor"
	"github.com/project-tktt/go-jobscraper/internal/domain"
)

// Source is the common interface for all job board adapters
type Source interface {
	// Scrape fetches jobs for the keyword, at most limit records.
	// An empty result is not an error: "no jobs" and "scraping failed"
	// are indistinguishable to callers.
	Scrape(ctx context.Context, keyword string, limit int) ([]domain.Job, error)
	// Source returns the source identifier
	Source() domain.Source
}

// SourceConfig describes one job board: where to search, how to identify the
// request, and which selector chains to run against the result page.
// Constructed once at startup, read-only afterwards.
type SourceConfig struct {
	Source  domain.Source
	BaseURL string

	// SearchPaths are candidate search URL templates relative to BaseURL,
	// tried in order. "{slug}" expands to the lowercased dash-joined
	// keyword, "{query}" to the URL-escaped keyword. Some boards phrase
	// the same search several ways; a later variant is only fetched when
	// every earlier one yields nothing.
	SearchPaths []string

	// Headers sent with every request to this source
	Headers map[string]string

	// Rules are the container and per-field selector chains
	Rules extractor.FieldRules
}
