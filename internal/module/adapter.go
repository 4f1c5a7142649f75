package module

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/project-tktt/go-jobscraper/internal/common/chain"
	"github.com/project-tktt/go-jobscraper/internal/common/extractor"
	"github.com/project-tktt/go-jobscraper/internal/common/fetcher"
	"github.com/project-tktt/go-jobscraper/internal/common/normalizer"
	"github.com/project-tktt/go-jobscraper/internal/domain"
	"github.com/sirupsen/logrus"
)

// Adapter is the generic source adapter: one fetch-extract-normalize pass,
// parameterized entirely by a SourceConfig table. Every board shares this
// control flow; only the tables differ.
type Adapter struct {
	cfg  SourceConfig
	f    *fetcher.Fetcher
	norm *normalizer.Normalizer
	log  logrus.FieldLogger
}

// NewAdapter creates an adapter for the given source table
func NewAdapter(cfg SourceConfig, f *fetcher.Fetcher, norm *normalizer.Normalizer, log logrus.FieldLogger) *Adapter {
	return &Adapter{
		cfg:  cfg,
		f:    f,
		norm: norm,
		log:  log.WithField("source", cfg.Source),
	}
}

// Source returns the source identifier
func (a *Adapter) Source() domain.Source {
	return a.cfg.Source
}

// Scrape tries each candidate search URL in order and returns the first
// non-empty batch of records. All misses yield an empty result, nil error.
func (a *Adapter) Scrape(ctx context.Context, keyword string, limit int) ([]domain.Job, error) {
	log := a.log.WithField("keyword", keyword)

	jobs, _ := chain.First(a.cfg.SearchPaths, func(tmpl string) ([]domain.Job, bool) {
		searchURL := a.searchURL(tmpl, keyword)
		log := log.WithField("url", searchURL)

		body, ok := a.f.Fetch(ctx, searchURL, a.cfg.Headers)
		if !ok {
			return nil, false
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
		if err != nil {
			log.WithError(err).Warn("parse page failed")
			return nil, false
		}

		raws := extractor.Listings(doc, a.cfg.Rules, limit, log)

		jobs := make([]domain.Job, 0, len(raws))
		for _, raw := range raws {
			if job, ok := a.norm.Normalize(raw, a.cfg.Source, a.cfg.BaseURL); ok {
				jobs = append(jobs, job)
			}
		}

		log.WithField("jobs", len(jobs)).Info("scraped search page")
		return jobs, len(jobs) > 0
	})

	return jobs, nil
}

// searchURL renders one candidate URL template for the keyword
func (a *Adapter) searchURL(tmpl, keyword string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(keyword), "-"))
	r := strings.NewReplacer(
		"{slug}", slug,
		"{query}", url.QueryEscape(keyword),
	)
	return a.cfg.BaseURL + r.Replace(tmpl)
}
