package module

import (
	"context"

	"github.com/project-tktt/go-jobscraper/internal/common/chain"
	"github.com/project-tktt/go-jobscraper/internal/domain"
	"github.com/sirupsen/logrus"
)

// Orchestrator tries sources in a fixed priority order and returns the first
// non-empty result. Sources are invoked strictly sequentially so an early hit
// short-circuits the remaining network calls.
type Orchestrator struct {
	sources []Source
	log     logrus.FieldLogger
}

// NewOrchestrator creates an orchestrator over the given sources, in
// priority order
func NewOrchestrator(log logrus.FieldLogger, sources ...Source) *Orchestrator {
	return &Orchestrator{
		sources: sources,
		log:     log,
	}
}

// Scrape returns at most limit records from the first source that yields
// any. When every source comes up empty the result is an empty slice, never
// an error.
func (o *Orchestrator) Scrape(ctx context.Context, keyword string, limit int) []domain.Job {
	jobs, ok := chain.First(o.sources, func(src Source) ([]domain.Job, bool) {
		log := o.log.WithFields(logrus.Fields{
			"source":  src.Source(),
			"keyword": keyword,
		})

		records, err := src.Scrape(ctx, keyword, limit)
		if err != nil {
			log.WithError(err).Warn("source failed, trying next")
			return nil, false
		}
		if len(records) == 0 {
			log.Info("source returned no jobs, trying next")
			return nil, false
		}
		return records, true
	})
	if !ok {
		return []domain.Job{}
	}
	return jobs
}
