package fetcher

import (
	"context"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/sirupsen/logrus"
)

// Config holds settings for the outbound fetch layer
type Config struct {
	// Timeout applies to each outbound request
	Timeout time.Duration
	// UserAgent is the default UA; sources may override via headers
	UserAgent string
}

// Fetcher issues outbound page fetches via Colly. Any network error, timeout
// or non-200 status is a soft failure: the caller gets no content and decides
// whether to try the next URL or source. No retries happen here.
type Fetcher struct {
	collector *colly.Collector
	log       logrus.FieldLogger
}

// New creates a Fetcher with a configured base collector
func New(cfg Config, log logrus.FieldLogger) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	c := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(cfg.Timeout)

	return &Fetcher{
		collector: c,
		log:       log,
	}
}

// Fetch retrieves url with the given request headers. Returns the body and
// true only for a 200 response with a non-empty body.
func (f *Fetcher) Fetch(ctx context.Context, url string, headers map[string]string) (string, bool) {
	if err := ctx.Err(); err != nil {
		return "", false
	}

	var (
		body   string
		status int
	)

	c := f.collector.Clone()

	c.OnRequest(func(r *colly.Request) {
		for k, v := range headers {
			r.Headers.Set(k, v)
		}
	})

	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = string(r.Body)
	})

	c.OnError(func(r *colly.Response, err error) {
		f.log.WithError(err).WithFields(logrus.Fields{
			"url":    url,
			"status": r.StatusCode,
		}).Warn("fetch failed")
	})

	if err := c.Visit(url); err != nil {
		// OnError already logged transport/status failures; Visit also
		// errors on malformed URLs before any request is made.
		f.log.WithError(err).WithField("url", url).Debug("visit aborted")
		return "", false
	}

	if status != http.StatusOK || body == "" {
		return "", false
	}

	return body, true
}
