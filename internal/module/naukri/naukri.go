package naukri

import (
	"github.com/project-tktt/go-jobscraper/internal/common/extractor"
	"github.com/project-tktt/go-jobscraper/internal/common/fetcher"
	"github.com/project-tktt/go-jobscraper/internal/common/normalizer"
	"github.com/project-tktt/go-jobscraper/internal/domain"
	"github.com/project-tktt/go-jobscraper/internal/module"
	"github.com/sirupsen/logrus"
)

const BaseURL = "https://www.naukri.com"

// New creates the Naukri source adapter
func New(f *fetcher.Fetcher, norm *normalizer.Normalizer, log logrus.FieldLogger) *module.Adapter {
	return module.NewAdapter(Config(), f, norm, log)
}

// Config returns the Naukri source table. Naukri changes its markup
// frequently; each rule list is ordered newest-variant-first and old rules
// stay in the chain. Append, don't replace.
func Config() module.SourceConfig {
	return module.SourceConfig{
		Source:  domain.SourceNaukri,
		BaseURL: BaseURL,
		SearchPaths: []string{
			"/{slug}-jobs?k={query}",
			"/{slug}-jobs-in-india?k={query}",
		},
		Headers: map[string]string{
			"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
			"Accept-Language":           "en-US,en;q=0.5",
			"Connection":                "keep-alive",
			"Upgrade-Insecure-Requests": "1",
			"Sec-Fetch-Dest":            "document",
			"Sec-Fetch-Mode":            "navigate",
			"Sec-Fetch-Site":            "none",
			"Sec-Fetch-User":            "?1",
			"Cache-Control":             "max-age=0",
		},
		Rules: extractor.FieldRules{
			Container: []extractor.Rule{
				".srp-jobtuple-wrapper",
				".jobTuple.bgWhite.br4.mb-8",
				".jobTuple",
				".list",
				".row",
				".job-tuple",
				"[data-job-id]",
				".cust-job-tuple",
				".srp-jobtuple",
			},
			Title: []extractor.Rule{
				"a.title",
				"a.title.fw500.ellipsis",
				".job-title",
				".title",
				"h2 a",
				`[class*="title"] a`,
			},
			Company: []extractor.Rule{
				"a.comp-name",
				"a.compName",
				".company-name",
				".comp-name",
				`[class*="company"]`,
				`[class*="comp"]`,
			},
			Location: []extractor.Rule{
				"span.locWdth",
				"span.fleft.grey-text.br2.placeHolderLi.location",
				".location",
				".loc",
				`[class*="location"]`,
				`[class*="loc"]`,
			},
			Experience: []extractor.Rule{
				"span.expwdth",
				"li.experience",
				".exp",
				".experience",
				`[class*="exp"]`,
				`[class*="experience"]`,
			},
		},
	}
}
