package timesjobs

import (
	"github.com/project-tktt/go-jobscraper/internal/common/extractor"
	"github.com/project-tktt/go-jobscraper/internal/common/fetcher"
	"github.com/project-tktt/go-jobscraper/internal/common/normalizer"
	"github.com/project-tktt/go-jobscraper/internal/domain"
	"github.com/project-tktt/go-jobscraper/internal/module"
	"github.com/sirupsen/logrus"
)

const BaseURL = "https://www.timesjobs.com"

// New creates the TimesJobs source adapter
func New(f *fetcher.Fetcher, norm *normalizer.Normalizer, log logrus.FieldLogger) *module.Adapter {
	return module.NewAdapter(Config(), f, norm, log)
}

// Config returns the TimesJobs source table
func Config() module.SourceConfig {
	return module.SourceConfig{
		Source:  domain.SourceTimesJobs,
		BaseURL: BaseURL,
		SearchPaths: []string{
			"/candidate/job-search.html?searchType=personalizedSearch&from=submit&txtKeywords={query}",
			"/candidate/job-search.html?from=submit&txtKeywords={query}&txtLocation=",
		},
		Headers: map[string]string{
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language": "en-US,en;q=0.5",
			"Connection":      "keep-alive",
		},
		Rules: extractor.FieldRules{
			Container: []extractor.Rule{
				"li.clearfix.job-bx.wht-shd-bx",
				"li.job-bx",
				".job-bx",
				`[class*="job-bx"]`,
			},
			Title: []extractor.Rule{
				"h2 a",
				"header h2 a",
				"a.posoverlay_srp",
				`[class*="heading"] a`,
			},
			Company: []extractor.Rule{
				"h3.joblist-comp-name",
				".joblist-comp-name",
				`[class*="comp-name"]`,
				`[class*="company"]`,
			},
			Location: []extractor.Rule{
				"ul.top-jd-dtl li span",
				".srp-loc",
				`[class*="location"]`,
				`[class*="loc"]`,
			},
			Experience: []extractor.Rule{
				"ul.top-jd-dtl li.srp-icons.experience",
				".srp-exp",
				`[class*="experience"]`,
				`[class*="exp"]`,
			},
		},
	}
}
