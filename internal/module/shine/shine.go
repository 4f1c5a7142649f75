package shine

import (
	"github.com/project-tktt/go-jobscraper/internal/common/extractor"
	"github.com/project-tktt/go-jobscraper/internal/common/fetcher"
	"github.com/project-tktt/go-jobscraper/internal/common/normalizer"
	"github.com/project-tktt/go-jobscraper/internal/domain"
	"github.com/project-tktt/go-jobscraper/internal/module"
	"github.com/sirupsen/logrus"
)

const BaseURL = "https://www.shine.com"

// New creates the Shine source adapter
func New(f *fetcher.Fetcher, norm *normalizer.Normalizer, log logrus.FieldLogger) *module.Adapter {
	return module.NewAdapter(Config(), f, norm, log)
}

// Config returns the Shine source table. Shine ships hashed CSS-module class
// names, so the chains lean on itemprop attributes and substring matches.
func Config() module.SourceConfig {
	return module.SourceConfig{
		Source:  domain.SourceShine,
		BaseURL: BaseURL,
		SearchPaths: []string{
			"/job-search/{slug}-jobs",
			"/job-search/{slug}-jobs-in-india",
		},
		Headers: map[string]string{
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language": "en-US,en;q=0.5",
			"Connection":      "keep-alive",
		},
		Rules: extractor.FieldRules{
			Container: []extractor.Rule{
				"div[itemtype='https://schema.org/JobPosting']",
				`[class*="jobCardNova_bigCard"]`,
				`[class*="jobCard_jobCard"]`,
				".jobCard",
				".search_listing",
			},
			Title: []extractor.Rule{
				"strong[itemprop='name'] a",
				`[class*="jobCardNova_bigCardTopTitleHeading"] a`,
				`[class*="jobCard_pReplaceH2"] a`,
				"h2 a",
				".job_title a",
			},
			Company: []extractor.Rule{
				"span[itemprop='name']",
				`[class*="jobCardNova_bigCardTopTitleName"]`,
				`[class*="jobCard_jobCard_cName"] span`,
				".company_name",
				`[class*="cName"]`,
			},
			Location: []extractor.Rule{
				"div[itemprop='jobLocation']",
				`[class*="jobCardNova_bigCardCenterListLoc"]`,
				`[class*="jobCard_locationIcon"] + span`,
				".location",
				`[class*="loc"]`,
			},
			Experience: []extractor.Rule{
				"div[itemprop='experienceRequirements']",
				`[class*="jobCardNova_bigCardCenterListExp"]`,
				`[class*="jobCard_jobIcon"] + span`,
				".experience",
				`[class*="exp"]`,
			},
		},
	}
}
