package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/project-tktt/go-jobscraper/internal/api"
	"github.com/project-tktt/go-jobscraper/internal/common/fetcher"
	"github.com/project-tktt/go-jobscraper/internal/common/normalizer"
	"github.com/project-tktt/go-jobscraper/internal/config"
	"github.com/project-tktt/go-jobscraper/internal/module"
	"github.com/project-tktt/go-jobscraper/internal/module/naukri"
	"github.com/project-tktt/go-jobscraper/internal/module/shine"
	"github.com/project-tktt/go-jobscraper/internal/module/timesjobs"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	f := fetcher.New(fetcher.Config{
		Timeout:   cfg.Scraper.RequestTimeout,
		UserAgent: cfg.Scraper.UserAgent,
	}, logger)
	norm := normalizer.New()

	// Fallback priority order: later sources are only hit when every
	// earlier one yields nothing.
	orch := module.NewOrchestrator(logger,
		naukri.New(f, norm, logger),
		shine.New(f, norm, logger),
		timesjobs.New(f, norm, logger),
	)

	h := api.NewHandler(orch, cfg.Scraper.DefaultMaxJobs, logger)
	r := api.NewRouter(h, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.WithField("addr", addr).Info("starting job scraper API")
	if err := r.Run(addr); err != nil {
		logger.WithError(err).Fatal("server failed")
	}
}
