package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/project-tktt/go-jobscraper/internal/domain"
	"github.com/sirupsen/logrus"
)

// Scraper is the job lookup pipeline consumed by the HTTP layer
type Scraper interface {
	Scrape(ctx context.Context, keyword string, limit int) []domain.Job
}

// Handler holds the HTTP endpoint implementations
type Handler struct {
	scraper        Scraper
	defaultMaxJobs int
	log            logrus.FieldLogger
}

// NewHandler creates the handler with dependencies
func NewHandler(scraper Scraper, defaultMaxJobs int, log logrus.FieldLogger) *Handler {
	if defaultMaxJobs <= 0 {
		defaultMaxJobs = 10
	}
	return &Handler{
		scraper:        scraper,
		defaultMaxJobs: defaultMaxJobs,
		log:            log,
	}
}

// Root is the GET / endpoint
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Job Scraper API",
		"endpoints": gin.H{
			"scrape_jobs":  "/scrape/?keyword=python",
			"health_check": "/health",
		},
	})
}

// Health is the GET /health endpoint
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "API is running",
	})
}

// ScrapeJobs is the GET /scrape/ endpoint. It always answers 200 with a JSON
// array; an empty array covers both "no jobs" and "every source failed".
func (h *Handler) ScrapeJobs(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("keyword"))
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword cannot be empty"})
		return
	}

	maxJobs := h.defaultMaxJobs
	if raw := c.Query("max_jobs"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			maxJobs = n
		}
	}

	log := h.log.WithFields(logrus.Fields{
		"keyword":  keyword,
		"max_jobs": maxJobs,
	})
	log.Info("scrape request")

	jobs := h.scraper.Scrape(c.Request.Context(), keyword, maxJobs)
	if jobs == nil {
		jobs = []domain.Job{}
	}

	log.WithField("jobs", len(jobs)).Info("scrape done")
	c.JSON(http.StatusOK, jobs)
}
