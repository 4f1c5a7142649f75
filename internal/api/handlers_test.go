package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/project-tktt/go-jobscraper/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScraper struct {
	jobs        []domain.Job
	gotKeyword  string
	gotLimit    int
	shouldPanic bool
}

func (s *stubScraper) Scrape(ctx context.Context, keyword string, limit int) []domain.Job {
	if s.shouldPanic {
		panic("selector table corrupted")
	}
	s.gotKeyword = keyword
	s.gotLimit = limit
	return s.jobs
}

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestRouter(s Scraper) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(NewHandler(s, 10, testLogger()), testLogger())
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestScrape_ReturnsJobs(t *testing.T) {
	stub := &stubScraper{jobs: []domain.Job{{
		Title:      "Python Developer",
		Company:    "Acme Corp",
		Location:   "Pune",
		Experience: "3-5 Yrs",
		ApplyLink:  "https://www.naukri.com/job/1",
		Platform:   "Naukri",
	}}}
	r := newTestRouter(stub)

	w := get(t, r, "/scrape/?keyword=python&max_jobs=5")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "python", stub.gotKeyword)
	assert.Equal(t, 5, stub.gotLimit)

	var got []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Python Developer", got[0]["jobTitle"])
	assert.Equal(t, "Acme Corp", got[0]["company"])
	assert.Equal(t, "https://www.naukri.com/job/1", got[0]["applyLink"])
	assert.Equal(t, "Naukri", got[0]["platform"])
}

func TestScrape_EmptyKeywordIs400(t *testing.T) {
	r := newTestRouter(&stubScraper{})

	for _, path := range []string{
		"/scrape/",
		"/scrape/?keyword=",
		"/scrape/?keyword=%20%20",
	} {
		w := get(t, r, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path %q", path)
	}
}

func TestScrape_MaxJobsDefaultsTo10(t *testing.T) {
	stub := &stubScraper{}
	r := newTestRouter(stub)

	for _, path := range []string{
		"/scrape/?keyword=python",
		"/scrape/?keyword=python&max_jobs=abc",
		"/scrape/?keyword=python&max_jobs=-3",
		"/scrape/?keyword=python&max_jobs=0",
	} {
		get(t, r, path)
		assert.Equal(t, 10, stub.gotLimit, "path %q", path)
	}
}

func TestScrape_NoResultsIsEmptyArrayNot500(t *testing.T) {
	r := newTestRouter(&stubScraper{})

	w := get(t, r, "/scrape/?keyword=cobol")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestScrape_PanicBecomesGeneric500(t *testing.T) {
	r := newTestRouter(&stubScraper{shouldPanic: true})

	w := get(t, r, "/scrape/?keyword=python")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "selector table", "panic detail must not leak")
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&stubScraper{})

	w := get(t, r, "/health")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestRoot_ListsEndpoints(t *testing.T) {
	r := newTestRouter(&stubScraper{})

	w := get(t, r, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/scrape/")
	assert.Contains(t, w.Body.String(), "/health")
}
