package fetcher

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestFetch_OKResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>jobs</body></html>"))
	}))
	defer srv.Close()

	f := New(Config{Timeout: 5 * time.Second, UserAgent: "test-agent"}, testLogger())

	body, ok := f.Fetch(context.Background(), srv.URL, nil)

	require.True(t, ok)
	assert.Contains(t, body, "jobs")
}

func TestFetch_ForwardsHeaders(t *testing.T) {
	var gotHeader, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("Accept-Language")
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := New(Config{Timeout: 5 * time.Second, UserAgent: "test-agent"}, testLogger())

	_, ok := f.Fetch(context.Background(), srv.URL, map[string]string{
		"Accept-Language": "en-US,en;q=0.5",
	})

	require.True(t, ok)
	assert.Equal(t, "en-US,en;q=0.5", gotHeader)
	assert.Equal(t, "test-agent", gotUA)
}

func TestFetch_NonOKIsSoftFailure(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte("blocked"))
		}))

		f := New(Config{Timeout: 5 * time.Second, UserAgent: "test-agent"}, testLogger())
		body, ok := f.Fetch(context.Background(), srv.URL, nil)

		assert.False(t, ok, "status %d must be a soft failure", status)
		assert.Empty(t, body)
		srv.Close()
	}
}

func TestFetch_TimeoutIsSoftFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte("too late"))
	}))
	defer srv.Close()

	f := New(Config{Timeout: 50 * time.Millisecond, UserAgent: "test-agent"}, testLogger())

	start := time.Now()
	_, ok := f.Fetch(context.Background(), srv.URL, nil)

	assert.False(t, ok)
	assert.Less(t, time.Since(start), 400*time.Millisecond, "fetch must give up at the timeout, not hang")
}

func TestFetch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := New(Config{Timeout: time.Second, UserAgent: "test-agent"}, testLogger())

	_, ok := f.Fetch(ctx, "http://127.0.0.1:0/never", nil)
	assert.False(t, ok)
}

func TestFetch_BadURL(t *testing.T) {
	f := New(Config{Timeout: time.Second, UserAgent: "test-agent"}, testLogger())

	_, ok := f.Fetch(context.Background(), "not a url", nil)
	assert.False(t, ok)
}
