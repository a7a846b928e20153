package checker

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"checkcachet/internal/config"
)

func newTestChecker(timeout time.Duration) *Checker {
	cfg := config.DefaultConfig()
	cfg.Timeout = timeout
	return NewChecker(cfg)
}

func TestFetchOK(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	result, err := newTestChecker(time.Second).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if result.StatusCode != http.StatusOK || result.Body != "<html>ok</html>" {
		t.Errorf("unexpected result: %+v", result)
	}
	if gotUA != config.DefaultConfig().UserAgent {
		t.Errorf("User-Agent = %q", gotUA)
	}
}

func TestFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	result, err := newTestChecker(time.Second).Fetch(context.Background(), srv.URL)

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fetchErr.Kind != KindHTTPError || fetchErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("unexpected error: %+v", fetchErr)
	}
	if fetchErr.Reason() != "HTTP 503 Service Unavailable" {
		t.Errorf("Reason = %q", fetchErr.Reason())
	}
	if result == nil || result.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("raw status should still be returned: %+v", result)
	}
}

func TestFetchTimeout(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()
	defer close(done)

	_, err := newTestChecker(50*time.Millisecond).Fetch(context.Background(), srv.URL)

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fetchErr.Kind != KindTimeout {
		t.Errorf("Kind = %s, want timeout (%v)", fetchErr.Kind, fetchErr.Err)
	}
	if !strings.Contains(fetchErr.Reason(), "timed out") {
		t.Errorf("Reason = %q", fetchErr.Reason())
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	target := srv.URL
	srv.Close()

	_, err := newTestChecker(time.Second).Fetch(context.Background(), target)

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fetchErr.Kind != KindRequestFailed {
		t.Errorf("Kind = %s, want request_failed", fetchErr.Kind)
	}
}

func TestFetchInvalidURL(t *testing.T) {
	_, err := newTestChecker(time.Second).Fetch(context.Background(), "not a url")

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Kind != KindInvalidURL {
		t.Fatalf("expected invalid_url, got %v", err)
	}
}

func TestFetchBodyLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("a", 100)))
	}))
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.MaxBodySize = 10
	result, err := NewChecker(cfg).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(result.Body) != 10 {
		t.Errorf("body length = %d, want 10", len(result.Body))
	}
}
