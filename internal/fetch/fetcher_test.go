package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akolanti/LinkAPI/internal/config"
	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher()
	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "fetch-trace")

	content, contentType, err := fetcher.Fetch(ctx, server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if contentType != "text/html" {
		t.Errorf("Content type got %s, want text/html (charset stripped)", contentType)
	}
	if len(content) == 0 {
		t.Error("Expected non-empty content")
	}
}

func TestHTTPFetcher_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher()
	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "fetch-trace")

	_, _, err := fetcher.Fetch(ctx, server.URL)
	if !errors.Is(err, linkModel.ErrFetchFailure) {
		t.Errorf("Expected ErrFetchFailure on 500, got %v", err)
	}
}

func TestHTTPFetcher_ConnectionRefused(t *testing.T) {
	fetcher := NewHTTPFetcher()
	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "fetch-trace")

	_, _, err := fetcher.Fetch(ctx, "http://127.0.0.1:1/unreachable")
	if !errors.Is(err, linkModel.ErrFetchFailure) {
		t.Errorf("Expected ErrFetchFailure on refused connection, got %v", err)
	}
}
