package fetch

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/akolanti/LinkAPI/internal/config"
	"github.com/akolanti/LinkAPI/internal/customHttpClient"
	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
	"github.com/akolanti/LinkAPI/pkg/logger_i"
)

// ContentFetcher downloads a URL and reports its content type.
// There is no retry policy here - a failed fetch fails the whole ingestion.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}

type HTTPFetcher struct {
	client *http.Client
	logger *logger_i.Logger
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client: customHttpClient.NewPooledClient(),
		logger: logger_i.NewLogger("Fetcher"),
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	log := f.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building request for %s: %w: %w", url, linkModel.ErrFetchFailure, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching %s: %w: %w", url, linkModel.ErrFetchFailure, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Error("Couldn't close fetch response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("fetching %s: status %d: %w", url, resp.StatusCode, linkModel.ErrFetchFailure)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, config.MaxFetchBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w: %w", url, linkModel.ErrFetchFailure, err)
	}
	if len(content) > config.MaxFetchBytes {
		return nil, "", fmt.Errorf("fetching %s: content exceeds %d bytes: %w", url, config.MaxFetchBytes, linkModel.ErrFetchFailure)
	}

	contentType := resp.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	log.Debug("Fetched content", "bytes", len(content), "contentType", contentType)
	return content, contentType, nil
}
