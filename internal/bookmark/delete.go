package bookmark

import (
	"context"
	"fmt"
	"time"

	"github.com/akolanti/LinkAPI/internal/config"
	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
	"github.com/akolanti/LinkAPI/internal/metrics"
)

// Delete removes a bookmark everywhere: metadata record first, then the blob,
// then the document's chunk vectors. The record goes first so a crash midway
// leaves orphaned blob or vector data rather than a record pointing at nothing.
// Deleting a URL that was never ingested surfaces ErrNotFound.
func (s *service) Delete(ctx context.Context, url string) (linkModel.Document, error) {
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "url", url)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("link_deletion", time.Since(start)) }()

	doc, err := s.meta.DeleteByURL(ctx, url)
	if err != nil {
		return linkModel.Document{}, fmt.Errorf("delete record: %w", err)
	}

	if err := s.blobs.Delete(ctx, doc.BucketPath); err != nil {
		return linkModel.Document{}, fmt.Errorf("delete blob: %w", err)
	}

	if err := s.vectors.DeleteByDocument(ctx, doc.Id, doc.ChunkCount); err != nil {
		return linkModel.Document{}, fmt.Errorf("delete vectors: %w", err)
	}

	inMethodLogger.Info("Deleted link", "docId", doc.Id, "chunks", doc.ChunkCount)
	return doc, nil
}

// GetContent returns the raw stored bytes for a document together with the
// content type recorded at ingest time.
func (s *service) GetContent(ctx context.Context, id string) ([]byte, string, error) {
	doc, err := s.meta.GetById(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("resolve document %s: %w", id, err)
	}

	content, err := s.blobs.Get(ctx, doc.BucketPath)
	if err != nil {
		return nil, "", fmt.Errorf("read blob %s: %w", doc.BucketPath, err)
	}
	return content, doc.ContentType, nil
}
