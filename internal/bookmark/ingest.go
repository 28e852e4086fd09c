package bookmark

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akolanti/LinkAPI/internal/adapter/utils"
	"github.com/akolanti/LinkAPI/internal/config"
	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
	"github.com/akolanti/LinkAPI/internal/metrics"
)

// Ingest runs the full pipeline for one URL: dedup, fetch, summarize and chunk,
// embed, then persist to all three stores. A URL that is already ingested
// returns its existing document untouched, no matter what the live page looks
// like now.
func (s *service) Ingest(ctx context.Context, url string) (linkModel.Document, error) {
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "url", url)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("link_ingestion", time.Since(start)) }()

	// Dedup
	existing, err := s.meta.FindByURL(ctx, url)
	if err == nil {
		inMethodLogger.Info("URL already ingested", "docId", existing.Id)
		return existing, nil
	}
	if !errors.Is(err, linkModel.ErrNotFound) {
		return linkModel.Document{}, fmt.Errorf("dedup check: %w", err)
	}

	// Fetch
	content, contentType, err := s.executeFetchStep(ctx, url)
	if err != nil {
		return linkModel.Document{}, fmt.Errorf("fetch step: %w", err)
	}

	doc := linkModel.Document{
		Id:          utils.GetNewUUID(),
		URL:         url,
		CreatedAt:   time.Now().UTC(),
		ContentType: contentType,
		Size:        len(content),
	}
	doc.BucketPath = BucketPath(doc.Id, contentType)

	// Summarize + chunk
	processed, err := s.executeProcessStep(ctx, content, contentType)
	if err != nil {
		return linkModel.Document{}, fmt.Errorf("process step: %w", err)
	}
	doc.Title = processed.Title
	doc.Summary = processed.Summary
	doc.ChunkCount = len(processed.Chunks)

	// Embed
	embeddings, err := s.executeEmbeddingStep(ctx, processed.Chunks)
	if err != nil {
		return linkModel.Document{}, fmt.Errorf("embedding step: %w", err)
	}

	// Persist. The three writes are not atomic - a failure partway leaves the
	// earlier writes in place, and a later retry of the same URL starts over
	// because the metadata record lands last.
	// TODO: sweep the vector index for document ids with no metadata record
	for i, embedding := range embeddings {
		vectorId := linkModel.VectorId(doc.Id, i)
		if err := s.executeVectorInsertStep(ctx, vectorId, linkModel.VectorMetadata{
			DocumentId: doc.Id,
			ChunkId:    i,
		}, embedding); err != nil {
			return linkModel.Document{}, fmt.Errorf("vector insert %s: %w", vectorId, err)
		}
	}

	if err := s.executeBlobWriteStep(ctx, doc.BucketPath, content); err != nil {
		return linkModel.Document{}, fmt.Errorf("blob write: %w", err)
	}

	if err := s.executeMetadataWriteStep(ctx, doc); err != nil {
		return linkModel.Document{}, fmt.Errorf("metadata write: %w", err)
	}

	inMethodLogger.Info("Ingested link", "docId", doc.Id, "chunks", doc.ChunkCount, "bytes", doc.Size)
	return doc, nil
}
