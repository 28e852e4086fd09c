package bookmark

import (
	"context"
	"fmt"
	"time"

	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
	"github.com/akolanti/LinkAPI/internal/metrics"
)

// BucketPath is the blob key for a document's raw content.
func BucketPath(documentId string, contentType string) string {
	return fmt.Sprintf("content/%s.%s", documentId, ExtensionFromContentType(contentType))
}

// ExtensionFromContentType picks a file extension for the bucket path. Unknown
// types get a generic binary extension rather than failing the ingest.
func ExtensionFromContentType(contentType string) string {
	switch contentType {
	case "text/html":
		return "html"
	case "application/pdf":
		return "pdf"
	case "application/json":
		return "json"
	case "text/plain":
		return "txt"
	case "text/markdown":
		return "md"
	case "image/png":
		return "png"
	case "image/jpeg":
		return "jpg"
	default:
		return "bin"
	}
}

func (s *service) executeFetchStep(ctx context.Context, url string) ([]byte, string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("content_fetch", time.Since(start)) }()

	return s.fetcher.Fetch(ctx, url)
}

func (s *service) executeProcessStep(ctx context.Context, content []byte, contentType string) (linkModel.ProcessedContent, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("summarize", time.Since(start)) }()

	processed, err := s.processor.Process(ctx, content, contentType)
	if err != nil {
		return processed, err
	}
	if len(processed.Chunks) == 0 {
		return processed, fmt.Errorf("no chunks produced: %w", linkModel.ErrProcessingFailure)
	}
	return processed, nil
}

func (s *service) executeEmbeddingStep(ctx context.Context, chunks []string) ([][]float32, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("embedding", time.Since(start)) }()

	embeddings := make([][]float32, 0, len(chunks))
	for i, chunk := range chunks {
		embedding, err := s.embedder.GetEmbedding(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", i, err)
		}
		embeddings = append(embeddings, embedding)
	}
	return embeddings, nil
}

func (s *service) executeVectorInsertStep(ctx context.Context, vectorId string, metadata linkModel.VectorMetadata, embedding []float32) error {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("vector_insert", time.Since(start)) }()

	return s.vectors.Insert(ctx, vectorId, metadata, embedding)
}

func (s *service) executeBlobWriteStep(ctx context.Context, path string, content []byte) error {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("blob_write", time.Since(start)) }()

	return s.blobs.Put(ctx, path, content)
}

func (s *service) executeMetadataWriteStep(ctx context.Context, doc linkModel.Document) error {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("metadata_write", time.Since(start)) }()

	return s.meta.Save(ctx, doc)
}
