package vectorDB

import (
	"context"

	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
)

// DataStore is the chunk embedding index. Entries are only ever created during
// ingestion and only ever removed as a whole document's set - the document's
// chunk count bounds the delete.
type DataStore interface {
	Insert(ctx context.Context, vectorId string, metadata linkModel.VectorMetadata, embedding []float32) error
	Query(ctx context.Context, query string, k int) ([]linkModel.ChunkMatch, error)
	DeleteByDocument(ctx context.Context, documentId string, chunkCount int) error
}
