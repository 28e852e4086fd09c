package embedding

import "context"

// Embedder produces one fixed-dimension vector per text. Ingestion calls it once
// per chunk, in chunk order.
type Embedder interface {
	GetEmbedding(ctx context.Context, text string) ([]float32, error)
}
