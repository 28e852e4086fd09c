package linkModel

import (
	"fmt"
	"time"
)

// Document is the persisted descriptor of one ingested URL. It is written once,
// at the end of a successful ingestion, never updated in place, and only ever
// removed as a whole by the deletion flow.
type Document struct {
	Id          string    `json:"id" bson:"id"`
	URL         string    `json:"url" bson:"url"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	BucketPath  string    `json:"bucket_path" bson:"bucket_path"`
	ContentType string    `json:"content_type" bson:"content_type"`
	Size        int       `json:"size" bson:"size"`
	Title       string    `json:"title" bson:"title"`
	Summary     string    `json:"summary" bson:"summary"`
	ChunkCount  int       `json:"chunk_count" bson:"chunk_count"`
}

// VectorMetadata rides along with every chunk embedding. There is no foreign key
// between the vector index and the metadata store - this payload is the only link.
type VectorMetadata struct {
	DocumentId string `json:"document_id"`
	ChunkId    int    `json:"chunk_id"`
}

// ChunkMatch is one scored hit from a similarity query, highest score = most similar.
type ChunkMatch struct {
	VectorId string
	Score    float32
	Metadata VectorMetadata
}

// SearchResult pairs a resolved document with the ids of its matching chunks,
// ordered by descending chunk score.
type SearchResult struct {
	Document Document `json:"document"`
	ChunkIds []int    `json:"chunk_ids"`
}

// ProcessedContent is the summarizer output for one fetched payload.
// Chunk order encodes position in the source document.
type ProcessedContent struct {
	Title   string
	Summary string
	Chunks  []string
}

// VectorId is the canonical id of chunk i of a document. A document with
// ChunkCount = N owns exactly the ids 0..N-1 and no others.
func VectorId(documentId string, chunkId int) string {
	return fmt.Sprintf("%s-%d", documentId, chunkId)
}
