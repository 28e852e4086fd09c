package bookmark_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/akolanti/LinkAPI/internal/bookmark"
	"github.com/akolanti/LinkAPI/internal/config"
	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
)

func newTestService(meta *MockMetaStore, blobs *MockBlobStore, vectors *MockVectorStore,
	fetcher *MockFetcher, processor *MockProcessor, embedder *MockEmbedder) bookmark.Service {
	return bookmark.NewService(meta, blobs, vectors, fetcher, processor, embedder)
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
}

func TestIngest_Success(t *testing.T) {
	meta := NewMockMetaStore()
	blobs := NewMockBlobStore()
	vectors := &MockVectorStore{}
	fetcher := &MockFetcher{}
	processor := &MockProcessor{}
	embedder := &MockEmbedder{}

	s := newTestService(meta, blobs, vectors, fetcher, processor, embedder)

	doc, err := s.Ingest(testCtx(), "https://example.com/article")
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	if doc.Id == "" {
		t.Error("Document got no id")
	}
	if doc.URL != "https://example.com/article" {
		t.Errorf("URL got %s", doc.URL)
	}
	if doc.ChunkCount != 3 {
		t.Errorf("ChunkCount got %d, want 3", doc.ChunkCount)
	}
	if embedder.EmbedCalls != doc.ChunkCount {
		t.Errorf("Embedding calls got %d, want %d", embedder.EmbedCalls, doc.ChunkCount)
	}
	if len(vectors.Inserted) != doc.ChunkCount {
		t.Fatalf("Vector inserts got %d, want %d", len(vectors.Inserted), doc.ChunkCount)
	}
	for i, id := range vectors.Inserted {
		want := fmt.Sprintf("%s-%d", doc.Id, i)
		if id != want {
			t.Errorf("Vector id %d got %s, want %s", i, id, want)
		}
	}
	if _, ok := blobs.Blobs[doc.BucketPath]; !ok {
		t.Errorf("Blob missing at %s", doc.BucketPath)
	}
	if doc.BucketPath != "content/"+doc.Id+".html" {
		t.Errorf("BucketPath got %s", doc.BucketPath)
	}
	if meta.SaveCalls != 1 {
		t.Errorf("Save calls got %d, want 1", meta.SaveCalls)
	}
}

func TestIngest_DuplicateURLReturnsExisting(t *testing.T) {
	meta := NewMockMetaStore()
	blobs := NewMockBlobStore()
	vectors := &MockVectorStore{}
	fetcher := &MockFetcher{}
	processor := &MockProcessor{}
	embedder := &MockEmbedder{}

	s := newTestService(meta, blobs, vectors, fetcher, processor, embedder)

	first, err := s.Ingest(testCtx(), "https://example.com/dup")
	if err != nil {
		t.Fatalf("First ingest failed: %v", err)
	}

	second, err := s.Ingest(testCtx(), "https://example.com/dup")
	if err != nil {
		t.Fatalf("Second ingest failed: %v", err)
	}

	if second.Id != first.Id {
		t.Errorf("Second ingest got id %s, want existing %s", second.Id, first.Id)
	}
	if fetcher.FetchCalls != 1 {
		t.Errorf("Fetch calls got %d, want 1 (dedup must short-circuit)", fetcher.FetchCalls)
	}
	if embedder.EmbedCalls != first.ChunkCount {
		t.Errorf("Embed calls got %d, want %d", embedder.EmbedCalls, first.ChunkCount)
	}
	if meta.SaveCalls != 1 {
		t.Errorf("Save calls got %d, want 1", meta.SaveCalls)
	}
}

func TestIngest_FailureStages(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(meta *MockMetaStore, vectors *MockVectorStore, fetcher *MockFetcher, processor *MockProcessor, embedder *MockEmbedder, blobs *MockBlobStore)
		wantErr    error
	}{
		{
			name: "Fetch_Failure",
			setupMocks: func(meta *MockMetaStore, vectors *MockVectorStore, fetcher *MockFetcher, processor *MockProcessor, embedder *MockEmbedder, blobs *MockBlobStore) {
				fetcher.OnFetch = func(ctx context.Context, url string) ([]byte, string, error) {
					return nil, "", fmt.Errorf("status 500: %w", linkModel.ErrFetchFailure)
				}
			},
			wantErr: linkModel.ErrFetchFailure,
		},
		{
			name: "Processing_Failure",
			setupMocks: func(meta *MockMetaStore, vectors *MockVectorStore, fetcher *MockFetcher, processor *MockProcessor, embedder *MockEmbedder, blobs *MockBlobStore) {
				processor.OnProcess = func(ctx context.Context, content []byte, contentType string) (linkModel.ProcessedContent, error) {
					return linkModel.ProcessedContent{}, fmt.Errorf("model refused: %w", linkModel.ErrProcessingFailure)
				}
			},
			wantErr: linkModel.ErrProcessingFailure,
		},
		{
			name: "Empty_Chunks_Is_Processing_Failure",
			setupMocks: func(meta *MockMetaStore, vectors *MockVectorStore, fetcher *MockFetcher, processor *MockProcessor, embedder *MockEmbedder, blobs *MockBlobStore) {
				processor.OnProcess = func(ctx context.Context, content []byte, contentType string) (linkModel.ProcessedContent, error) {
					return linkModel.ProcessedContent{Title: "t", Summary: "s"}, nil
				}
			},
			wantErr: linkModel.ErrProcessingFailure,
		},
		{
			name: "Embedding_Failure",
			setupMocks: func(meta *MockMetaStore, vectors *MockVectorStore, fetcher *MockFetcher, processor *MockProcessor, embedder *MockEmbedder, blobs *MockBlobStore) {
				embedder.OnGetEmbedding = func(ctx context.Context, text string) ([]float32, error) {
					return nil, fmt.Errorf("quota: %w", linkModel.ErrEmbeddingFailure)
				}
			},
			wantErr: linkModel.ErrEmbeddingFailure,
		},
		{
			name: "Vector_Store_Failure",
			setupMocks: func(meta *MockMetaStore, vectors *MockVectorStore, fetcher *MockFetcher, processor *MockProcessor, embedder *MockEmbedder, blobs *MockBlobStore) {
				vectors.OnInsert = func(ctx context.Context, vectorId string, metadata linkModel.VectorMetadata, embedding []float32) error {
					return fmt.Errorf("upsert: %w", linkModel.ErrStoreFailure)
				}
			},
			wantErr: linkModel.ErrStoreFailure,
		},
		{
			name: "Metadata_Store_Failure",
			setupMocks: func(meta *MockMetaStore, vectors *MockVectorStore, fetcher *MockFetcher, processor *MockProcessor, embedder *MockEmbedder, blobs *MockBlobStore) {
				meta.OnSave = func(ctx context.Context, doc linkModel.Document) error {
					return fmt.Errorf("insert: %w", linkModel.ErrStoreFailure)
				}
			},
			wantErr: linkModel.ErrStoreFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMockMetaStore()
			blobs := NewMockBlobStore()
			vectors := &MockVectorStore{}
			fetcher := &MockFetcher{}
			processor := &MockProcessor{}
			embedder := &MockEmbedder{}

			tt.setupMocks(meta, vectors, fetcher, processor, embedder, blobs)

			s := newTestService(meta, blobs, vectors, fetcher, processor, embedder)

			_, err := s.Ingest(testCtx(), "https://example.com/failing")
			if err == nil {
				t.Fatal("Ingest expected to fail")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Error %v does not wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestIngest_DedupStoreErrorIsFatal(t *testing.T) {
	meta := NewMockMetaStore()
	meta.OnFindByURL = func(ctx context.Context, url string) (linkModel.Document, error) {
		return linkModel.Document{}, fmt.Errorf("timeout: %w", linkModel.ErrStoreFailure)
	}
	fetcher := &MockFetcher{}

	s := newTestService(meta, NewMockBlobStore(), &MockVectorStore{}, fetcher, &MockProcessor{}, &MockEmbedder{})

	_, err := s.Ingest(testCtx(), "https://example.com/x")
	if !errors.Is(err, linkModel.ErrStoreFailure) {
		t.Errorf("Error %v does not wrap store failure", err)
	}
	if fetcher.FetchCalls != 0 {
		t.Error("Fetch must not run when the dedup check errors")
	}
}
