package bookmark_test

import (
	"errors"
	"testing"

	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
)

func TestDelete_RemovesAllThreeStores(t *testing.T) {
	meta := NewMockMetaStore()
	blobs := NewMockBlobStore()
	vectors := &MockVectorStore{}

	s := newTestService(meta, blobs, vectors, &MockFetcher{}, &MockProcessor{}, &MockEmbedder{})

	doc, err := s.Ingest(testCtx(), "https://example.com/gone")
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	deleted, err := s.Delete(testCtx(), "https://example.com/gone")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted.Id != doc.Id {
		t.Errorf("Deleted id got %s, want %s", deleted.Id, doc.Id)
	}

	if _, err := s.Search(testCtx(), "q"); err != nil {
		t.Fatalf("Search after delete failed: %v", err)
	}
	if _, ok := blobs.Blobs[doc.BucketPath]; ok {
		t.Error("Blob still present after delete")
	}
	if len(vectors.Deleted) != doc.ChunkCount {
		t.Fatalf("Vector deletes got %d, want %d", len(vectors.Deleted), doc.ChunkCount)
	}
	for i, id := range vectors.Deleted {
		want := linkModel.VectorId(doc.Id, i)
		if id != want {
			t.Errorf("Deleted vector %d got %s, want %s", i, id, want)
		}
	}
}

func TestDelete_UnknownURLIsNotFound(t *testing.T) {
	s := newTestService(NewMockMetaStore(), NewMockBlobStore(), &MockVectorStore{}, &MockFetcher{}, &MockProcessor{}, &MockEmbedder{})

	_, err := s.Delete(testCtx(), "https://example.com/never-saved")
	if !errors.Is(err, linkModel.ErrNotFound) {
		t.Errorf("Error %v does not wrap not-found", err)
	}
}

func TestDelete_SecondDeleteIsNotFound(t *testing.T) {
	s := newTestService(NewMockMetaStore(), NewMockBlobStore(), &MockVectorStore{}, &MockFetcher{}, &MockProcessor{}, &MockEmbedder{})

	if _, err := s.Ingest(testCtx(), "https://example.com/once"); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if _, err := s.Delete(testCtx(), "https://example.com/once"); err != nil {
		t.Fatalf("First delete failed: %v", err)
	}

	_, err := s.Delete(testCtx(), "https://example.com/once")
	if !errors.Is(err, linkModel.ErrNotFound) {
		t.Errorf("Second delete error %v does not wrap not-found", err)
	}
}

func TestDelete_ThenReingestGetsNewDocument(t *testing.T) {
	meta := NewMockMetaStore()
	s := newTestService(meta, NewMockBlobStore(), &MockVectorStore{}, &MockFetcher{}, &MockProcessor{}, &MockEmbedder{})

	first, err := s.Ingest(testCtx(), "https://example.com/again")
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if _, err := s.Delete(testCtx(), "https://example.com/again"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	second, err := s.Ingest(testCtx(), "https://example.com/again")
	if err != nil {
		t.Fatalf("Reingest failed: %v", err)
	}
	if second.Id == first.Id {
		t.Error("Reingest reused the deleted document id")
	}
}

func TestGetContent_RoundTrip(t *testing.T) {
	blobs := NewMockBlobStore()
	s := newTestService(NewMockMetaStore(), blobs, &MockVectorStore{}, &MockFetcher{}, &MockProcessor{}, &MockEmbedder{})

	doc, err := s.Ingest(testCtx(), "https://example.com/content")
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	content, contentType, err := s.GetContent(testCtx(), doc.Id)
	if err != nil {
		t.Fatalf("GetContent failed: %v", err)
	}
	if contentType != "text/html" {
		t.Errorf("ContentType got %s, want text/html", contentType)
	}
	if string(content) != "<html><body>some page</body></html>" {
		t.Errorf("Content got %q", string(content))
	}
}

func TestGetContent_UnknownIdIsNotFound(t *testing.T) {
	s := newTestService(NewMockMetaStore(), NewMockBlobStore(), &MockVectorStore{}, &MockFetcher{}, &MockProcessor{}, &MockEmbedder{})

	_, _, err := s.GetContent(testCtx(), "no-such-doc")
	if !errors.Is(err, linkModel.ErrNotFound) {
		t.Errorf("Error %v does not wrap not-found", err)
	}
}
