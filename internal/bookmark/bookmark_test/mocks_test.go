package bookmark_test

import (
	"context"
	"sync"

	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
)

// MockMetaStore implements bookmark.MetadataStore on top of a map so ingest
// and delete tests see real state transitions.
type MockMetaStore struct {
	// Control fields to simulate different behaviors
	OnFindByURL   func(ctx context.Context, url string) (linkModel.Document, error)
	OnGetById     func(ctx context.Context, id string) (linkModel.Document, error)
	OnSave        func(ctx context.Context, doc linkModel.Document) error
	OnDeleteByURL func(ctx context.Context, url string) (linkModel.Document, error)

	mu        sync.Mutex
	docs      map[string]linkModel.Document // keyed by url
	SaveCalls int
	FindCalls int
}

func NewMockMetaStore() *MockMetaStore {
	return &MockMetaStore{docs: make(map[string]linkModel.Document)}
}

func (m *MockMetaStore) FindByURL(ctx context.Context, url string) (linkModel.Document, error) {
	m.mu.Lock()
	m.FindCalls++
	m.mu.Unlock()
	if m.OnFindByURL != nil {
		return m.OnFindByURL(ctx, url)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[url]
	if !ok {
		return linkModel.Document{}, linkModel.ErrNotFound
	}
	return doc, nil
}

func (m *MockMetaStore) GetById(ctx context.Context, id string) (linkModel.Document, error) {
	if m.OnGetById != nil {
		return m.OnGetById(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range m.docs {
		if doc.Id == id {
			return doc, nil
		}
	}
	return linkModel.Document{}, linkModel.ErrNotFound
}

func (m *MockMetaStore) Save(ctx context.Context, doc linkModel.Document) error {
	m.mu.Lock()
	m.SaveCalls++
	m.mu.Unlock()
	if m.OnSave != nil {
		return m.OnSave(ctx, doc)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[doc.URL] = doc
	return nil
}

func (m *MockMetaStore) DeleteByURL(ctx context.Context, url string) (linkModel.Document, error) {
	if m.OnDeleteByURL != nil {
		return m.OnDeleteByURL(ctx, url)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[url]
	if !ok {
		return linkModel.Document{}, linkModel.ErrNotFound
	}
	delete(m.docs, url)
	return doc, nil
}

// MockBlobStore implements bookmark.BlobStore
type MockBlobStore struct {
	OnPut    func(ctx context.Context, path string, content []byte) error
	OnDelete func(ctx context.Context, path string) error

	mu    sync.Mutex
	Blobs map[string][]byte
}

func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{Blobs: make(map[string][]byte)}
}

func (m *MockBlobStore) Put(ctx context.Context, path string, content []byte) error {
	if m.OnPut != nil {
		return m.OnPut(ctx, path, content)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Blobs[path] = content
	return nil
}

func (m *MockBlobStore) Get(ctx context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.Blobs[path]
	if !ok {
		return nil, linkModel.ErrNotFound
	}
	return content, nil
}

func (m *MockBlobStore) Delete(ctx context.Context, path string) error {
	if m.OnDelete != nil {
		return m.OnDelete(ctx, path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Blobs, path)
	return nil
}

// MockVectorStore implements vectorDB.DataStore
type MockVectorStore struct {
	OnInsert           func(ctx context.Context, vectorId string, metadata linkModel.VectorMetadata, embedding []float32) error
	OnQuery            func(ctx context.Context, query string, k int) ([]linkModel.ChunkMatch, error)
	OnDeleteByDocument func(ctx context.Context, documentId string, chunkCount int) error

	mu       sync.Mutex
	Inserted []string // vector ids in insertion order
	Deleted  []string
}

func (m *MockVectorStore) Insert(ctx context.Context, vectorId string, metadata linkModel.VectorMetadata, embedding []float32) error {
	if m.OnInsert != nil {
		return m.OnInsert(ctx, vectorId, metadata, embedding)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Inserted = append(m.Inserted, vectorId)
	return nil
}

func (m *MockVectorStore) Query(ctx context.Context, query string, k int) ([]linkModel.ChunkMatch, error) {
	if m.OnQuery != nil {
		return m.OnQuery(ctx, query, k)
	}
	return nil, nil
}

func (m *MockVectorStore) DeleteByDocument(ctx context.Context, documentId string, chunkCount int) error {
	if m.OnDeleteByDocument != nil {
		return m.OnDeleteByDocument(ctx, documentId, chunkCount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := 0; i < chunkCount; i++ {
		m.Deleted = append(m.Deleted, linkModel.VectorId(documentId, i))
	}
	return nil
}

// MockFetcher implements fetch.ContentFetcher
type MockFetcher struct {
	OnFetch    func(ctx context.Context, url string) ([]byte, string, error)
	FetchCalls int
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	m.FetchCalls++
	if m.OnFetch != nil {
		return m.OnFetch(ctx, url)
	}
	return []byte("<html><body>some page</body></html>"), "text/html", nil
}

// MockProcessor implements summarize.Processor
type MockProcessor struct {
	OnProcess func(ctx context.Context, content []byte, contentType string) (linkModel.ProcessedContent, error)
}

func (m *MockProcessor) Process(ctx context.Context, content []byte, contentType string) (linkModel.ProcessedContent, error) {
	if m.OnProcess != nil {
		return m.OnProcess(ctx, content, contentType)
	}
	return linkModel.ProcessedContent{
		Title:   "mock title",
		Summary: "mock summary",
		Chunks:  []string{"chunk one", "chunk two", "chunk three"},
	}, nil
}

// MockEmbedder implements embedding.Embedder
type MockEmbedder struct {
	OnGetEmbedding func(ctx context.Context, text string) ([]float32, error)
	EmbedCalls     int
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	m.EmbedCalls++
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, text)
	}
	return []float32{0.1, 0.2, 0.3}, nil
}
