package bookmark

import (
	"context"

	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
	"github.com/akolanti/LinkAPI/internal/fetch"
	"github.com/akolanti/LinkAPI/internal/rag/embedding"
	"github.com/akolanti/LinkAPI/internal/rag/summarize"
	"github.com/akolanti/LinkAPI/internal/rag/vectorDB"
	"github.com/akolanti/LinkAPI/pkg/logger_i"
)

/*
ARCHITECTURE NOTE: OPAQUE INTERFACE PATTERN
---------------------------------------------------------

1. Service (Interface):
  - This is the PUBLIC contract - what the worker and handlers can do.
  - They never see the three stores behind it.

2. service (Private Struct):
  - This is the PRIVATE implementation.
  - It holds the state (store clients, fetcher, model clients).
  - Lowercase so external packages can't reach the dependencies directly.

3. Pointer Receiver (*service):
  - Methods on (*service) satisfy the Service interface implicitly.
  - if it quacks like a duck, -it's a duck (Duck Typing)

4. Dependency Injection (NewService):
  - Lets tests swap every store and model client for mocks without
    touching the callers.
*/

// MetadataStore is the system of record for document descriptors. URL is the
// lookup key for dedup and deletion, Id for result resolution.
type MetadataStore interface {
	FindByURL(ctx context.Context, url string) (linkModel.Document, error)
	GetById(ctx context.Context, id string) (linkModel.Document, error)
	Save(ctx context.Context, doc linkModel.Document) error
	DeleteByURL(ctx context.Context, url string) (linkModel.Document, error)
}

// BlobStore keeps the raw fetched bytes, keyed by the document's bucket path.
type BlobStore interface {
	Put(ctx context.Context, path string, content []byte) error
	Get(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
}

// Service is the bookmark core: everything that touches more than one of the
// three stores goes through here, in a fixed order.
type Service interface {
	Ingest(ctx context.Context, url string) (linkModel.Document, error)
	Search(ctx context.Context, query string) ([]linkModel.SearchResult, error)
	Delete(ctx context.Context, url string) (linkModel.Document, error)
	GetContent(ctx context.Context, id string) ([]byte, string, error)
}

type service struct {
	meta      MetadataStore
	blobs     BlobStore
	vectors   vectorDB.DataStore
	fetcher   fetch.ContentFetcher
	processor summarize.Processor
	embedder  embedding.Embedder
	logger    *logger_i.Logger
}

// NewService constructor
func NewService(meta MetadataStore, blobs BlobStore, vectors vectorDB.DataStore,
	fetcher fetch.ContentFetcher, processor summarize.Processor, embedder embedding.Embedder) Service {
	return &service{
		meta:      meta,
		blobs:     blobs,
		vectors:   vectors,
		fetcher:   fetcher,
		processor: processor,
		embedder:  embedder,
		logger:    logger_i.NewLogger("Bookmark Service :"),
	}
}
