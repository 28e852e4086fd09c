package blobStore

import (
	"context"
	"fmt"

	"github.com/akolanti/LinkAPI/internal/config"
	"github.com/akolanti/LinkAPI/internal/data/redisStore"
	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
	"github.com/akolanti/LinkAPI/pkg/logger_i"
)

// RedisBlobStore keeps raw fetched content keyed by bucket path. Blobs carry no
// TTL - they are only removed when their document is deleted.
type RedisBlobStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisBlobStore(ctx context.Context) *RedisBlobStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisBlobStore)
	if inner == nil {
		return nil
	}
	return &RedisBlobStore{
		store:  inner,
		logger: logger_i.NewLogger("BlobStore"),
	}
}

func (s *RedisBlobStore) Put(ctx context.Context, path string, content []byte) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "path", path)
	if err := s.store.Set(ctx, path, content, config.RedisBlobTTL); err != nil {
		return fmt.Errorf("blob put %s: %w: %w", path, linkModel.ErrStoreFailure, err)
	}
	log.Debug("Saved blob", "bytes", len(content))
	return nil
}

func (s *RedisBlobStore) Get(ctx context.Context, path string) ([]byte, error) {
	content, err := s.store.GetBytes(ctx, path)
	if s.store.IsNil(err) {
		return nil, fmt.Errorf("blob get %s: %w", path, linkModel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("blob get %s: %w: %w", path, linkModel.ErrStoreFailure, err)
	}
	return content, nil
}

func (s *RedisBlobStore) Delete(ctx context.Context, path string) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "path", path)
	removed, err := s.store.Del(ctx, path)
	if err != nil {
		return fmt.Errorf("blob delete %s: %w: %w", path, linkModel.ErrStoreFailure, err)
	}
	if removed == 0 {
		// tolerated: the document row is already gone, an absent blob is the
		// same orphan class the missing cross-store transaction can produce
		log.Warn("Blob was already absent")
	}
	log.Debug("Deleted blob")
	return nil
}

func TestBlobStore(store *redisStore.Store) *RedisBlobStore {
	return &RedisBlobStore{
		store:  store,
		logger: logger_i.NewLogger("test blob store"),
	}
}
