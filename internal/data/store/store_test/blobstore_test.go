package store_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/akolanti/LinkAPI/internal/config"
	"github.com/akolanti/LinkAPI/internal/data/blobStore"
	"github.com/akolanti/LinkAPI/internal/data/redisStore"
	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisBlobStore_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	blobs := blobStore.TestBlobStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "blob-trace")
	path := "content/doc-1.html"
	content := []byte("<html><body>saved page</body></html>")

	t.Run("Put and Get Roundtrip", func(t *testing.T) {
		if err := blobs.Put(ctx, path, content); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, err := blobs.Get(ctx, path)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, content) {
			t.Errorf("Blob mismatch! Got %q, want %q", got, content)
		}
	})

	t.Run("Blobs carry no TTL", func(t *testing.T) {
		if mr.TTL(path) != 0 {
			t.Errorf("Expected no expiry on blob key, got %v", mr.TTL(path))
		}
	})

	t.Run("Get Missing Blob", func(t *testing.T) {
		_, err := blobs.Get(ctx, "content/ghost.pdf")
		if !errors.Is(err, linkModel.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Delete Blob", func(t *testing.T) {
		if err := blobs.Delete(ctx, path); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if mr.Exists(path) {
			t.Error("Blob still exists in Redis after Delete")
		}
	})

	t.Run("Delete Absent Blob Is Tolerated", func(t *testing.T) {
		if err := blobs.Delete(ctx, path); err != nil {
			t.Errorf("Deleting an absent blob should not fail, got %v", err)
		}
	})
}
