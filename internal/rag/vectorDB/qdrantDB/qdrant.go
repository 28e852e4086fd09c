package qdrantDB

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/akolanti/LinkAPI/internal/config"
	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
	"github.com/akolanti/LinkAPI/internal/rag/embedding"
	"github.com/akolanti/LinkAPI/pkg/logger_i"
	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

var logger *logger_i.Logger
var qdrantInstance *qdrant.Client
var once sync.Once
var dimension = uint64(config.EmbeddingOutputDimensionality)
var collectionName = config.VectorCollectionName

// Qdrant point ids must be UUIDs or integers, so the canonical
// "{document_id}-{chunk_id}" vector id maps to a v5 UUID in this namespace.
// The mapping is deterministic: the same vector id always lands on the same point.
var pointNamespace = uuid.MustParse("8a0f31f4-6f3a-4f6e-9d2e-5b1c08a93f11")

type ClientHolder struct {
	QObj     *qdrant.Client
	embedder embedding.Embedder
}

func GetQdrantClient(ctx context.Context, embedder embedding.Embedder) *ClientHolder {

	once.Do(func() {
		logger = logger_i.NewLogger("Qdrant")
		res := newClient()
		if res != nil {
			qdrantInstance = res
			go closeQdrant(ctx, qdrantInstance)
		}
	})

	if qdrantInstance == nil {
		return nil
	}
	return &ClientHolder{
		QObj:     qdrantInstance,
		embedder: embedder,
	}
}

func newClient() *qdrant.Client {

	host := os.Getenv("QDRANT_HOST")
	port, er := strconv.Atoi(os.Getenv("QDRANT_PORT"))

	if host == "" || er != nil {
		host = config.QdrantHost
		port = config.QdrantGrpcPort
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     host,
		Port:     port,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		logger.Error("could not instantiate: ", "error:", err)
		return nil
	}

	err = createCollection(context.Background(), client, collectionName)
	if err != nil {
		logger.Error("could not create collection: ", "collectionName", collectionName, "error:", err)
		return nil
	}

	return client
}

func closeQdrant(ctx context.Context, qi *qdrant.Client) {
	<-ctx.Done()
	logger.Info("Shutting down Qdrant")
	err := qi.Close()
	if err != nil {
		logger.Error("could not close Qdrant: ", "error:", err)
	}
	logger.Info("Closed Qdrant")
}

func pointId(vectorId string) string {
	return uuid.NewSHA1(pointNamespace, []byte(vectorId)).String()
}

func (db *ClientHolder) Insert(ctx context.Context, vectorId string, metadata linkModel.VectorMetadata, vector []float32) error {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(pointId(vectorId)),
		Vectors: qdrant.NewVectors(vector...),
		Payload: qdrant.NewValueMap(map[string]any{
			"vector_id":   vectorId,
			"document_id": metadata.DocumentId,
			"chunk_id":    metadata.ChunkId,
		}),
	}

	_, err := db.QObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collectionName,
		Points:         []*qdrant.PointStruct{point},
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		loggr.Error("Error inserting into Qdrant", "vectorId", vectorId, "error", err)
		return fmt.Errorf("qdrant insert %s: %w: %w", vectorId, linkModel.ErrStoreFailure, err)
	}
	return nil
}

func (db *ClientHolder) Query(ctx context.Context, query string, k int) ([]linkModel.ChunkMatch, error) {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	queryVector, err := db.embedder.GetEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("qdrant query embedding: %w: %w", linkModel.ErrStoreFailure, err)
	}

	result, err := db.QObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collectionName,
		Query:          qdrant.NewQuery(queryVector...),
		Limit:          qdrant.PtrOf(uint64(k)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		loggr.Error("Error querying Qdrant: ", "error:", err)
		return nil, fmt.Errorf("qdrant query: %w: %w", linkModel.ErrStoreFailure, err)
	}

	matches := make([]linkModel.ChunkMatch, 0, len(result))
	for _, hit := range result {
		matches = append(matches, linkModel.ChunkMatch{
			VectorId: hit.Payload["vector_id"].GetStringValue(),
			Score:    hit.Score,
			Metadata: linkModel.VectorMetadata{
				DocumentId: hit.Payload["document_id"].GetStringValue(),
				ChunkId:    int(hit.Payload["chunk_id"].GetIntegerValue()),
			},
		})
	}

	loggr.Debug("Vector query done", "hits", len(matches))
	return matches, nil
}

// DeleteByDocument removes the ids "{documentId}-0" .. "{documentId}-{count-1}".
// The recorded chunk count bounds the delete - ids outside that range were never
// written for this document.
func (db *ClientHolder) DeleteByDocument(ctx context.Context, documentId string, chunkCount int) error {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	ids := make([]*qdrant.PointId, 0, chunkCount)
	for i := 0; i < chunkCount; i++ {
		ids = append(ids, qdrant.NewID(pointId(linkModel.VectorId(documentId, i))))
	}
	if len(ids) == 0 {
		return nil
	}

	_, err := db.QObj.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: collectionName,
		Points:         qdrant.NewPointsSelector(ids...),
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		loggr.Error("Error deleting from Qdrant", "documentId", documentId, "error", err)
		return fmt.Errorf("qdrant delete for document %s: %w: %w", documentId, linkModel.ErrStoreFailure, err)
	}

	loggr.Debug("Deleted document vectors", "documentId", documentId, "count", chunkCount)
	return nil
}

func createCollection(ctx context.Context, client *qdrant.Client, collectionName string) error {
	if collectionName == "" {
		return errors.New("empty collection name")
	}

	exists, err := client.CollectionExists(ctx, collectionName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	return err
}
