package metaStore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/akolanti/LinkAPI/internal/config"
	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
	"github.com/akolanti/LinkAPI/pkg/logger_i"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMetaStore holds the document descriptor records. The collection carries a
// unique index on url: two racing first-time ingests of the same URL both pass
// the dedup read, but only one save lands - the loser gets a duplicate-key error
// instead of producing a second record.
type MongoMetaStore struct {
	client    *mongo.Client
	documents *mongo.Collection
	logger    *logger_i.Logger
}

func NewMongoMetaStore(ctx context.Context) (*MongoMetaStore, error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = config.MongoURI
	}

	connectCtx, cancel := context.WithTimeout(ctx, config.MongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("can't ping MongoDB: %w", err)
	}

	s := &MongoMetaStore{
		client:    client,
		documents: client.Database(config.MongoDatabase).Collection(config.MongoDocsCollection),
		logger:    logger_i.NewLogger("MetaStore"),
	}

	if err := s.createIndexes(ctx); err != nil {
		return nil, fmt.Errorf("can't create indexes: %w", err)
	}

	go s.closeOnDone(ctx)
	return s, nil
}

func (s *MongoMetaStore) createIndexes(ctx context.Context) error {
	indexCtx, cancel := context.WithTimeout(ctx, config.MongoConnectTimeout)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "url", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := s.documents.Indexes().CreateOne(indexCtx, indexModel)
	return err
}

func (s *MongoMetaStore) closeOnDone(ctx context.Context) {
	<-ctx.Done()
	s.logger.Info("Closing Mongo client")
	disconnectCtx, cancel := context.WithTimeout(context.Background(), config.MongoConnectTimeout)
	defer cancel()
	if err := s.client.Disconnect(disconnectCtx); err != nil {
		s.logger.Error("Error closing Mongo client", "error", err)
	}
}

func (s *MongoMetaStore) FindByURL(ctx context.Context, url string) (linkModel.Document, error) {
	var doc linkModel.Document
	err := s.documents.FindOne(ctx, bson.M{"url": url}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, fmt.Errorf("document for %s: %w", url, linkModel.ErrNotFound)
	}
	if err != nil {
		return doc, fmt.Errorf("find by url: %w: %w", linkModel.ErrStoreFailure, err)
	}
	return doc, nil
}

func (s *MongoMetaStore) GetById(ctx context.Context, id string) (linkModel.Document, error) {
	var doc linkModel.Document
	err := s.documents.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, fmt.Errorf("document %s: %w", id, linkModel.ErrNotFound)
	}
	if err != nil {
		return doc, fmt.Errorf("get by id: %w: %w", linkModel.ErrStoreFailure, err)
	}
	return doc, nil
}

func (s *MongoMetaStore) Save(ctx context.Context, doc linkModel.Document) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "docId", doc.Id)
	_, err := s.documents.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("save document: %w: %w", linkModel.ErrStoreFailure, err)
	}
	log.Debug("Saved document record", "url", doc.URL)
	return nil
}

// DeleteByURL removes the record and returns it - the returned descriptor drives
// the blob and vector cleanup that follows.
func (s *MongoMetaStore) DeleteByURL(ctx context.Context, url string) (linkModel.Document, error) {
	var doc linkModel.Document
	err := s.documents.FindOneAndDelete(ctx, bson.M{"url": url}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, fmt.Errorf("document for %s: %w", url, linkModel.ErrNotFound)
	}
	if err != nil {
		return doc, fmt.Errorf("delete by url: %w: %w", linkModel.ErrStoreFailure, err)
	}
	return doc, nil
}
