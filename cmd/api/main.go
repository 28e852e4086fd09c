// @title           Link Bookmark API
// @version         1.0
// @description     This API handles asynchronous link ingestion and semantic search over saved bookmarks
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akolanti/LinkAPI/internal/bookmark"
	"github.com/akolanti/LinkAPI/internal/config"
	"github.com/akolanti/LinkAPI/internal/data/blobStore"
	"github.com/akolanti/LinkAPI/internal/data/metaStore"
	"github.com/akolanti/LinkAPI/internal/data/store"
	jobmodel "github.com/akolanti/LinkAPI/internal/domain/jobModel"
	"github.com/akolanti/LinkAPI/internal/fetch"
	"github.com/akolanti/LinkAPI/internal/handlers"
	"github.com/akolanti/LinkAPI/internal/job"
	"github.com/akolanti/LinkAPI/internal/rag/embedding"
	"github.com/akolanti/LinkAPI/internal/rag/embedding/googleEmbedding"
	"github.com/akolanti/LinkAPI/internal/rag/embedding/openaiEmbedding"
	"github.com/akolanti/LinkAPI/internal/rag/summarize/gemini"
	"github.com/akolanti/LinkAPI/internal/rag/vectorDB/qdrantDB"
	"github.com/akolanti/LinkAPI/internal/server"
	"github.com/akolanti/LinkAPI/internal/worker"
	"github.com/akolanti/LinkAPI/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service and job store
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
		JobStore:          store.GetRedisJobStore(serviceContext),
	}
	logger.Info("Starting job service")

	if serviceConfig.JobStore == nil {
		logger.Error("Redis job store is offline - falling back to in-memory jobs")
		serviceConfig.JobStore = store.InitInMemoryJobStore()
	}
	service := job.InitJobService(serviceConfig)

	//the three stores
	metadataStore, err := metaStore.NewMongoMetaStore(serviceContext)
	if err != nil {
		logger.Error("Mongo metadata store failed to initialize. Shutting down.", "error", err)
		return
	}
	blobs := blobStore.GetRedisBlobStore(serviceContext)

	embeddingService := selectEmbedder(serviceContext, logger)
	vectorDB := qdrantDB.GetQdrantClient(serviceContext, embeddingService)
	summarizer := gemini.GetGeminiSummarizer(serviceContext, config.GeminiModelName, config.GoogleAPIKey)

	if blobs == nil || vectorDB == nil || embeddingService == nil || summarizer == nil {
		logger.Error("One or more external services failed to initialize. Shutting down.")
		logger.Debug("Available services : ", "BlobStore", blobs != nil, "VectorDB", vectorDB != nil, "EmbeddingService", embeddingService != nil, "Summarizer", summarizer != nil)
		return
	}

	fetcher := fetch.NewHTTPFetcher()

	bookmarkService := bookmark.NewService(metadataStore, blobs, vectorDB, fetcher, summarizer, embeddingService)

	handlers.InitJobHandler(service, bookmarkService)

	//init worker pool
	worker.InitServices(service, bookmarkService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

func selectEmbedder(ctx context.Context, logger *logger_i.Logger) embedding.Embedder {
	if config.EmbeddingProvider == "openai" {
		apikey := os.Getenv("OPENAI_API_KEY")
		if apikey == "" {
			apikey = config.OpenAIAPIKey
		}
		logger.Info("Using OpenAI embeddings", "model", config.OpenAIEmbedModel)
		return openaiEmbedding.GetOpenAIEmbeddingClient(config.OpenAIEmbedModel, apikey)
	}
	logger.Info("Using Google embeddings", "model", config.GoogleEmbeddingModel)
	return googleEmbedding.GetGoogleEmbeddingClient(ctx, config.GoogleEmbeddingModel, config.GoogleAPIKey)
}
