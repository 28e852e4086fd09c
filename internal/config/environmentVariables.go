package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//auth
	NoAuthBypass = true //set false once a real token is issued
	AuthToken    = ""

	//TODO:this will differ based on the request and provider
	EmbeddingOutputDimensionality int32 = 1536
	VectorCollectionName                = "bookmark-chunks"

	//search shape: candidate chunk pool and the document cap on the final result
	SearchCandidatePoolSize = 20
	SearchResultLimit       = 5

	//duplicate URL policy: when a URL is already known, the existing record is
	//returned untouched. Duplicates created by a racing first ingest are left as
	//independent documents; the mongo unique index on url rejects the loser's write.
	DuplicateURLPolicy = "return-existing"

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	//per-job budget for a full ingestion (fetch + summarize + embed + 3 stores)
	IngestJobTimeout = 120 * time.Second

	//vectorDB
	QdrantHost             = ""
	QdrantPort             = 6333 //http
	QdrantGrpcPort         = 6334
	QdrantUseTLS           = false //set for https
	QdrantPoolSize         = 1     //2-5 is preferred for prod according to documentation
	QdrantKeepAliveTimeout = 30 * time.Second

	//summarizer + embeddings
	GeminiModelName      = "gemini-2.5-flash-lite-preview-09-2025"
	GoogleEmbeddingModel = "gemini-embedding-001"
	GoogleAPIKey         = ""

	//set to "openai" to embed with the OpenAI client instead of Gemini
	EmbeddingProvider = "google"
	OpenAIEmbedModel  = "text-embedding-3-small"
	OpenAIAPIKey      = ""

	//content fetching
	FetchTimeout        = 30 * time.Second
	MaxFetchBytes       = 32 << 20 //32mb
	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//chunking
	MaxChunkSize = 1000 //characters
	ChunkOverlap = 150  //generous overlap helps semantic continuity

	//metadata store
	MongoURI            = "mongodb://127.0.0.1:27017"
	MongoDatabase       = "linkapi"
	MongoDocsCollection = "documents"
	MongoConnectTimeout = 10 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	//redis has 16 DB we can use
	RedisJobStore  = 0
	RedisBlobStore = 1

	//job records expire, blobs never do - they die with their document
	RedisJobStoreTTL  = 24 * time.Hour
	RedisBlobTTL      = 0
	RedisReadTimeout  = 30 * time.Second
	RedisWriteTimeout = 30 * time.Second
)
