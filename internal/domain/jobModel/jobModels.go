package jobModel

import (
	"context"
	"time"

	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
)

type JobStatus string
type InternalStatus string

type JobType string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	IngestInit    InternalStatus = "IngestInit"
	DedupCheck    InternalStatus = "DedupCheck"
	FetchCall     InternalStatus = "Fetch"
	SummarizeCall InternalStatus = "Summarize"
	EmbeddingCall InternalStatus = "EmbeddingAPI"
	VectorInsert  InternalStatus = "VectorInsert"
	BlobWrite     InternalStatus = "BlobWrite"
	MetadataWrite InternalStatus = "MetadataWrite"
	Error         InternalStatus = "Error"

	Complete InternalStatus = "Complete"

	JobTypeIngest JobType = "Ingest"
)

type Job struct {
	Id          string         `json:"id"`
	TraceId     string         `json:"trace_id"`
	JobType     JobType        `json:"job_type"`
	JobPayload  JobPayload     `json:"job_payload"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

type JobPayload struct {
	URL      string              `json:"url,omitempty"`
	Document *linkModel.Document `json:"document,omitempty"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}
