package api

import "time"

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type LinkResponse struct {
	Id          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	ContentType string    `json:"content_type"`
	Size        int       `json:"size"`
	ChunkCount  int       `json:"chunk_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type Result struct {
	Status string        `json:"status"`
	Link   *LinkResponse `json:"link,omitempty"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

type SearchResultEntry struct {
	Link     LinkResponse `json:"link"`
	ChunkIds []int        `json:"chunk_ids"`
}

type SearchResponse struct {
	Results []SearchResultEntry `json:"results"`
}

// requests---------------------

type IngestLinkRequest struct {
	URL string `json:"url" validate:"required"`
}

type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}

type DeleteLinkRequest struct {
	URL string `json:"url" validate:"required"`
}
