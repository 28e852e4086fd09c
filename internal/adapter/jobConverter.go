package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/akolanti/LinkAPI/internal/api"
	"github.com/akolanti/LinkAPI/internal/domain/jobModel"
	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
)

func ToInitJobResponse(id string) api.InitJobResponse {
	return api.InitJobResponse{
		Id:        id,
		StatusURL: fmt.Sprintf("status/%s", id), //pass "status/job.Id"
	}
}

func ToLinkResponse(doc linkModel.Document) api.LinkResponse {
	return api.LinkResponse{
		Id:          doc.Id,
		URL:         doc.URL,
		Title:       doc.Title,
		Summary:     doc.Summary,
		ContentType: doc.ContentType,
		Size:        doc.Size,
		ChunkCount:  doc.ChunkCount,
		CreatedAt:   doc.CreatedAt,
	}
}

func ToAPIResponse(job jobModel.Job) api.JobResponse {

	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	var linkPtr *api.LinkResponse
	if job.JobPayload.Document != nil {
		link := ToLinkResponse(*job.JobPayload.Document)
		linkPtr = &link
	}

	return api.JobResponse{
		Id:        job.Id,
		StartTime: job.CreatedTime,
		EndTime:   job.EndTime,
		Error:     errorPtr,
		Result: api.Result{
			Status: string(job.Status),
			Link:   linkPtr,
		},
	}
}

func ToSearchResponse(results []linkModel.SearchResult) api.SearchResponse {
	entries := make([]api.SearchResultEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, api.SearchResultEntry{
			Link:     ToLinkResponse(r.Document),
			ChunkIds: r.ChunkIds,
		})
	}
	return api.SearchResponse{Results: entries}
}

// StatusCodeForError maps the pipeline's failure classes onto HTTP codes.
// Upstream failures (the fetched site, the model APIs) are gateway errors,
// store failures are ours.
func StatusCodeForError(err error) int {
	switch {
	case errors.Is(err, linkModel.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, linkModel.ErrFetchFailure):
		return http.StatusBadGateway
	case errors.Is(err, linkModel.ErrProcessingFailure):
		return http.StatusBadGateway
	case errors.Is(err, linkModel.ErrEmbeddingFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status: string(api.JobStatusError),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   false,
		},
	}
}
