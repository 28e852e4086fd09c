package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/akolanti/LinkAPI/internal/adapter"
	"github.com/akolanti/LinkAPI/internal/adapter/utils"
	"github.com/akolanti/LinkAPI/internal/api"
	"github.com/akolanti/LinkAPI/internal/config"
	"github.com/akolanti/LinkAPI/pkg/logger_i"
)

var logRH *logger_i.Logger

type newJobData struct {
	id      string
	url     string
	traceId string
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	return
}

// IngestLinkHandler godoc
// @Summary      Save a link
// @Description  Accepts a URL, queues a background ingestion job, and returns a job ID to track status.
// @Tags         Links
// @Accept       json
// @Produce      json
// @Param        request  body      api.IngestLinkRequest  true  "URL to ingest"
// @Success      202      {object}  api.InitJobResponse    "Job successfully created"
// @Failure      400      {object}  api.JobResponse        "Invalid request data or URL"
// @Router       /links [post]
func IngestLinkHandler(w http.ResponseWriter, request *http.Request) {

	if validateContext(request.Context()) {

		var requestData api.IngestLinkRequest
		defer func(Body io.ReadCloser) {
			err := Body.Close()
			if err != nil {
				logRH.Error("Couldn't close the ingest handler reader :", err)
			}
		}(request.Body)
		if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil || !ValidateLinkURL(requestData.URL) {
			logRH.Warn("Bad ingest request: ", "error:", err, "request data:", requestData)
			WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
			return
		}

		newJob := newJobData{
			id:      utils.GetNewUUID(),
			url:     requestData.URL,
			traceId: request.Context().Value(config.TRACE_ID_KEY).(string),
		}
		CreateNewJob(newJob)
		writeJsonResponse(w, http.StatusAccepted, adapter.ToInitJobResponse(newJob.id))
		return
	}
	logRH.Warn("Invalid Context by request ", request.RemoteAddr)
}

// GetStatusHandler godoc
// @Summary      Get job status
// @Description  Retrieves the current status of a specific ingestion job using its ID.
// @Tags         Job Status
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Job ID "
// @Success      200  {object}  api.JobResponse   "The current status of the job"
// @Failure      404  {object}  api.JobResponse   "Job not found (returns Error object within JobResponse)"
// @Router       /status/{id} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		//use chi get the url id
		idString := utils.GetChiURLParam(r, "id")
		result, isFound := validateId(idString, r.Context().Value(config.TRACE_ID_KEY).(string))

		logRH.Debug("Get Status Request:", "URL path", r.URL.Path)
		if !isFound {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result))
	}
}

// SearchHandler godoc
// @Summary      Search saved links
// @Description  Embeds the query, matches it against stored chunk vectors, and returns the best documents with their matching chunk ids.
// @Tags         Search
// @Accept       json
// @Produce      json
// @Param        request  body      api.SearchRequest   true  "Search query"
// @Success      200      {object}  api.SearchResponse  "Ranked search results"
// @Failure      400      {object}  api.JobResponse     "Invalid request data"
// @Failure      500      {object}  api.JobResponse     "Search failed"
// @Router       /search [post]
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {

		var requestData api.SearchRequest
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || requestData.Query == "" {
			logRH.Warn("Bad search request: ", "error:", err)
			WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
			return
		}

		results, err := handlerInstance.bookmarks.Search(r.Context(), requestData.Query)
		if err != nil {
			logRH.Error("Search failed", "error", err)
			WriteErrorResponse(w, adapter.StatusCodeForError(err), "", "Search failed")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToSearchResponse(results))
		return
	}
	logRH.Warn("Invalid Context by request ", r.RemoteAddr)
}

// DeleteLinkHandler godoc
// @Summary      Delete a saved link
// @Description  Removes the link's metadata record, stored content, and chunk vectors.
// @Tags         Links
// @Accept       json
// @Produce      json
// @Param        request  body      api.DeleteLinkRequest  true  "URL to delete"
// @Success      200      {object}  api.LinkResponse       "The deleted link"
// @Failure      400      {object}  api.JobResponse        "Invalid request data"
// @Failure      404      {object}  api.JobResponse        "URL was never ingested"
// @Router       /links [delete]
func DeleteLinkHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {

		var requestData api.DeleteLinkRequest
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || !ValidateLinkURL(requestData.URL) {
			logRH.Warn("Bad delete request: ", "error:", err)
			WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
			return
		}

		doc, err := handlerInstance.bookmarks.Delete(r.Context(), requestData.URL)
		if err != nil {
			logRH.Error("Delete failed", "url", requestData.URL, "error", err)
			WriteErrorResponse(w, adapter.StatusCodeForError(err), "", "Delete failed")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToLinkResponse(doc))
		return
	}
	logRH.Warn("Invalid Context by request ", r.RemoteAddr)
}

// GetContentHandler godoc
// @Summary      Download stored content
// @Description  Returns the raw bytes stored for a link at ingestion time, with the recorded content type.
// @Tags         Links
// @Produce      octet-stream
// @Param        id   path      string  true  "Document ID"
// @Success      200  {file}    file    "The stored content"
// @Failure      404  {object}  api.JobResponse  "Document or blob not found"
// @Router       /links/{id}/content [get]
func GetContentHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {

		idString := utils.GetChiURLParam(r, "id")
		if idString == "" {
			WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
			return
		}

		content, contentType, err := handlerInstance.bookmarks.GetContent(r.Context(), idString)
		if err != nil {
			logRH.Error("Content read failed", "docId", idString, "error", err)
			WriteErrorResponse(w, adapter.StatusCodeForError(err), idString, "Content not available")
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(content); err != nil {
			logRH.Error("Error writing content response", "error", err)
		}
		return
	}
	logRH.Warn("Invalid Context by request ", r.RemoteAddr)
}
