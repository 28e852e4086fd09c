package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/akolanti/LinkAPI/internal/adapter"
	"github.com/akolanti/LinkAPI/internal/config"
	jobmodel "github.com/akolanti/LinkAPI/internal/domain/jobModel"
	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
	"github.com/akolanti/LinkAPI/internal/metrics"
)

func executeJob(job jobmodel.Job) {
	start := time.Now()
	defer func() {
		// Record total time at the end
		metrics.CaptureJobMetrics(string(job.Status), time.Since(start))
	}()
	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, config.IngestJobTimeout)
	defer cancel()
	logger.With("trace Id ", job.TraceId)
	logger.Debug("Processing job:", "job Id:", job.Id)

	saveJobState(ctx, job, jobmodel.JobStatusRunning)

	job = ingestLink(ctx, job)

	job.EndTime = time.Now()
	saveJobState(ctx, job, job.Status)
}

func removeWorker(reason string) {

	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker ", "reason", reason, "workerCount", currentWorkerCount)
	metrics.DecrementActiveWorkerCount()

}

func ingestLink(ctx context.Context, job jobmodel.Job) jobmodel.Job {
	doc, err := _bookmarkService.Ingest(ctx, job.JobPayload.URL)
	if err != nil {
		logger.Error("Ingestion failed", "jobId", job.Id, "url", job.JobPayload.URL, "error", err)
		job.CurrentStep = stepForError(err)
		job.Status = jobmodel.JobStatusError
		job.Error = jobmodel.JobError{
			Code:    adapter.StatusCodeForError(err),
			Message: err.Error(),
			Retry:   !errors.Is(err, linkModel.ErrProcessingFailure),
		}
		return job
	}

	job.JobPayload.Document = &doc
	job.CurrentStep = jobmodel.Complete
	job.Status = jobmodel.JobStatusComplete
	return job
}

// stepForError pins the job's last step to the pipeline stage that failed.
func stepForError(err error) jobmodel.InternalStatus {
	switch {
	case errors.Is(err, linkModel.ErrFetchFailure):
		return jobmodel.FetchCall
	case errors.Is(err, linkModel.ErrProcessingFailure):
		return jobmodel.SummarizeCall
	case errors.Is(err, linkModel.ErrEmbeddingFailure):
		return jobmodel.EmbeddingCall
	default:
		return jobmodel.Error
	}
}

func saveJobState(ctx context.Context, job jobmodel.Job, jobStatus jobmodel.JobStatus) {
	job.Status = jobStatus
	if err := _jobService.JobStore.SaveJob(ctx, job); err != nil {
		logger.Error("Failed to update status in Redis", "err", err)
	}
}
