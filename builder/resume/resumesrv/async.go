package resumesrv

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartresume/smartresume/builder/resume"
	"github.com/smartresume/smartresume/pkg/kernel"
	"github.com/smartresume/smartresume/pkg/logx"
)

// ImportResumeAsync queues an uploaded file for background import
func (s *Service) ImportResumeAsync(ctx context.Context, req resume.ImportResumeRequest) (*resume.JobStatusResponse, error) {
	logx.Infof("Queueing resume import: UserID=%s, File=%s", req.UserID, req.FileName)

	count, err := s.repo.CountByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if count >= MaxResumesPerUser {
		return nil, resume.ErrInvalidResumeData().
			WithDetail("user_id", req.UserID).
			WithDetail("current_count", count).
			WithDetail("max_allowed", MaxResumesPerUser)
	}

	jobID := kernel.NewJobID(uuid.NewString())
	job := &resume.ImportJob{
		ID:                 jobID,
		UserID:             req.UserID,
		Status:             resume.JobStatusPending,
		FilePath:           req.FilePath,
		FileName:           req.FileName,
		FileType:           req.FileType,
		Template:           req.Template,
		AttemptCount:       0,
		MaxAttempts:        3,
		ProgressPercentage: 0,
		CreatedAt:          time.Now(),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, resume.ErrJobCreationFailed().
			WithDetail("user_id", req.UserID).
			WithDetail("file_name", req.FileName).
			WithDetails(map[string]any{"error": err.Error()})
	}

	if err := s.queue.Enqueue(ctx, jobID, job); err != nil {
		_ = s.jobRepo.MarkAsFailed(ctx, jobID, "failed to enqueue")

		return nil, resume.ErrQueueEnqueueFailed().
			WithDetail("job_id", jobID).
			WithDetail("user_id", req.UserID).
			WithDetails(map[string]any{"error": err.Error()})
	}

	logx.Infof("Import job queued: JobID=%s", jobID)

	return &resume.JobStatusResponse{
		JobID:     jobID,
		UserID:    req.UserID,
		Status:    resume.JobStatusPending,
		Message:   "Resume queued for import",
		Progress:  0,
		CreatedAt: job.CreatedAt,
	}, nil
}

// ProcessImportJob runs one dequeued job: extract, parse, score, save
func (s *Service) ProcessImportJob(ctx context.Context, job *resume.ImportJob) error {
	logx.Infof("Processing import job: JobID=%s, Attempt=%d/%d", job.ID, job.AttemptCount+1, job.MaxAttempts)

	if err := s.jobRepo.MarkAsProcessing(ctx, job.ID); err != nil {
		return resume.ErrJobUpdateFailed().
			WithDetail("job_id", job.ID).
			WithDetails(map[string]any{"error": err.Error()})
	}

	_ = s.jobRepo.UpdateProgress(ctx, job.ID, resume.StepExtracting, 25)

	fields, err := s.extractFields(ctx, job.FilePath, job.FileType)
	if err != nil {
		return s.handleJobError(ctx, job, "extraction_failed", err)
	}

	_ = s.jobRepo.UpdateProgress(ctx, job.ID, resume.StepParsing, 50)

	req := resume.ImportResumeRequest{
		UserID:   job.UserID,
		FilePath: job.FilePath,
		FileName: job.FileName,
		FileType: job.FileType,
		Template: job.Template,
	}

	_ = s.jobRepo.UpdateProgress(ctx, job.ID, resume.StepScoring, 75)

	rec := s.buildRecord(req, *fields)

	_ = s.jobRepo.UpdateProgress(ctx, job.ID, resume.StepSaving, 90)

	if err := s.repo.Create(ctx, rec); err != nil {
		return s.handleJobError(ctx, job, "save_failed", err)
	}

	if err := s.jobRepo.MarkAsCompleted(ctx, job.ID, rec.ID); err != nil {
		// Resume exists; losing the status update is not fatal
		logx.Errorf("Failed to mark job as completed: %v", err)
	}

	logx.Infof("Import job completed: JobID=%s, ResumeID=%s", job.ID, rec.ID)
	return nil
}

// handleJobError retries with exponential backoff until attempts run out
func (s *Service) handleJobError(ctx context.Context, job *resume.ImportJob, errorType string, err error) error {
	job.AttemptCount++

	errorDetails := map[string]any{
		"error":        err.Error(),
		"error_type":   errorType,
		"attempt":      job.AttemptCount,
		"max_attempts": job.MaxAttempts,
		"file_path":    job.FilePath,
		"file_name":    job.FileName,
	}

	if job.AttemptCount < job.MaxAttempts {
		// Exponential backoff: 2^attempt minutes
		retryDelay := time.Duration(1<<uint(job.AttemptCount)) * time.Minute
		nextRetry := time.Now().Add(retryDelay)
		job.NextRetryAt = &nextRetry

		logx.Warnf("Import job failed, will retry: JobID=%s, Attempt=%d/%d, NextRetry=%v, Error=%s",
			job.ID, job.AttemptCount, job.MaxAttempts, nextRetry, errorType)

		if queueErr := s.queue.EnqueueDelayed(ctx, job.ID, job, retryDelay); queueErr != nil {
			logx.Errorf("Failed to enqueue for retry: %v", queueErr)
			_ = s.jobRepo.MarkAsFailed(ctx, job.ID, fmt.Sprintf("%s (retry enqueue failed)", errorType))

			return resume.ErrJobRetryFailed().
				WithDetail("job_id", job.ID).
				WithDetail("error_type", errorType).
				WithDetails(errorDetails)
		}

		job.ErrorMessage = fmt.Sprintf("%s (will retry)", errorType)
		job.ErrorDetails = errorDetails
		job.Status = resume.JobStatusPending

		if updateErr := s.jobRepo.Update(ctx, job); updateErr != nil {
			logx.Errorf("Failed to update job for retry: %v", updateErr)
		}

		return resume.ErrJobFailed().
			WithDetail("job_id", job.ID).
			WithDetail("error_type", errorType).
			WithDetail("will_retry", true).
			WithDetail("next_retry_at", nextRetry).
			WithDetails(errorDetails)
	}

	logx.Errorf("Import job permanently failed: JobID=%s, Error=%s, Attempts=%d/%d",
		job.ID, errorType, job.AttemptCount, job.MaxAttempts)

	_ = s.jobRepo.MarkAsFailed(ctx, job.ID, errorType)

	return resume.ErrJobMaxRetries().
		WithDetail("job_id", job.ID).
		WithDetail("error_type", errorType).
		WithDetail("final_attempt", job.AttemptCount).
		WithDetails(errorDetails)
}

// GetJobStatus retrieves the current status of a job
func (s *Service) GetJobStatus(ctx context.Context, jobID kernel.JobID) (*resume.JobStatusResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	response := &resume.JobStatusResponse{
		JobID:     job.ID,
		UserID:    job.UserID,
		Status:    job.Status,
		Progress:  job.ProgressPercentage,
		CreatedAt: job.CreatedAt,
	}

	switch job.Status {
	case resume.JobStatusPending:
		if job.AttemptCount > 0 {
			response.Message = fmt.Sprintf("Job pending retry (attempt %d/%d)", job.AttemptCount, job.MaxAttempts)
		} else {
			response.Message = "Job queued and waiting to be processed"
		}
		response.NextRetryAt = job.NextRetryAt

	case resume.JobStatusProcessing:
		response.Message = fmt.Sprintf("Importing resume: %v", job.CurrentStep)
		response.CurrentStep = job.CurrentStep
		response.StartedAt = job.StartedAt

	case resume.JobStatusCompleted:
		response.Message = "Resume imported successfully"
		response.ResumeID = job.ResumeID
		response.CompletedAt = job.CompletedAt

	case resume.JobStatusFailed:
		response.Message = job.ErrorMessage
		response.Error = &resume.JobError{
			Message: job.ErrorMessage,
			Details: job.ErrorDetails,
		}
		response.FailedAt = job.FailedAt
		response.AttemptCount = job.AttemptCount
	}

	return response, nil
}

// ListJobs retrieves import jobs for a user
func (s *Service) ListJobs(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[resume.ImportJob], error) {
	return s.jobRepo.ListByUserID(ctx, userID, pagination)
}

// CancelJob cancels a pending job
func (s *Service) CancelJob(ctx context.Context, jobID kernel.JobID, userID kernel.UserID) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	if job.UserID != userID {
		return resume.ErrOwnershipMismatch().
			WithDetail("job_id", jobID).
			WithDetail("job_user_id", job.UserID).
			WithDetail("requested_user_id", userID)
	}

	if job.Status == resume.JobStatusCompleted {
		return resume.ErrJobAlreadyCompleted().WithDetail("job_id", jobID)
	}
	if job.Status == resume.JobStatusProcessing {
		// Marks the job only; an in-flight worker run is not interrupted
		logx.Warnf("Cancelling job that is currently processing: %s", jobID)
	}

	now := time.Now()
	job.Status = resume.JobStatusFailed
	job.FailedAt = &now
	job.ErrorMessage = "Job cancelled by user"

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return resume.ErrJobUpdateFailed().
			WithDetail("job_id", jobID).
			WithDetails(map[string]any{"error": err.Error()})
	}

	logx.Infof("Import job cancelled: JobID=%s, UserID=%s", jobID, userID)
	return nil
}

// RetryFailedJob manually requeues a failed job
func (s *Service) RetryFailedJob(ctx context.Context, jobID kernel.JobID, userID kernel.UserID) (*resume.JobStatusResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.UserID != userID {
		return nil, resume.ErrOwnershipMismatch().
			WithDetail("job_id", jobID).
			WithDetail("job_user_id", job.UserID).
			WithDetail("requested_user_id", userID)
	}

	if job.Status != resume.JobStatusFailed {
		return nil, resume.ErrInvalidJobStatus().
			WithDetail("job_id", jobID).
			WithDetail("current_status", job.Status).
			WithDetail("required_status", resume.JobStatusFailed)
	}

	// Manual retry resets the attempt counter
	job.Status = resume.JobStatusPending
	job.AttemptCount = 0
	job.ErrorMessage = ""
	job.ErrorDetails = nil
	job.FailedAt = nil
	job.NextRetryAt = nil
	job.ProgressPercentage = 0
	job.CurrentStep = nil

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, resume.ErrJobUpdateFailed().
			WithDetail("job_id", jobID).
			WithDetails(map[string]any{"error": err.Error()})
	}

	if err := s.queue.Enqueue(ctx, jobID, job); err != nil {
		_ = s.jobRepo.MarkAsFailed(ctx, jobID, "failed to re-enqueue")

		return nil, resume.ErrQueueEnqueueFailed().
			WithDetail("job_id", jobID).
			WithDetails(map[string]any{"error": err.Error()})
	}

	logx.Infof("Import job manually retried: JobID=%s", jobID)

	return &resume.JobStatusResponse{
		JobID:     jobID,
		UserID:    job.UserID,
		Status:    resume.JobStatusPending,
		Message:   "Job requeued for processing",
		Progress:  0,
		CreatedAt: job.CreatedAt,
	}, nil
}
