package resume

import (
	"context"
	"time"

	"github.com/smartresume/smartresume/pkg/kernel"
)

type Repository interface {
	// Create creates a new resume
	Create(ctx context.Context, r *Resume) error

	// Update updates an existing resume
	Update(ctx context.Context, r *Resume) error

	// GetByID retrieves a resume by ID
	GetByID(ctx context.Context, id kernel.ResumeID) (*Resume, error)

	// ListByUserID retrieves resumes for a user with pagination
	ListByUserID(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[Resume], error)

	// Delete deletes a resume
	Delete(ctx context.Context, id kernel.ResumeID) error

	// CountByUserID counts resumes for a user
	CountByUserID(ctx context.Context, userID kernel.UserID) (int64, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *ImportJob) error
	Update(ctx context.Context, job *ImportJob) error
	GetByID(ctx context.Context, jobID kernel.JobID) (*ImportJob, error)
	ListByUserID(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[ImportJob], error)

	// Status helpers
	MarkAsProcessing(ctx context.Context, jobID kernel.JobID) error
	MarkAsCompleted(ctx context.Context, jobID kernel.JobID, resumeID kernel.ResumeID) error
	MarkAsFailed(ctx context.Context, jobID kernel.JobID, errorMsg string) error
	UpdateProgress(ctx context.Context, jobID kernel.JobID, step ImportStep, percentage int) error
}

// JobQueue defines the interface for job queue operations
type JobQueue interface {
	// Enqueue adds a job to the queue
	Enqueue(ctx context.Context, jobID kernel.JobID, payload any) error

	// Dequeue gets a job from the queue (blocking with timeout)
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)

	// EnqueueDelayed schedules a job for later processing (for retries)
	EnqueueDelayed(ctx context.Context, jobID kernel.JobID, payload any, delay time.Duration) error

	// MoveDelayedToReady moves delayed jobs that are ready to the main queue
	MoveDelayedToReady(ctx context.Context) (int, error)

	// GetQueueSize returns the number of jobs in the queue
	GetQueueSize(ctx context.Context) (int64, error)

	// GetDelayedQueueSize returns the number of delayed jobs
	GetDelayedQueueSize(ctx context.Context) (int64, error)
}
