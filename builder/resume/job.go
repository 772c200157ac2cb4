package resume

import (
	"time"

	"github.com/smartresume/smartresume/pkg/kernel"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

type ImportStep string

const (
	StepExtracting ImportStep = "extracting"
	StepParsing    ImportStep = "parsing"
	StepScoring    ImportStep = "scoring"
	StepSaving     ImportStep = "saving"
)

// ImportJob tracks one background resume import from an uploaded file
type ImportJob struct {
	ID       kernel.JobID     `db:"id" json:"id"`
	UserID   kernel.UserID    `db:"user_id" json:"user_id"`
	ResumeID *kernel.ResumeID `db:"resume_id" json:"resume_id,omitempty"`

	Status   JobStatus `db:"status" json:"status"`
	FilePath string    `db:"file_path" json:"file_path"`
	FileName string    `db:"file_name" json:"file_name"`
	FileType string    `db:"file_type" json:"file_type"`
	Template string    `db:"template_name" json:"template_name"`

	AttemptCount int `db:"attempt_count" json:"attempt_count"`
	MaxAttempts  int `db:"max_attempts" json:"max_attempts"`

	ErrorMessage string         `db:"error_message" json:"error_message,omitempty"`
	ErrorDetails map[string]any `db:"-" json:"error_details,omitempty"`

	CurrentStep        *ImportStep `db:"current_step" json:"current_step,omitempty"`
	ProgressPercentage int         `db:"progress_percentage" json:"progress_percentage"`

	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	StartedAt   *time.Time `db:"started_at" json:"started_at,omitempty"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	FailedAt    *time.Time `db:"failed_at" json:"failed_at,omitempty"`
	NextRetryAt *time.Time `db:"next_retry_at" json:"next_retry_at,omitempty"`
}

// JobStatusResponse - Response for job status queries
type JobStatusResponse struct {
	JobID       kernel.JobID     `json:"job_id"`
	UserID      kernel.UserID    `json:"user_id"`
	Status      JobStatus        `json:"status"`
	Message     string           `json:"message"`
	Progress    int              `json:"progress"`
	CurrentStep *ImportStep      `json:"current_step,omitempty"`
	ResumeID    *kernel.ResumeID `json:"resume_id,omitempty"`
	Error       *JobError        `json:"error,omitempty"`

	AttemptCount int        `json:"attempt_count,omitempty"`
	NextRetryAt  *time.Time `json:"next_retry_at,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	FailedAt    *time.Time `json:"failed_at,omitempty"`
}

// JobError - Error details for failed jobs
type JobError struct {
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
