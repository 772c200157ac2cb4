package resumeinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/smartresume/smartresume/builder/resume"
	"github.com/smartresume/smartresume/pkg/kernel"
)

type PostgresJobRepository struct {
	db *sqlx.DB
}

func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

// Create creates a new import job record
func (r *PostgresJobRepository) Create(ctx context.Context, job *resume.ImportJob) error {
	query := `
		INSERT INTO import_jobs (
			id, user_id, resume_id, status, file_path, file_name, file_type,
			template_name, attempt_count, max_attempts, error_message,
			current_step, progress_percentage,
			created_at, started_at, completed_at, failed_at, next_retry_at
		) VALUES (
			:id, :user_id, :resume_id, :status, :file_path, :file_name, :file_type,
			:template_name, :attempt_count, :max_attempts, :error_message,
			:current_step, :progress_percentage,
			:created_at, :started_at, :completed_at, :failed_at, :next_retry_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, job); err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeJobCreationFailed, err).
			WithDetail("job_id", job.ID)
	}
	return nil
}

// Update rewrites the mutable columns of a job
func (r *PostgresJobRepository) Update(ctx context.Context, job *resume.ImportJob) error {
	query := `
		UPDATE import_jobs SET
			resume_id = :resume_id, status = :status,
			attempt_count = :attempt_count, error_message = :error_message,
			current_step = :current_step, progress_percentage = :progress_percentage,
			started_at = :started_at, completed_at = :completed_at,
			failed_at = :failed_at, next_retry_at = :next_retry_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, job)
	if err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeJobUpdateFailed, err).
			WithDetail("job_id", job.ID)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return resume.ErrJobNotFound().WithDetail("job_id", job.ID)
	}
	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, jobID kernel.JobID) (*resume.ImportJob, error) {
	var job resume.ImportJob
	query := `SELECT * FROM import_jobs WHERE id = $1`

	if err := r.db.GetContext(ctx, &job, query, jobID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resume.ErrJobNotFound().WithDetail("job_id", jobID)
		}
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeJobNotFound, err).
			WithDetail("job_id", jobID)
	}
	return &job, nil
}

// ListByUserID retrieves jobs for a user with pagination
func (r *PostgresJobRepository) ListByUserID(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[resume.ImportJob], error) {
	pagination = pagination.Normalize()

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM import_jobs WHERE user_id = $1`, userID); err != nil {
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeJobNotFound, err).
			WithDetail("user_id", userID)
	}

	var items []resume.ImportJob
	query := `
		SELECT * FROM import_jobs
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	if err := r.db.SelectContext(ctx, &items, query, userID, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeJobNotFound, err).
			WithDetail("user_id", userID)
	}

	page := kernel.NewPaginated(items, pagination, total)
	return &page, nil
}

// MarkAsProcessing transitions a job to processing and stamps started_at
func (r *PostgresJobRepository) MarkAsProcessing(ctx context.Context, jobID kernel.JobID) error {
	query := `
		UPDATE import_jobs
		SET status = $2, started_at = $3
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, jobID, resume.JobStatusProcessing, time.Now()); err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeJobUpdateFailed, err).
			WithDetail("job_id", jobID)
	}
	return nil
}

// MarkAsCompleted transitions a job to completed and links the resume
func (r *PostgresJobRepository) MarkAsCompleted(ctx context.Context, jobID kernel.JobID, resumeID kernel.ResumeID) error {
	query := `
		UPDATE import_jobs
		SET status = $2, resume_id = $3, completed_at = $4, progress_percentage = 100
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, jobID, resume.JobStatusCompleted, resumeID, time.Now()); err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeJobUpdateFailed, err).
			WithDetail("job_id", jobID)
	}
	return nil
}

// MarkAsFailed transitions a job to failed with its error message
func (r *PostgresJobRepository) MarkAsFailed(ctx context.Context, jobID kernel.JobID, errorMsg string) error {
	query := `
		UPDATE import_jobs
		SET status = $2, error_message = $3, failed_at = $4
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, jobID, resume.JobStatusFailed, errorMsg, time.Now()); err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeJobUpdateFailed, err).
			WithDetail("job_id", jobID)
	}
	return nil
}

// UpdateProgress stores the current step and percentage of a running job
func (r *PostgresJobRepository) UpdateProgress(ctx context.Context, jobID kernel.JobID, step resume.ImportStep, percentage int) error {
	query := `
		UPDATE import_jobs
		SET current_step = $2, progress_percentage = $3
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, jobID, step, percentage); err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeJobUpdateFailed, err).
			WithDetail("job_id", jobID)
	}
	return nil
}
