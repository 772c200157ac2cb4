package resumeinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/smartresume/smartresume/builder/resume"
	"github.com/smartresume/smartresume/pkg/kernel"
)

type PostgresResumeRepository struct {
	db *sqlx.DB
}

func NewPostgresResumeRepository(db *sqlx.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

// Create creates a new resume
func (r *PostgresResumeRepository) Create(ctx context.Context, rec *resume.Resume) error {
	query := `
		INSERT INTO resumes (
			id, user_id,
			title, fullname, email, phone, location, summary, skills,
			experience, education, projects, certifications, awards,
			languages, linkedin, github, website, dob, nationality,
			softskills, career_objective,
			template_name, file_path, file_name, file_type,
			ats_compliance_score, ats_issues, ats_recommendations,
			created_at, updated_at
		) VALUES (
			:id, :user_id,
			:title, :fullname, :email, :phone, :location, :summary, :skills,
			:experience, :education, :projects, :certifications, :awards,
			:languages, :linkedin, :github, :website, :dob, :nationality,
			:softskills, :career_objective,
			:template_name, :file_path, :file_name, :file_type,
			:ats_compliance_score, :ats_issues, :ats_recommendations,
			:created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, rec)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return resume.ErrInvalidResumeData().
				WithDetail("resume_id", rec.ID).
				WithDetail("reason", "duplicate id")
		}
		return resume.ErrRegistry.NewWithCause(resume.CodeInvalidResumeData, err).
			WithDetail("resume_id", rec.ID).
			WithDetail("operation", "insert")
	}
	return nil
}

// Update updates an existing resume
func (r *PostgresResumeRepository) Update(ctx context.Context, rec *resume.Resume) error {
	query := `
		UPDATE resumes SET
			title = :title, fullname = :fullname, email = :email,
			phone = :phone, location = :location, summary = :summary,
			skills = :skills, experience = :experience, education = :education,
			projects = :projects, certifications = :certifications,
			awards = :awards, languages = :languages, linkedin = :linkedin,
			github = :github, website = :website, dob = :dob,
			nationality = :nationality, softskills = :softskills,
			career_objective = :career_objective,
			template_name = :template_name,
			ats_compliance_score = :ats_compliance_score,
			ats_issues = :ats_issues,
			ats_recommendations = :ats_recommendations,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, rec)
	if err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeInvalidResumeData, err).
			WithDetail("resume_id", rec.ID).
			WithDetail("operation", "update")
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return resume.ErrResumeNotFound().WithDetail("resume_id", rec.ID)
	}
	return nil
}

// GetByID retrieves a resume by ID
func (r *PostgresResumeRepository) GetByID(ctx context.Context, id kernel.ResumeID) (*resume.Resume, error) {
	var rec resume.Resume
	query := `SELECT * FROM resumes WHERE id = $1`

	if err := r.db.GetContext(ctx, &rec, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resume.ErrResumeNotFound().WithDetail("resume_id", id)
		}
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeResumeNotFound, err).
			WithDetail("resume_id", id)
	}
	return &rec, nil
}

// ListByUserID retrieves resumes for a user with pagination
func (r *PostgresResumeRepository) ListByUserID(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[resume.Resume], error) {
	pagination = pagination.Normalize()

	var total int
	countQuery := `SELECT COUNT(*) FROM resumes WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeResumeNotFound, err).
			WithDetail("user_id", userID)
	}

	var items []resume.Resume
	query := `
		SELECT * FROM resumes
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT $2 OFFSET $3`
	if err := r.db.SelectContext(ctx, &items, query, userID, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeResumeNotFound, err).
			WithDetail("user_id", userID)
	}

	page := kernel.NewPaginated(items, pagination, total)
	return &page, nil
}

// Delete deletes a resume
func (r *PostgresResumeRepository) Delete(ctx context.Context, id kernel.ResumeID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeResumeNotFound, err).
			WithDetail("resume_id", id).
			WithDetail("operation", "delete")
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return resume.ErrResumeNotFound().WithDetail("resume_id", id)
	}
	return nil
}

// CountByUserID counts resumes for a user
func (r *PostgresResumeRepository) CountByUserID(ctx context.Context, userID kernel.UserID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM resumes WHERE user_id = $1`

	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, resume.ErrRegistry.NewWithCause(resume.CodeResumeNotFound, err).
			WithDetail("user_id", userID)
	}
	return count, nil
}
