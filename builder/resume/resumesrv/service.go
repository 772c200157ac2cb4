package resumesrv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartresume/smartresume/builder/resume"
	"github.com/smartresume/smartresume/builder/template"
	"github.com/smartresume/smartresume/internal/ats"
	"github.com/smartresume/smartresume/internal/extract"
	"github.com/smartresume/smartresume/internal/resumeparser"
	"github.com/smartresume/smartresume/pkg/fsx"
	"github.com/smartresume/smartresume/pkg/kernel"
	"github.com/smartresume/smartresume/pkg/logx"
)

// MaxResumesPerUser bounds how many records one account may hold
const MaxResumesPerUser = 20

// Service orchestrates resume import, editing and scoring
type Service struct {
	repo       resume.Repository
	jobRepo    resume.JobRepository
	queue      resume.JobQueue
	fileReader fsx.FileReader
	extractor  *resumeparser.Extractor
}

func New(
	repo resume.Repository,
	jobRepo resume.JobRepository,
	queue resume.JobQueue,
	fileReader fsx.FileReader,
	extractor *resumeparser.Extractor,
) *Service {
	return &Service{
		repo:       repo,
		jobRepo:    jobRepo,
		queue:      queue,
		fileReader: fileReader,
		extractor:  extractor,
	}
}

// CreateResume creates a record from manually supplied fields
func (s *Service) CreateResume(ctx context.Context, req resume.CreateResumeRequest) (*resume.Resume, error) {
	templateName := req.TemplateName
	if templateName == "" {
		templateName = template.DefaultName
	}
	if !template.Exists(templateName) {
		return nil, resume.ErrUnknownTemplate().WithDetail("template_name", templateName)
	}

	now := time.Now()
	rec := &resume.Resume{
		ID:           kernel.NewResumeID(uuid.NewString()),
		UserID:       req.UserID,
		TemplateName: templateName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	rec.ApplyFields(resumeparser.Fields{
		Title:           req.Title,
		Fullname:        req.Fullname,
		Email:           req.Email,
		Phone:           req.Phone,
		Location:        req.Location,
		Summary:         req.Summary,
		Skills:          resumeparser.NormalizeSkills(req.Skills),
		Experience:      resumeparser.NormalizeBlockSection(req.Experience),
		Education:       resumeparser.NormalizeBlockSection(req.Education),
		Projects:        resumeparser.NormalizeBlockSection(req.Projects),
		Certifications:  resumeparser.NormalizeBlockSection(req.Certifications),
		Awards:          resumeparser.NormalizeBlockSection(req.Awards),
		Languages:       resumeparser.NormalizeLanguagesSpoken(req.Languages),
		LinkedIn:        req.LinkedIn,
		GitHub:          req.GitHub,
		Website:         req.Website,
		DOB:             resumeparser.NormalizeDate(req.DOB),
		Nationality:     req.Nationality,
		SoftSkills:      resumeparser.NormalizeSoftSkills(req.SoftSkills),
		CareerObjective: req.CareerObjective,
	})
	s.applyScore(rec)

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	logx.Infof("Resume created: ResumeID=%s, UserID=%s", rec.ID, rec.UserID)
	return rec, nil
}

// GetResume retrieves a resume by ID
func (s *Service) GetResume(ctx context.Context, id kernel.ResumeID) (*resume.Resume, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateResume applies a user edit. Submitted fields run through the
// same normalizers the import path uses.
func (s *Service) UpdateResume(ctx context.Context, id kernel.ResumeID, req resume.UpdateResumeRequest) (*resume.Resume, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setPlain := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setNormalized := func(dst *string, src *string, normalize func(string) string) {
		if src != nil {
			*dst = normalize(*src)
		}
	}

	setPlain(&rec.Title, req.Title)
	setPlain(&rec.Fullname, req.Fullname)
	setPlain(&rec.Email, req.Email)
	setPlain(&rec.Phone, req.Phone)
	setPlain(&rec.Location, req.Location)
	setPlain(&rec.Summary, req.Summary)
	setPlain(&rec.LinkedIn, req.LinkedIn)
	setPlain(&rec.GitHub, req.GitHub)
	setPlain(&rec.Website, req.Website)
	setPlain(&rec.Nationality, req.Nationality)
	setPlain(&rec.CareerObjective, req.CareerObjective)

	setNormalized(&rec.DOB, req.DOB, resumeparser.NormalizeDate)
	setNormalized(&rec.Skills, req.Skills, resumeparser.NormalizeSkills)
	setNormalized(&rec.SoftSkills, req.SoftSkills, resumeparser.NormalizeSoftSkills)
	setNormalized(&rec.Languages, req.Languages, resumeparser.NormalizeLanguagesSpoken)
	setNormalized(&rec.Experience, req.Experience, resumeparser.NormalizeBlockSection)
	setNormalized(&rec.Education, req.Education, resumeparser.NormalizeBlockSection)
	setNormalized(&rec.Projects, req.Projects, resumeparser.NormalizeBlockSection)
	setNormalized(&rec.Certifications, req.Certifications, resumeparser.NormalizeBlockSection)
	setNormalized(&rec.Awards, req.Awards, resumeparser.NormalizeBlockSection)

	if req.TemplateName != nil {
		if !template.Exists(*req.TemplateName) {
			return nil, resume.ErrUnknownTemplate().WithDetail("template_name", *req.TemplateName)
		}
		rec.TemplateName = *req.TemplateName
	}

	s.applyScore(rec)
	rec.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteResume deletes a resume
func (s *Service) DeleteResume(ctx context.Context, id kernel.ResumeID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logx.Infof("Resume deleted: ResumeID=%s", id)
	return nil
}

// ListResumes lists a user's resumes
func (s *Service) ListResumes(ctx context.Context, req resume.ListResumesRequest) (*kernel.Paginated[resume.Resume], error) {
	return s.repo.ListByUserID(ctx, req.UserID, req.Pagination)
}

// ImportFromFile synchronously turns an uploaded file into a resume
// record: read, extract text, parse fields, normalize and score.
func (s *Service) ImportFromFile(ctx context.Context, req resume.ImportResumeRequest) (*resume.Resume, error) {
	fields, err := s.extractFields(ctx, req.FilePath, req.FileType)
	if err != nil {
		return nil, err
	}

	rec := s.buildRecord(req, *fields)
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	logx.Infof("Resume imported: ResumeID=%s, UserID=%s, File=%s", rec.ID, rec.UserID, req.FileName)
	return rec, nil
}

// ScoreResume recomputes the compliance report for a stored resume.
// Keywords, when given, are checked against the resume's text sections.
func (s *Service) ScoreResume(ctx context.Context, id kernel.ResumeID, keywords []string) (*resume.AtsScoreResponse, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	report := scoreFieldsWithKeywords(rec.Fields(), keywords)
	return &resume.AtsScoreResponse{ResumeID: rec.ID, Report: report}, nil
}

// ScoreUpload scores an uploaded file without creating a record
func (s *Service) ScoreUpload(ctx context.Context, filePath, fileType string, keywords []string) (*resume.AtsScoreResponse, error) {
	fields, err := s.extractFields(ctx, filePath, fileType)
	if err != nil {
		return nil, err
	}

	report := scoreFieldsWithKeywords(*fields, keywords)
	return &resume.AtsScoreResponse{Report: report}, nil
}

// extractFields acquires the file's text and runs the field extractor.
// Acquisition failures surface as errors; extraction itself never fails.
func (s *Service) extractFields(ctx context.Context, filePath, fileType string) (*resumeparser.Fields, error) {
	data, err := s.fileReader.ReadFile(ctx, filePath)
	if err != nil {
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeFileReadFailed, err).
			WithDetail("file_path", filePath)
	}

	text, err := extract.Text(data, fileType)
	if err != nil {
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeExtractionFailed, err).
			WithDetail("file_path", filePath).
			WithDetail("file_type", fileType)
	}

	fields := s.extractor.Extract(text)
	return &fields, nil
}

// buildRecord assembles a new record from extracted fields, running the
// normalizers and the compliance scorer
func (s *Service) buildRecord(req resume.ImportResumeRequest, fields resumeparser.Fields) *resume.Resume {
	fields.Skills = resumeparser.NormalizeSkills(fields.Skills)
	fields.Experience = resumeparser.NormalizeBlockSection(fields.Experience)
	fields.Education = resumeparser.NormalizeBlockSection(fields.Education)
	fields.Projects = resumeparser.NormalizeBlockSection(fields.Projects)
	fields.Certifications = resumeparser.NormalizeBlockSection(fields.Certifications)
	fields.Awards = resumeparser.NormalizeBlockSection(fields.Awards)
	fields.Languages = resumeparser.NormalizeLanguagesSpoken(fields.Languages)

	templateName := req.Template
	if templateName == "" || !template.Exists(templateName) {
		templateName = template.DefaultName
	}

	now := time.Now()
	rec := &resume.Resume{
		ID:           kernel.NewResumeID(uuid.NewString()),
		UserID:       req.UserID,
		TemplateName: templateName,
		FilePath:     req.FilePath,
		FileName:     req.FileName,
		FileType:     req.FileType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	rec.ApplyFields(fields)
	s.applyScore(rec)
	return rec
}

// applyScore recomputes the stored compliance summary on a record
func (s *Service) applyScore(rec *resume.Resume) {
	report := scoreFields(rec.Fields())
	rec.ATSComplianceScore = report.Score
	rec.ATSIssues = strings.Join(report.Issues, "\n")
	rec.ATSRecommendations = strings.Join(report.Recommendations, "\n")
}

// scoreFields maps the extractor's field shape onto the scorer's input
func scoreFields(f resumeparser.Fields) ats.Report {
	return scoreFieldsWithKeywords(f, nil)
}

func scoreFieldsWithKeywords(f resumeparser.Fields, keywords []string) ats.Report {
	return ats.Score(ats.Input{
		Fullname:       f.Fullname,
		Email:          f.Email,
		Phone:          f.Phone,
		Location:       f.Location,
		Summary:        f.Summary,
		Skills:         f.Skills,
		Experience:     f.Experience,
		Education:      f.Education,
		Projects:       f.Projects,
		Certifications: f.Certifications,
		Languages:      f.Languages,
		LinkedIn:       f.LinkedIn,
		GitHub:         f.GitHub,
		Website:        f.Website,
		Keywords:       keywords,
	})
}
