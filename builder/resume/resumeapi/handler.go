package resumeapi

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/smartresume/smartresume/builder/resume"
	"github.com/smartresume/smartresume/builder/resume/resumesrv"
	"github.com/smartresume/smartresume/builder/user/userauth"
	"github.com/smartresume/smartresume/pkg/fsx"
	"github.com/smartresume/smartresume/pkg/kernel"
)

// MaxUploadSize bounds accepted resume files
const MaxUploadSize = int64(10 * 1024 * 1024) // 10MB

type ResumeHandlers struct {
	service    *resumesrv.Service
	fileSystem fsx.FileSystem
}

func NewResumeHandlers(service *resumesrv.Service, fileSystem fsx.FileSystem) *ResumeHandlers {
	return &ResumeHandlers{
		service:    service,
		fileSystem: fileSystem,
	}
}

func (h *ResumeHandlers) RegisterRoutes(app *fiber.App, authMiddleware fiber.Handler) {
	resumes := app.Group("/api/v1/resumes", authMiddleware)

	// Import & scoring
	resumes.Post("/import", h.ImportResume)     // Upload and import (async)
	resumes.Post("/ats-score", h.ScoreUpload)   // Score a file without saving
	resumes.Get("/:id/ats-score", h.ScoreResume)

	// Job management. Registered before /:id so "jobs" does not bind as
	// a resume ID.
	resumes.Get("/jobs/:job_id", h.GetJobStatus)
	resumes.Get("/jobs", h.ListJobs)
	resumes.Post("/jobs/:job_id/cancel", h.CancelJob)
	resumes.Post("/jobs/:job_id/retry", h.RetryJob)

	// Resume CRUD
	resumes.Post("/", h.CreateResume)
	resumes.Get("/:id", h.GetResume)
	resumes.Put("/:id", h.UpdateResume)
	resumes.Delete("/:id", h.DeleteResume)
	resumes.Get("/", h.ListResumes)
}

// ImportResume accepts an uploaded file and queues it for import
// POST /api/v1/resumes/import
func (h *ResumeHandlers) ImportResume(c *fiber.Ctx) error {
	userID, ok := userauth.GetUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	if file.Size > MaxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "file too large",
			"max_size": "10MB",
			"size":     file.Size,
		})
	}

	fileType := determineFileType(file.Filename, file.Header.Get("Content-Type"))
	if fileType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":           "unsupported file type",
			"supported_types": []string{"pdf", "docx", "txt"},
			"detected_type":   file.Header.Get("Content-Type"),
			"file_extension":  filepath.Ext(file.Filename),
		})
	}

	filePath, err := h.storeUpload(c, userID, file, fileType)
	if err != nil {
		return err
	}

	req := resume.ImportResumeRequest{
		UserID:   userID,
		FilePath: filePath,
		FileName: file.Filename,
		FileType: fileType,
		Template: c.FormValue("template"),
	}

	jobResponse, err := h.service.ImportResumeAsync(c.Context(), req)
	if err != nil {
		// Queueing failed; remove the stored file
		_ = h.fileSystem.DeleteFile(c.Context(), filePath)
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message":    "Resume upload successful, import started",
		"job":        jobResponse,
		"status_url": fmt.Sprintf("/api/v1/resumes/jobs/%s", jobResponse.JobID),
	})
}

// ScoreUpload scores an uploaded file without creating a record
// POST /api/v1/resumes/ats-score
func (h *ResumeHandlers) ScoreUpload(c *fiber.Ctx) error {
	userID, ok := userauth.GetUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	if file.Size > MaxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "file too large",
			"max_size": "10MB",
			"size":     file.Size,
		})
	}

	fileType := determineFileType(file.Filename, file.Header.Get("Content-Type"))
	if fileType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":           "unsupported file type",
			"supported_types": []string{"pdf", "docx", "txt"},
		})
	}

	filePath, err := h.storeUpload(c, userID, file, fileType)
	if err != nil {
		return err
	}
	// Score-only uploads are not kept
	defer func() { _ = h.fileSystem.DeleteFile(c.Context(), filePath) }()

	response, err := h.service.ScoreUpload(c.Context(), filePath, fileType, splitKeywords(c.FormValue("keywords")))
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// ScoreResume recomputes the compliance report for a stored resume
// GET /api/v1/resumes/:id/ats-score
func (h *ResumeHandlers) ScoreResume(c *fiber.Ctx) error {
	userID, ok := userauth.GetUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	resumeID := kernel.ResumeID(c.Params("id"))
	if resumeID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid resume ID",
		})
	}

	existing, err := h.service.GetResume(c.Context(), resumeID)
	if err != nil {
		return err
	}
	if !existing.BelongsTo(userID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "access denied",
		})
	}

	response, err := h.service.ScoreResume(c.Context(), resumeID, splitKeywords(c.Query("keywords")))
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// CreateResume creates a resume manually
// POST /api/v1/resumes
func (h *ResumeHandlers) CreateResume(c *fiber.Ctx) error {
	userID, ok := userauth.GetUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	var req resume.CreateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	req.UserID = userID

	response, err := h.service.CreateResume(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// GetResume retrieves a resume by ID
// GET /api/v1/resumes/:id
func (h *ResumeHandlers) GetResume(c *fiber.Ctx) error {
	userID, ok := userauth.GetUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	resumeID := kernel.ResumeID(c.Params("id"))
	if resumeID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid resume ID",
		})
	}

	response, err := h.service.GetResume(c.Context(), resumeID)
	if err != nil {
		return err
	}

	if !response.BelongsTo(userID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "access denied",
		})
	}

	return c.JSON(response)
}

// UpdateResume updates a resume
// PUT /api/v1/resumes/:id
func (h *ResumeHandlers) UpdateResume(c *fiber.Ctx) error {
	userID, ok := userauth.GetUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	resumeID := kernel.ResumeID(c.Params("id"))
	if resumeID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid resume ID",
		})
	}

	var req resume.UpdateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	existing, err := h.service.GetResume(c.Context(), resumeID)
	if err != nil {
		return err
	}
	if !existing.BelongsTo(userID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "access denied",
		})
	}

	response, err := h.service.UpdateResume(c.Context(), resumeID, req)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// DeleteResume deletes a resume and its stored file
// DELETE /api/v1/resumes/:id
func (h *ResumeHandlers) DeleteResume(c *fiber.Ctx) error {
	userID, ok := userauth.GetUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	resumeID := kernel.ResumeID(c.Params("id"))
	if resumeID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid resume ID",
		})
	}

	existing, err := h.service.GetResume(c.Context(), resumeID)
	if err != nil {
		return err
	}
	if !existing.BelongsTo(userID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "access denied",
		})
	}

	if err := h.service.DeleteResume(c.Context(), resumeID); err != nil {
		return err
	}

	if existing.FilePath != "" {
		_ = h.fileSystem.DeleteFile(c.Context(), existing.FilePath)
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// ListResumes lists resumes for the authenticated user
// GET /api/v1/resumes?page=1&page_size=20
func (h *ResumeHandlers) ListResumes(c *fiber.Ctx) error {
	userID, ok := userauth.GetUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	req := resume.ListResumesRequest{
		UserID: userID,
		Pagination: kernel.PaginationOptions{
			Page:     c.QueryInt("page", 1),
			PageSize: c.QueryInt("page_size", 20),
		},
	}

	response, err := h.service.ListResumes(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// GetJobStatus retrieves the status of an import job
// GET /api/v1/resumes/jobs/:job_id
func (h *ResumeHandlers) GetJobStatus(c *fiber.Ctx) error {
	userID, ok := userauth.GetUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	jobID := kernel.JobID(c.Params("job_id"))
	if jobID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job ID",
		})
	}

	jobStatus, err := h.service.GetJobStatus(c.Context(), jobID)
	if err != nil {
		return err
	}

	if jobStatus.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "access denied",
		})
	}

	return c.JSON(jobStatus)
}

// ListJobs lists import jobs for the authenticated user
// GET /api/v1/resumes/jobs?page=1&page_size=20
func (h *ResumeHandlers) ListJobs(c *fiber.Ctx) error {
	userID, ok := userauth.GetUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	jobs, err := h.service.ListJobs(c.Context(), userID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// CancelJob cancels a pending job
// POST /api/v1/resumes/jobs/:job_id/cancel
func (h *ResumeHandlers) CancelJob(c *fiber.Ctx) error {
	userID, ok := userauth.GetUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	jobID := kernel.JobID(c.Params("job_id"))
	if jobID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job ID",
		})
	}

	if err := h.service.CancelJob(c.Context(), jobID, userID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "job cancelled successfully",
		"job_id":  jobID,
	})
}

// RetryJob retries a failed job
// POST /api/v1/resumes/jobs/:job_id/retry
func (h *ResumeHandlers) RetryJob(c *fiber.Ctx) error {
	userID, ok := userauth.GetUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	jobID := kernel.JobID(c.Params("job_id"))
	if jobID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job ID",
		})
	}

	jobStatus, err := h.service.RetryFailedJob(c.Context(), jobID, userID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "job retried successfully",
		"job":     jobStatus,
	})
}

// storeUpload streams a multipart file into storage under
// resumes/{user_id}/{year}/{month}/{uuid}.{ext}
func (h *ResumeHandlers) storeUpload(c *fiber.Ctx, userID kernel.UserID, file *multipart.FileHeader, fileType string) (string, error) {
	uploadedFile, err := file.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "failed to open uploaded file")
	}
	defer uploadedFile.Close()

	now := time.Now()
	extension := filepath.Ext(file.Filename)
	if extension == "" {
		extension = "." + fileType
	}

	filePath := h.fileSystem.Join(
		"resumes",
		userID.String(),
		fmt.Sprintf("%d", now.Year()),
		fmt.Sprintf("%02d", now.Month()),
		uuid.New().String()+extension,
	)

	if err := h.fileSystem.WriteFileStream(c.Context(), filePath, uploadedFile); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "failed to upload file to storage")
	}

	return filePath, nil
}

// splitKeywords parses a comma-separated keyword list
func splitKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var keywords []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// determineFileType determines the file type from filename and content type
func determineFileType(filename, contentType string) string {
	switch contentType {
	case "application/pdf":
		return "pdf"
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return "docx"
	case "text/plain":
		return "txt"
	}

	ext := filepath.Ext(filename)
	if ext == "" {
		return ""
	}

	switch ext[1:] {
	case "pdf":
		return "pdf"
	case "docx":
		return "docx"
	case "txt":
		return "txt"
	default:
		return ""
	}
}
