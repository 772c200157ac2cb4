package resume

import (
	"github.com/smartresume/smartresume/internal/ats"
	"github.com/smartresume/smartresume/pkg/kernel"
)

// ImportResumeRequest - Queue a file for background import
type ImportResumeRequest struct {
	UserID   kernel.UserID `json:"user_id"`
	FilePath string        `json:"file_path"`
	FileName string        `json:"file_name"`
	FileType string        `json:"file_type"`
	Template string        `json:"template_name"`
}

// CreateResumeRequest - Create a blank or prefilled resume manually
type CreateResumeRequest struct {
	UserID kernel.UserID `json:"-"`

	Title           string `json:"title"`
	Fullname        string `json:"fullname"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	Summary         string `json:"summary"`
	Skills          string `json:"skills"`
	Experience      string `json:"experience"`
	Education       string `json:"education"`
	Projects        string `json:"projects"`
	Certifications  string `json:"certifications"`
	Awards          string `json:"awards"`
	Languages       string `json:"languages"`
	LinkedIn        string `json:"linkedin"`
	GitHub          string `json:"github"`
	Website         string `json:"website"`
	DOB             string `json:"dob"`
	Nationality     string `json:"nationality"`
	SoftSkills      string `json:"softskills"`
	CareerObjective string `json:"career_objective"`
	TemplateName    string `json:"template_name"`
}

// UpdateResumeRequest - Edit fields of an existing resume. Nil fields
// are left unchanged; submitted fields pass through the normalizers.
type UpdateResumeRequest struct {
	Title           *string `json:"title"`
	Fullname        *string `json:"fullname"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Location        *string `json:"location"`
	Summary         *string `json:"summary"`
	Skills          *string `json:"skills"`
	Experience      *string `json:"experience"`
	Education       *string `json:"education"`
	Projects        *string `json:"projects"`
	Certifications  *string `json:"certifications"`
	Awards          *string `json:"awards"`
	Languages       *string `json:"languages"`
	LinkedIn        *string `json:"linkedin"`
	GitHub          *string `json:"github"`
	Website         *string `json:"website"`
	DOB             *string `json:"dob"`
	Nationality     *string `json:"nationality"`
	SoftSkills      *string `json:"softskills"`
	CareerObjective *string `json:"career_objective"`
	TemplateName    *string `json:"template_name"`
}

// ListResumesRequest - List a user's resumes
type ListResumesRequest struct {
	UserID     kernel.UserID            `json:"-"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// AtsScoreResponse - Full compliance report for a resume or upload
type AtsScoreResponse struct {
	ResumeID kernel.ResumeID `json:"resume_id,omitempty"`
	Report   ats.Report      `json:"report"`
}
