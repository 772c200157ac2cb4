package resume

import (
	"strings"
	"time"

	"github.com/smartresume/smartresume/internal/resumeparser"
	"github.com/smartresume/smartresume/pkg/kernel"
)

// Resume is a flat, editable resume record owned by one user. Field
// names mirror the extractor's output keys one to one.
type Resume struct {
	ID     kernel.ResumeID `db:"id" json:"id"`
	UserID kernel.UserID   `db:"user_id" json:"user_id"`

	Title           string `db:"title" json:"title"`
	Fullname        string `db:"fullname" json:"fullname"`
	Email           string `db:"email" json:"email"`
	Phone           string `db:"phone" json:"phone"`
	Location        string `db:"location" json:"location"`
	Summary         string `db:"summary" json:"summary"`
	Skills          string `db:"skills" json:"skills"`
	Experience      string `db:"experience" json:"experience"`
	Education       string `db:"education" json:"education"`
	Projects        string `db:"projects" json:"projects"`
	Certifications  string `db:"certifications" json:"certifications"`
	Awards          string `db:"awards" json:"awards"`
	Languages       string `db:"languages" json:"languages"`
	LinkedIn        string `db:"linkedin" json:"linkedin"`
	GitHub          string `db:"github" json:"github"`
	Website         string `db:"website" json:"website"`
	DOB             string `db:"dob" json:"dob"`
	Nationality     string `db:"nationality" json:"nationality"`
	SoftSkills      string `db:"softskills" json:"softskills"`
	CareerObjective string `db:"career_objective" json:"career_objective"`

	TemplateName string `db:"template_name" json:"template_name"`

	FilePath string `db:"file_path" json:"file_path,omitempty"`
	FileName string `db:"file_name" json:"file_name,omitempty"`
	FileType string `db:"file_type" json:"file_type,omitempty"`

	ATSComplianceScore int    `db:"ats_compliance_score" json:"ats_compliance_score"`
	ATSIssues          string `db:"ats_issues" json:"ats_issues"`
	ATSRecommendations string `db:"ats_recommendations" json:"ats_recommendations"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ApplyFields copies an extraction result into the record verbatim
func (r *Resume) ApplyFields(f resumeparser.Fields) {
	r.Title = f.Title
	r.Fullname = f.Fullname
	r.Email = f.Email
	r.Phone = f.Phone
	r.Location = f.Location
	r.Summary = f.Summary
	r.Skills = f.Skills
	r.Experience = f.Experience
	r.Education = f.Education
	r.Projects = f.Projects
	r.Certifications = f.Certifications
	r.Awards = f.Awards
	r.Languages = f.Languages
	r.LinkedIn = f.LinkedIn
	r.GitHub = f.GitHub
	r.Website = f.Website
	r.DOB = f.DOB
	r.Nationality = f.Nationality
	r.SoftSkills = f.SoftSkills
	r.CareerObjective = f.CareerObjective
}

// Fields exports the record back into the extractor's field shape
func (r *Resume) Fields() resumeparser.Fields {
	return resumeparser.Fields{
		Title:           r.Title,
		Fullname:        r.Fullname,
		Email:           r.Email,
		Phone:           r.Phone,
		Location:        r.Location,
		Summary:         r.Summary,
		Skills:          r.Skills,
		Experience:      r.Experience,
		Education:       r.Education,
		Projects:        r.Projects,
		Certifications:  r.Certifications,
		Awards:          r.Awards,
		Languages:       r.Languages,
		LinkedIn:        r.LinkedIn,
		GitHub:          r.GitHub,
		Website:         r.Website,
		DOB:             r.DOB,
		Nationality:     r.Nationality,
		SoftSkills:      r.SoftSkills,
		CareerObjective: r.CareerObjective,
	}
}

// HasContactInfo reports whether the record carries reachable contact details
func (r *Resume) HasContactInfo() bool {
	return strings.TrimSpace(r.Email) != "" || strings.TrimSpace(r.Phone) != ""
}

// BelongsTo checks record ownership
func (r *Resume) BelongsTo(userID kernel.UserID) bool {
	return r.UserID == userID
}
