package resumeparser

// Placeholder values used when a detector finds nothing
const (
	DefaultFullname = "Your Name"
	DefaultSummary  = "PDF loaded successfully! Edit your details above."
)

// Fields is the structured output of an extraction run. Every field is
// always set; detectors that find nothing leave the default value.
type Fields struct {
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
}

// DefaultFields returns the mapping an extraction run starts from
func DefaultFields() Fields {
	return Fields{
		Fullname: DefaultFullname,
		Summary:  DefaultSummary,
	}
}

// Map flattens the fields into the fixed 20-key string mapping
func (f Fields) Map() map[string]string {
	return map[string]string{
		"title":            f.Title,
		"fullname":         f.Fullname,
		"email":            f.Email,
		"phone":            f.Phone,
		"location":         f.Location,
		"summary":          f.Summary,
		"skills":           f.Skills,
		"experience":       f.Experience,
		"education":        f.Education,
		"projects":         f.Projects,
		"certifications":   f.Certifications,
		"awards":           f.Awards,
		"languages":        f.Languages,
		"linkedin":         f.LinkedIn,
		"github":           f.GitHub,
		"website":          f.Website,
		"dob":              f.DOB,
		"nationality":      f.Nationality,
		"softskills":       f.SoftSkills,
		"career_objective": f.CareerObjective,
	}
}
