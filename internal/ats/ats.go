// Package ats scores a parsed resume for applicant-tracking-system
// compliance.
package ats

import (
	"fmt"
	"strings"
)

// Placeholder values the extractor leaves when it finds nothing
const (
	placeholderName    = "Your Name"
	placeholderSummary = "PDF loaded successfully! Edit your details above."
)

// Input is the field mapping the scorer evaluates. Empty strings mean
// the field is absent.
type Input struct {
	Fullname       string   `json:"fullname"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Location       string   `json:"location"`
	Summary        string   `json:"summary"`
	Skills         string   `json:"skills"`
	Experience     string   `json:"experience"`
	Education      string   `json:"education"`
	Projects       string   `json:"projects"`
	Certifications string   `json:"certifications"`
	Languages      string   `json:"languages"`
	LinkedIn       string   `json:"linkedin"`
	GitHub         string   `json:"github"`
	Website        string   `json:"website"`
	Keywords       []string `json:"keywords"`
}

// Report is the result of one scoring run
type Report struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// Deductions per finding. On an all-empty input the issue and warning
// deductions sum to 100, so the score bottoms out at exactly zero.
const (
	deductMissingEmail      = 15
	deductMissingPhone      = 10
	deductMissingName       = 10
	deductMissingSummary    = 15
	deductMissingSkills     = 15
	deductMissingExperience = 15
	deductMissingEducation  = 10

	deductMissingLocation = 5
	deductNoProfileLink   = 5
	deductShortSummary    = 5
	deductFewSkills       = 5
	deductMissingKeyword  = 2
)

// Score evaluates the input deterministically. It never fails; missing
// fields produce issues and deductions, not errors.
func Score(in Input) Report {
	r := Report{
		Score:           100,
		Issues:          []string{},
		Warnings:        []string{},
		Recommendations: []string{},
	}

	issue := func(points int, text, recommendation string) {
		r.Score -= points
		r.Issues = append(r.Issues, text)
		r.Recommendations = append(r.Recommendations, recommendation)
	}
	warning := func(points int, text, recommendation string) {
		r.Score -= points
		r.Warnings = append(r.Warnings, text)
		r.Recommendations = append(r.Recommendations, recommendation)
	}

	if blank(in.Email) {
		issue(deductMissingEmail, "Missing contact info: no email address found",
			"Add a professional email address near the top of your resume")
	}
	if blank(in.Phone) {
		issue(deductMissingPhone, "Missing contact info: no phone number found",
			"Add a phone number so recruiters can reach you")
	}
	if blank(in.Fullname) || strings.TrimSpace(in.Fullname) == placeholderName {
		issue(deductMissingName, "Missing full name",
			"Put your full name on the first line of the resume")
	}
	if blank(in.Summary) || strings.TrimSpace(in.Summary) == placeholderSummary {
		issue(deductMissingSummary, "Missing professional summary",
			"Write a 2-3 sentence summary of your experience and goals")
	} else if len(strings.TrimSpace(in.Summary)) < 50 {
		warning(deductShortSummary, "Summary is very short",
			"Expand your summary to at least a couple of sentences")
	}

	skillCount := countSkills(in.Skills)
	if skillCount == 0 {
		issue(deductMissingSkills, "Missing skills section",
			"List your key technical and professional skills")
	} else if skillCount < 5 {
		warning(deductFewSkills, "Fewer than 5 skills listed",
			"ATS filters match on skills; list at least 5 relevant ones")
	}

	if blank(in.Experience) {
		issue(deductMissingExperience, "Missing work experience section",
			"Add your work history with roles, companies and dates")
	}
	if blank(in.Education) {
		issue(deductMissingEducation, "Missing education section",
			"Add your education with degree, institution and year")
	}

	if blank(in.Location) {
		warning(deductMissingLocation, "No location found",
			"Add your city and country so location filters can match you")
	}
	if blank(in.LinkedIn) && blank(in.GitHub) && blank(in.Website) {
		warning(deductNoProfileLink, "No professional profile link",
			"Add a LinkedIn, GitHub or portfolio link")
	}

	if len(in.Keywords) > 0 {
		haystack := strings.ToLower(strings.Join([]string{
			in.Summary, in.Skills, in.Experience, in.Projects, in.Certifications,
		}, " "))
		for _, kw := range in.Keywords {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			if !strings.Contains(haystack, strings.ToLower(kw)) {
				warning(deductMissingKeyword,
					fmt.Sprintf("Keyword %q not found in resume", kw),
					fmt.Sprintf("Work the keyword %q into your summary or experience", kw))
			}
		}
	}

	if r.Score < 0 {
		r.Score = 0
	}
	if r.Score > 100 {
		r.Score = 100
	}
	return r
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// countSkills counts non-empty comma-separated entries
func countSkills(skills string) int {
	count := 0
	for _, s := range strings.Split(skills, ",") {
		if strings.TrimSpace(s) != "" {
			count++
		}
	}
	return count
}
