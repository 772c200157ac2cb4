package resumeparser

import "regexp"

// SectionRule maps one output field to its ordered header patterns and
// the maximum number of content lines kept under that header. Pattern
// order matters: within a field the first pattern to match a line wins.
type SectionRule struct {
	Field    string
	Patterns []*regexp.Regexp
	MaxLines int
}

// Catalog is the immutable pattern/keyword configuration an Extractor
// runs with. Build one with DefaultCatalog or hand-roll one in tests.
type Catalog struct {
	Sections       []SectionRule
	PhonePatterns  []*regexp.Regexp
	Cities         []string
	TitleKeywords  []string
	DegreeKeywords []string
}

func mustAll(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		res = append(res, regexp.MustCompile("(?i)"+e))
	}
	return res
}

// DefaultCatalog returns the built-in header patterns, gazetteer and
// keyword lists.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Sections: []SectionRule{
			{
				Field:    "summary",
				Patterns: mustAll(`career\s+objective`, `^objective$`, `professional\s+summary`, `summary`, `profile`, `about\s+me`),
				MaxLines: 10,
			},
			{
				Field:    "skills",
				Patterns: mustAll(`technical\s+skills`, `^skills$`, `core\s+competencies`, `key\s+skills`, `skills\s+and\s+tools`),
				MaxLines: 20,
			},
			{
				Field:    "experience",
				Patterns: mustAll(`professional\s+experience`, `work\s+experience`, `^experience$`, `employment\s+history`, `career\s+history`, `internship\s+experience`),
				MaxLines: 30,
			},
			{
				Field:    "projects",
				Patterns: mustAll(`academic\s+projects`, `key\s+projects`, `^projects$`, `personal\s+projects`),
				MaxLines: 30,
			},
			{
				Field:    "education",
				Patterns: mustAll(`^education$`, `academic\s+background`, `educational\s+qualification`, `academic\s+qualifications`, `education\s+details`),
				MaxLines: 20,
			},
			{
				Field:    "certifications",
				Patterns: mustAll(`^certifications?$`, `professional\s+certifications?`, `licenses?`, `courses`),
				MaxLines: 15,
			},
			{
				Field:    "languages",
				Patterns: mustAll(`languages?\s+known`, `^languages?$`),
				MaxLines: 5,
			},
			{
				Field:    "awards",
				Patterns: mustAll(`^awards$`, `achievements`, `honors`),
				MaxLines: 15,
			},
		},
		PhonePatterns: []*regexp.Regexp{
			regexp.MustCompile(`\+91[\s\-]?\d{10}`),
			regexp.MustCompile(`\b0\d{10}\b`),
			regexp.MustCompile(`\b\d{10}\b`),
		},
		Cities: []string{
			"ahmedabad", "gandhinagar", "vadodara", "surat",
			"delhi", "mumbai", "bangalore", "pune", "hyderabad", "kolkata",
			"firozabad", "india", "gujarat", "usa", "uk", "canada",
		},
		TitleKeywords: []string{
			"engineer", "developer", "analyst", "manager", "specialist",
			"consultant", "architect", "designer", "scientist", "executive",
			"coordinator",
		},
		DegreeKeywords: []string{"b.tech", "b.e", "bachelor", "master", "phd", "degree"},
	}
}

// rule returns the section rule for a field, or nil
func (c *Catalog) rule(field string) *SectionRule {
	for i := range c.Sections {
		if c.Sections[i].Field == field {
			return &c.Sections[i]
		}
	}
	return nil
}
