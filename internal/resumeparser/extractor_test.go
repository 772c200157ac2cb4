package resumeparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = "Jane Doe\njane.doe@email.com\n+91 9876543210\nBangalore, India\n\nSUMMARY\nExperienced backend engineer with 5 years building APIs.\n\nSKILLS\nPython, Go, SQL, Docker\n\nEXPERIENCE\nBackend Engineer at Foo Corp 2019-2024\nBuilt payment systems."

func TestExtractEmptyInputReturnsDefaults(t *testing.T) {
	e := NewExtractor(nil)

	for _, input := range []string{"", "   ", "\n\n\n", " \n  \n "} {
		fields := e.Extract(input)

		assert.Equal(t, DefaultFields(), fields, "input %q", input)
		assert.Equal(t, "", fields.Title)
		assert.Equal(t, "Your Name", fields.Fullname)
		assert.Equal(t, "PDF loaded successfully! Edit your details above.", fields.Summary)
	}
}

func TestExtractAlwaysProducesAllKeys(t *testing.T) {
	e := NewExtractor(nil)

	m := e.Extract("random text with no structure").Map()

	require.Len(t, m, 20)
	for _, key := range []string{
		"title", "fullname", "email", "phone", "location", "summary",
		"skills", "experience", "education", "projects", "certifications",
		"awards", "languages", "linkedin", "github", "website", "dob",
		"nationality", "softskills", "career_objective",
	} {
		_, ok := m[key]
		assert.True(t, ok, "missing key %q", key)
	}
}

func TestExtractSampleResume(t *testing.T) {
	e := NewExtractor(nil)

	fields := e.Extract(sampleResume)

	assert.Equal(t, "Jane Doe", fields.Fullname)
	assert.Equal(t, "jane.doe@email.com", fields.Email)
	assert.Equal(t, "+91 9876543210", fields.Phone)
	assert.Contains(t, fields.Location, "Bangalore")
	assert.Contains(t, fields.Summary, "Experienced backend engineer")
	assert.Equal(t, "Python, SQL, Docker", fields.Skills, "two-char tokens are filtered out")
	assert.Equal(t, "Backend Engineer at Foo Corp 2019-2024\nBuilt payment systems.", fields.Experience)
	assert.Empty(t, fields.CareerObjective)
}

func TestExtractNameSkipsContactLines(t *testing.T) {
	e := NewExtractor(nil)

	fields := e.Extract("jane@email.com\nhttp://janedoe.dev\n+91 9876543210\nJane Doe\nmore text here")

	assert.Equal(t, "Jane Doe", fields.Fullname)
}

func TestExtractNameRejectsNonNameLines(t *testing.T) {
	e := NewExtractor(nil)

	// one token, too many tokens, low alphabetic ratio
	fields := e.Extract("Jane\nOne Two Three Four Five\n12345 6789-01, 22\nresume content continues below with details")

	assert.Equal(t, "Your Name", fields.Fullname)
}

func TestExtractPhonePriorityOrder(t *testing.T) {
	e := NewExtractor(nil)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"country code wins over bare", "call 9876543210 or +91-9876543210", "+91-9876543210"},
		{"leading zero number", "phone 09876543210 listed", "09876543210"},
		{"bare ten digits", "phone 9876543210 listed", "9876543210"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := e.Extract(tt.text)
			assert.Equal(t, tt.want, fields.Phone)
		})
	}
}

func TestExtractLocationFallsBackToCommaLine(t *testing.T) {
	e := NewExtractor(nil)

	fields := e.Extract("Jane Doe\nSpringfield, Oregon\nsome more text")

	assert.Equal(t, "Springfield, Oregon", fields.Location)
}

func TestExtractLinksGetScheme(t *testing.T) {
	e := NewExtractor(nil)

	fields := e.Extract("find me at github.com/janedoe and https://linkedin.com/in/janedoe")

	assert.Equal(t, "https://github.com/janedoe", fields.GitHub)
	assert.Equal(t, "https://linkedin.com/in/janedoe", fields.LinkedIn)
}

func TestExtractExperienceFallback(t *testing.T) {
	e := NewExtractor(nil)

	text := "John Smith\nContact details line\n5 years experience in logistics\nManaged fleet operations daily\nCoordinated warehouse teams weekly"
	fields := e.Extract(text)

	require.NotEmpty(t, fields.Experience)
	assert.Contains(t, fields.Experience, "Managed fleet operations daily")
	assert.Contains(t, fields.Experience, "Coordinated warehouse teams weekly")
}

func TestExtractEducationFallback(t *testing.T) {
	e := NewExtractor(nil)

	text := "John Smith\nGraduated with a B.Tech in Computer Science\nAlso holds a Master of Science"
	fields := e.Extract(text)

	assert.Contains(t, fields.Education, "B.Tech in Computer Science")
	assert.Contains(t, fields.Education, "Master of Science")
}

func TestExtractCareerObjectiveCopiesSummary(t *testing.T) {
	e := NewExtractor(nil)

	text := "Jane Doe\nCAREER OBJECTIVE\nSeeking a challenging role in backend systems development."
	fields := e.Extract(text)

	require.NotEmpty(t, fields.Summary)
	assert.Equal(t, fields.Summary, fields.CareerObjective)
}

func TestExtractTitleFromKeywordLine(t *testing.T) {
	e := NewExtractor(nil)

	fields := e.Extract("Jane Doe\nSenior Software Engineer\nmore resume content here")

	assert.Equal(t, "Senior Software Engineer", fields.Title)
}

func TestExtractTitleFallbackFromSkills(t *testing.T) {
	e := NewExtractor(nil)

	tests := []struct {
		name   string
		skills string
		want   string
	}{
		{"data skills", "SQL basics, Database tuning, Data modeling", "Data Professional"},
		{"python skills", "Python, Flask, Django REST", "Software Developer"},
		{"generic skills", "Leadership, Public speaking", "Professional"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := e.Extract("John Smith\nSKILLS\n" + tt.skills)
			assert.Equal(t, tt.want, fields.Title)
		})
	}
}

func TestExtractFieldLengthCaps(t *testing.T) {
	e := NewExtractor(nil)

	long := strings.Repeat("wordwordwordword ", 30) // ~510 chars per line
	var sb strings.Builder
	sb.WriteString("Jane Doe\n")
	for _, header := range []string{"SUMMARY", "SKILLS", "EXPERIENCE", "EDUCATION", "PROJECTS", "CERTIFICATIONS", "LANGUAGES", "AWARDS"} {
		sb.WriteString(header + "\n")
		for i := 0; i < 5; i++ {
			sb.WriteString(long + "\n")
		}
	}
	fields := e.Extract(sb.String())

	assert.LessOrEqual(t, len([]rune(fields.Summary)), 1000)
	assert.LessOrEqual(t, len([]rune(fields.Skills)), 500)
	assert.LessOrEqual(t, len([]rune(fields.Experience)), 1500)
	assert.LessOrEqual(t, len([]rune(fields.Education)), 1000)
	assert.LessOrEqual(t, len([]rune(fields.Projects)), 800)
	assert.LessOrEqual(t, len([]rune(fields.Certifications)), 800)
	assert.LessOrEqual(t, len([]rune(fields.Languages)), 300)
	assert.LessOrEqual(t, len([]rune(fields.Awards)), 500)
}

func TestExtractCustomCatalog(t *testing.T) {
	catalog := &Catalog{
		Sections: []SectionRule{
			{Field: "summary", Patterns: mustAll(`^resumen$`), MaxLines: 10},
		},
		PhonePatterns:  DefaultCatalog().PhonePatterns,
		Cities:         []string{"lima"},
		TitleKeywords:  []string{"ingeniero"},
		DegreeKeywords: []string{"licenciatura"},
	}
	e := NewExtractor(catalog)

	fields := e.Extract("Juan Perez\nLima, Peru\nRESUMEN\nIngeniero de software con amplia trayectoria.")

	assert.Contains(t, fields.Location, "Lima")
	assert.Contains(t, fields.Summary, "Ingeniero de software")
	assert.Equal(t, "Ingeniero de software con amplia trayectoria.", fields.Title)
}
