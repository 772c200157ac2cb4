package resumeparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already canonical", "2001-05-14", "2001-05-14"},
		{"slash day first", "14/05/2001", "2001-05-14"},
		{"dash day first", "14-05-2001", "2001-05-14"},
		{"long month", "May 14, 2001", "2001-05-14"},
		{"short month", "Jan 2020", "2020-01-01"},
		{"unparseable kept", "sometime in spring", "sometime in spring"},
		{"empty", "", ""},
		{"whitespace trimmed", "  2001-05-14  ", "2001-05-14"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.input))
		})
	}
}

func TestNormalizeSkills(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mixed delimiters", "Python, Go / SQL • Docker | Kubernetes", "Python, Go, SQL, Docker, Kubernetes"},
		{"newlines", "Python\nSQL\nDocker", "Python, SQL, Docker"},
		{"dedup case insensitive", "python, Python, PYTHON, SQL", "python, SQL"},
		{"single chars dropped", "C, Go, R", "Go"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSkills(tt.input))
		})
	}
}

func TestNormalizeSoftSkills(t *testing.T) {
	assert.Equal(t, "Leadership, Teamwork", NormalizeSoftSkills("Soft Skills: Leadership; Teamwork"))
	assert.Equal(t, "Leadership, Teamwork", NormalizeSoftSkills("Leadership, Teamwork"))
}

func TestNormalizeLanguagesSpoken(t *testing.T) {
	assert.Equal(t, "English, Hindi, Gujarati", NormalizeLanguagesSpoken("english / hindi / gujarati"))
	assert.Equal(t, "English (native), Spanish", NormalizeLanguagesSpoken("english (native), spanish"))
}

func TestNormalizeBlockSection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"mixed bullets unified",
			"• Built payment systems\n- Led a team of four\nShipped v2 rewrite",
			"- Built payment systems\n- Led a team of four\n- Shipped v2 rewrite",
		},
		{
			"blank lines dropped",
			"Built payment systems\n\n\nLed a team of four",
			"- Built payment systems\n- Led a team of four",
		},
		{"empty", "", ""},
		{"bullet only line dropped", "•\nreal content", "- real content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBlockSection(tt.input))
		})
	}
}

func TestNormalizersAreIdempotent(t *testing.T) {
	skillInputs := []string{"Python, Go / SQL", "a,b,,c", "", "Python"}
	for _, in := range skillInputs {
		once := NormalizeSkills(in)
		assert.Equal(t, once, NormalizeSkills(once), "skills %q", in)
	}

	softInputs := []string{"Soft skills: Leadership; Empathy", "Teamwork"}
	for _, in := range softInputs {
		once := NormalizeSoftSkills(in)
		assert.Equal(t, once, NormalizeSoftSkills(once), "softskills %q", in)
	}

	langInputs := []string{"english/hindi", "French, german"}
	for _, in := range langInputs {
		once := NormalizeLanguagesSpoken(in)
		assert.Equal(t, once, NormalizeLanguagesSpoken(once), "languages %q", in)
	}

	blockInputs := []string{"• one thing\n- another thing", "plain line", ""}
	for _, in := range blockInputs {
		once := NormalizeBlockSection(in)
		assert.Equal(t, once, NormalizeBlockSection(once), "block %q", in)
	}

	dateInputs := []string{"14/05/2001", "Jan 2020", "unknown"}
	for _, in := range dateInputs {
		once := NormalizeDate(in)
		assert.Equal(t, once, NormalizeDate(once), "date %q", in)
	}
}
