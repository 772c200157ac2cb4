package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullInput() Input {
	return Input{
		Fullname:   "Jane Doe",
		Email:      "jane.doe@email.com",
		Phone:      "+91 9876543210",
		Location:   "Bangalore, India",
		Summary:    "Experienced backend engineer with five years of experience building APIs.",
		Skills:     "Python, Go, SQL, Docker, Kubernetes, Redis",
		Experience: "Backend Engineer at Foo Corp 2019-2024\nBuilt payment systems.",
		Education:  "B.Tech Computer Science, 2019",
		LinkedIn:   "https://linkedin.com/in/janedoe",
	}
}

func TestScoreAllEmptyIsZero(t *testing.T) {
	report := Score(Input{})

	assert.Equal(t, 0, report.Score)
	require.NotEmpty(t, report.Issues)

	joined := strings.ToLower(strings.Join(report.Issues, "\n"))
	assert.Contains(t, joined, "contact info")
	assert.Contains(t, joined, "skills")
	assert.Equal(t, len(report.Issues)+len(report.Warnings), len(report.Recommendations))
}

func TestScorePlaceholdersCountAsMissing(t *testing.T) {
	report := Score(Input{
		Fullname: "Your Name",
		Summary:  "PDF loaded successfully! Edit your details above.",
	})

	joined := strings.Join(report.Issues, "\n")
	assert.Contains(t, joined, "Missing full name")
	assert.Contains(t, joined, "Missing professional summary")
}

func TestScoreFullResumeIsHigh(t *testing.T) {
	report := Score(fullInput())

	assert.Equal(t, 100, report.Score)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Warnings)
	assert.Empty(t, report.Recommendations)
}

func TestScoreWarnings(t *testing.T) {
	in := fullInput()
	in.Summary = "Short summary."
	in.Skills = "Python, Go"
	in.Location = ""
	in.LinkedIn = ""

	report := Score(in)

	assert.Empty(t, report.Issues)
	assert.Len(t, report.Warnings, 4)
	assert.Equal(t, 80, report.Score)
}

func TestScoreKeywords(t *testing.T) {
	in := fullInput()
	in.Keywords = []string{"Docker", "Terraform", "Ansible"}

	report := Score(in)

	assert.Equal(t, 96, report.Score)
	require.Len(t, report.Warnings, 2)
	assert.Contains(t, report.Warnings[0], "Terraform")
	assert.Contains(t, report.Warnings[1], "Ansible")
}

func TestScoreIsDeterministic(t *testing.T) {
	in := fullInput()
	first := Score(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Score(in))
	}
}

func TestScoreStaysInRange(t *testing.T) {
	in := Input{Keywords: []string{"a", "b", "c", "d", "e", "f", "g", "h"}}

	report := Score(in)

	assert.GreaterOrEqual(t, report.Score, 0)
	assert.LessOrEqual(t, report.Score, 100)
	assert.Equal(t, 0, report.Score)
}
