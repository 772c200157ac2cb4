// Package resumeparser turns flat resume text into a structured field
// mapping using ordered first-match heuristics.
package resumeparser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	emailRe           = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	linkedinRe        = regexp.MustCompile(`(?i)linkedin\.com[^\s]*`)
	githubRe          = regexp.MustCompile(`(?i)github\.com[^\s]*`)
	careerObjectiveRe = regexp.MustCompile(`(?i)career\s+objective`)
	skillSplitRe      = regexp.MustCompile(`[,•|/\n]`)
)

// Extractor runs the heuristic field extraction pipeline against a
// fixed catalog. Safe for concurrent use; it holds no per-run state.
type Extractor struct {
	catalog *Catalog
}

// NewExtractor creates an extractor owning the given catalog. A nil
// catalog means DefaultCatalog.
func NewExtractor(catalog *Catalog) *Extractor {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Extractor{catalog: catalog}
}

// Extract maps flat resume text onto the fixed field set. It never
// fails: detectors that find nothing leave the field's default value.
func (e *Extractor) Extract(text string) Fields {
	fields := DefaultFields()

	lines := normalizeLines(text)
	if len(lines) == 0 {
		return fields
	}

	if name, ok := detectName(lines); ok {
		fields.Fullname = name
	}
	if email, ok := detectEmail(text); ok {
		fields.Email = email
	}
	if phone, ok := detectPhone(text, e.catalog.PhonePatterns); ok {
		fields.Phone = phone
	}
	if loc, ok := detectLocation(lines, e.catalog.Cities); ok {
		fields.Location = loc
	}
	if link, ok := detectLink(text, linkedinRe); ok {
		fields.LinkedIn = link
	}
	if link, ok := detectLink(text, githubRe); ok {
		fields.GitHub = link
	}

	positions := locateHeaders(lines, e.catalog.Sections)

	if content := e.slice(lines, positions, "summary"); len(content) > 0 {
		summary := truncate(strings.Join(content, " "), 1000)
		fields.Summary = summary
		if anyLineMatches(lines, careerObjectiveRe) {
			fields.CareerObjective = summary
		}
	}

	if content := e.slice(lines, positions, "skills"); len(content) > 0 {
		fields.Skills = assembleSkills(content)
	}

	if content := e.slice(lines, positions, "experience"); len(content) > 0 {
		fields.Experience = truncate(strings.Join(content, "\n"), 1500)
	} else if fallback, ok := experienceFallback(lines); ok {
		fields.Experience = truncate(strings.Join(fallback, "\n"), 1500)
	}

	if content := e.slice(lines, positions, "education"); len(content) > 0 {
		fields.Education = truncate(strings.Join(content, "\n"), 1000)
	} else if fallback := educationFallback(lines, e.catalog.DegreeKeywords); len(fallback) > 0 {
		fields.Education = truncate(strings.Join(fallback, "\n"), 1000)
	}

	if content := e.slice(lines, positions, "projects"); len(content) > 0 {
		fields.Projects = truncate(strings.Join(content, "\n"), 800)
	}
	if content := e.slice(lines, positions, "certifications"); len(content) > 0 {
		fields.Certifications = truncate(strings.Join(content, "\n"), 800)
	}
	if content := e.slice(lines, positions, "languages"); len(content) > 0 {
		fields.Languages = truncate(strings.Join(content, ", "), 300)
	}
	if content := e.slice(lines, positions, "awards"); len(content) > 0 {
		fields.Awards = truncate(strings.Join(content, "\n"), 500)
	}

	fields.Title = inferTitle(lines, fields.Skills, e.catalog.TitleKeywords)

	return fields
}

func (e *Extractor) slice(lines []string, positions map[string]int, field string) []string {
	rule := e.catalog.rule(field)
	if rule == nil {
		return nil
	}
	return sliceSection(lines, positions, field, rule.MaxLines)
}

// normalizeLines splits on line breaks, trims each line and drops the
// empty ones
func normalizeLines(text string) []string {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

// detectName scans the first 15 lines for a 2-4 token, mostly-alphabetic
// short line that does not look like contact info
func detectName(lines []string) (string, bool) {
	limit := len(lines)
	if limit > 15 {
		limit = 15
	}
	for _, ln := range lines[:limit] {
		if strings.Contains(ln, "@") || strings.Contains(strings.ToLower(ln), "http") || strings.Contains(ln, "+91") {
			continue
		}
		tokens := strings.Fields(ln)
		if len(tokens) < 2 || len(tokens) > 4 {
			continue
		}
		runes := []rune(ln)
		if len(runes) >= 50 {
			continue
		}
		alpha := 0
		for _, r := range runes {
			if unicode.IsLetter(r) || unicode.IsSpace(r) {
				alpha++
			}
		}
		if float64(alpha)/float64(len(runes)) > 0.7 {
			return ln, true
		}
	}
	return "", false
}

func detectEmail(text string) (string, bool) {
	m := emailRe.FindString(text)
	return m, m != ""
}

// detectPhone tries the catalog's phone patterns in priority order
func detectPhone(text string, patterns []*regexp.Regexp) (string, bool) {
	for _, p := range patterns {
		if m := p.FindString(text); m != "" {
			return m, true
		}
	}
	return "", false
}

// detectLocation matches lines against the gazetteer, then falls back
// to the first comma-bearing line near the top of the document
func detectLocation(lines []string, cities []string) (string, bool) {
	for _, ln := range lines {
		low := strings.ToLower(ln)
		for _, city := range cities {
			if strings.Contains(low, city) && utf8.RuneCountInString(ln) < 80 {
				return ln, true
			}
		}
	}

	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, ln := range lines[:limit] {
		if strings.Contains(ln, ",") && containsLetter(ln) {
			return ln, true
		}
	}
	return "", false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// detectLink finds the first profile URL token and ensures it carries a
// scheme
func detectLink(text string, re *regexp.Regexp) (string, bool) {
	m := re.FindString(text)
	if m == "" {
		return "", false
	}
	if !strings.HasPrefix(strings.ToLower(m), "http") {
		m = "https://" + m
	}
	return m, true
}

func anyLineMatches(lines []string, re *regexp.Regexp) bool {
	for _, ln := range lines {
		if re.MatchString(ln) {
			return true
		}
	}
	return false
}

// assembleSkills splits section content on list delimiters, keeps
// plausible tokens and joins the first 30 with commas
func assembleSkills(content []string) string {
	joined := strings.Join(content, " ")
	var tokens []string
	for _, tok := range skillSplitRe.Split(joined, -1) {
		tok = strings.TrimSpace(tok)
		n := utf8.RuneCountInString(tok)
		if n > 2 && n < 80 {
			tokens = append(tokens, tok)
		}
		if len(tokens) == 30 {
			break
		}
	}
	return truncate(strings.Join(tokens, ", "), 500)
}

// experienceFallback finds the first line mentioning "experience" and
// takes the following 14 lines. First occurrence wins even when a later
// identical line exists.
func experienceFallback(lines []string) ([]string, bool) {
	for i, ln := range lines {
		if strings.Contains(strings.ToLower(ln), "experience") && utf8.RuneCountInString(ln) < 70 {
			end := i + 15
			if end > len(lines) {
				end = len(lines)
			}
			if i+1 >= end {
				return nil, false
			}
			return lines[i+1 : end], true
		}
	}
	return nil, false
}

// educationFallback collects every line mentioning a degree keyword
func educationFallback(lines []string, degreeKeywords []string) []string {
	var out []string
	for _, ln := range lines {
		low := strings.ToLower(ln)
		for _, kw := range degreeKeywords {
			if strings.Contains(low, kw) {
				out = append(out, ln)
				break
			}
		}
	}
	return out
}

// inferTitle scans the first 25 lines for a job-title keyword, falling
// back to sniffing the extracted skills text
func inferTitle(lines []string, skills string, titleKeywords []string) string {
	limit := len(lines)
	if limit > 25 {
		limit = 25
	}
	for _, ln := range lines[:limit] {
		if utf8.RuneCountInString(ln) >= 100 {
			continue
		}
		low := strings.ToLower(ln)
		for _, kw := range titleKeywords {
			if strings.Contains(low, kw) {
				return ln
			}
		}
	}

	lowSkills := strings.ToLower(skills)
	switch {
	case strings.Contains(lowSkills, "data"):
		return "Data Professional"
	case strings.Contains(lowSkills, "python"):
		return "Software Developer"
	default:
		return "Professional"
	}
}

// truncate caps s at max characters
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
