package resumeparser

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Normalizers are pure, total and idempotent. The same functions run on
// freshly extracted fields and on user-submitted edits.

var (
	listSplitRe    = regexp.MustCompile(`[,;•|/\n]`)
	softSkillsLead = regexp.MustCompile(`(?i)^soft\s+skills?\s*:\s*`)
	bulletLeadRe   = regexp.MustCompile(`^[\-–—•●*]+\s*`)
)

var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2006",
	"Jan 2006",
}

// NormalizeDate canonicalizes free-form date text to YYYY-MM-DD.
// Unparseable input is returned trimmed but otherwise unchanged.
func NormalizeDate(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return trimmed
}

// NormalizeSkills re-delimits free text into a deduplicated
// comma-separated list
func NormalizeSkills(s string) string {
	return joinList(splitList(s))
}

// NormalizeSoftSkills strips an optional "Soft skills:" lead-in and
// normalizes the rest like NormalizeSkills
func NormalizeSoftSkills(s string) string {
	return joinList(splitList(softSkillsLead.ReplaceAllString(strings.TrimSpace(s), "")))
}

// NormalizeLanguagesSpoken re-delimits a language list, capitalizing
// the first letter of each entry
func NormalizeLanguagesSpoken(s string) string {
	items := splitList(s)
	for i, item := range items {
		items[i] = upperFirst(item)
	}
	return joinList(items)
}

// NormalizeBlockSection reflows multi-line text (experience, education,
// projects, certifications, awards) into consistent "- " bullet lines
func NormalizeBlockSection(s string) string {
	var out []string
	for _, ln := range strings.Split(s, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		ln = strings.TrimSpace(bulletLeadRe.ReplaceAllString(ln, ""))
		if ln == "" {
			continue
		}
		out = append(out, "- "+ln)
	}
	return strings.Join(out, "\n")
}

// splitList splits on list delimiters, trims and deduplicates
// case-insensitively while preserving first-seen order
func splitList(s string) []string {
	seen := make(map[string]bool)
	var items []string
	for _, item := range listSplitRe.Split(s, -1) {
		item = strings.TrimSpace(item)
		if len(item) < 2 {
			continue
		}
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, item)
	}
	return items
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}

func upperFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
