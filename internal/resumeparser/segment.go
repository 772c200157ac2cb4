package resumeparser

import (
	"regexp"
	"unicode/utf8"
)

var pageMarkerRe = regexp.MustCompile(`(?i)^page\s+\d+`)

// locateHeaders finds, per section field, the index of the first line
// matching any of the field's header patterns. Fields whose patterns
// overlap may resolve to the same line index.
func locateHeaders(lines []string, sections []SectionRule) map[string]int {
	positions := make(map[string]int, len(sections))
	for _, rule := range sections {
		for i, ln := range lines {
			if matchesAny(ln, rule.Patterns) {
				positions[rule.Field] = i
				break
			}
		}
	}
	return positions
}

func matchesAny(line string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// sliceSection returns the content lines under a field's header. The
// slice starts one line after the header and ends at the nearest other
// detected header strictly past the start, capped at maxLines. A header
// sharing the same index as this field's is not a terminator. Short
// lines and pagination markers are dropped.
func sliceSection(lines []string, positions map[string]int, field string, maxLines int) []string {
	pos, ok := positions[field]
	if !ok {
		return nil
	}

	start := pos + 1
	end := len(lines)
	for other, p := range positions {
		if other == field {
			continue
		}
		if p > start && p < end {
			end = p
		}
	}
	if end > start+maxLines {
		end = start + maxLines
	}
	if start >= len(lines) {
		return nil
	}

	var content []string
	for _, ln := range lines[start:end] {
		if utf8.RuneCountInString(ln) < 10 {
			continue
		}
		if pageMarkerRe.MatchString(ln) {
			continue
		}
		content = append(content, ln)
	}
	return content
}
