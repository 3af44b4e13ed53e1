package usecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"jobportal/internal/domain"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?(\(?\d{2,4}\)?[-.\s]?)?\d{3,4}[-.\s]?\d{3,4}`)
	lineRe  = regexp.MustCompile(`\r?\n`)
)

// Section headers and contact labels that can never be a candidate's name.
var nameIgnoreKeywords = []string{
	"summary", "skill", "experience", "education", "certificat", "contact", "phone", "email",
}

// ExtractFields runs the heuristic extraction pass over decoded resume
// text. It is deterministic, never errors, and returns a structurally
// complete result whose fields may be nil.
func ExtractFields(text string) domain.ExtractedFields {
	return domain.ExtractedFields{
		Name:    extractName(text),
		Email:   extractEmail(text),
		Phone:   extractPhone(text),
		Summary: extractSummary(text),
	}
}

func extractEmail(text string) *string {
	if m := emailRe.FindString(text); m != "" {
		return &m
	}
	return nil
}

func extractPhone(text string) *string {
	if m := strings.TrimSpace(phoneRe.FindString(text)); m != "" {
		return &m
	}
	return nil
}

// extractName picks the first line that plausibly holds a person's name:
// short, contains a letter, not a section header, no email marker, and not
// dominated by digits.
func extractName(text string) *string {
	for _, line := range lineRe.Split(text, -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runes := utf8.RuneCountInString(line)
		if runes <= 2 || runes >= 60 {
			continue
		}
		if !strings.ContainsFunc(line, unicode.IsLetter) {
			continue
		}
		if containsIgnoreKeyword(line) {
			continue
		}
		if strings.Contains(line, "@") {
			continue
		}
		digits := 0
		for _, r := range line {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		if float64(digits) > float64(runes)*0.4 {
			continue
		}
		return &line
	}
	return nil
}

func containsIgnoreKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range nameIgnoreKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// extractSummary joins the first 10 raw lines with spaces. A crude
// abstract: blank lines are kept, no meaning is guaranteed.
func extractSummary(text string) string {
	lines := lineRe.Split(text, -1)
	if len(lines) > 10 {
		lines = lines[:10]
	}
	return strings.Join(lines, " ")
}
