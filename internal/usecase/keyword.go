package usecase

import (
	"math"
	"strings"
)

// Fallback record texture, kept distinguishable from real AI output.
const (
	fallbackRationale = "Local keyword match score"
	fallbackAction    = "Review based on keywords"
)

// KeywordScore is the deterministic fallback: the fraction of unique job
// description tokens (length > 2) found as substrings of the resume text,
// scaled to 0-100 and floored at 1 so a fallback result is never confused
// with an upstream failure's null score.
func KeywordScore(jobDescription, resumeText string) int {
	seen := make(map[string]bool)
	var unique []string
	for _, tok := range strings.Fields(strings.ToLower(jobDescription)) {
		if len(tok) <= 2 || seen[tok] {
			continue
		}
		seen[tok] = true
		unique = append(unique, tok)
	}
	if len(unique) == 0 {
		return 1
	}

	resumeLower := strings.ToLower(resumeText)
	matches := 0
	for _, tok := range unique {
		if strings.Contains(resumeLower, tok) {
			matches++
		}
	}

	score := int(math.Round(float64(matches) / float64(len(unique)) * 100))
	if score < 1 {
		score = 1
	}
	if score > 100 {
		score = 100
	}
	return score
}
