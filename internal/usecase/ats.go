package usecase

import (
	"fmt"
	"math"
	"strings"

	"jobportal/internal/domain"
)

// Component weights of the ATS formula. They sum to 100.
const (
	weightSkills     = 40.0
	weightExperience = 30.0
	weightLocation   = 10.0
	weightEducation  = 10.0
	weightKeywords   = 10.0
)

// ATSBreakdown carries the per-component contributions used to build the
// five-line rationale.
type ATSBreakdown struct {
	SkillMatches    int
	JobSkills       int
	SkillScore      float64
	ExperienceYears float64
	ExperienceScore float64
	LocationMatch   bool
	EducationMatch  bool
	KeywordMatches  int
	KeywordScore    float64
	Total           int
}

// ComputeATSScore applies the weighted formula to a job and a candidate's
// extracted fields. Deterministic, no external calls.
func ComputeATSScore(job *domain.Job, fields domain.ExtractedFields) ATSBreakdown {
	var b ATSBreakdown

	// Skills: fraction of required skills matched by any candidate skill,
	// substring match in either direction, case-insensitive.
	b.JobSkills = len(job.Skills)
	for _, js := range job.Skills {
		if matchesAnySkill(js, fields.Skills) {
			b.SkillMatches++
		}
	}
	b.SkillScore = float64(b.SkillMatches) / math.Max(float64(b.JobSkills), 1) * weightSkills

	// Experience: baseline years required for the job's level, candidate
	// years measured against baseline+2.
	required := requiredYears(job.Experience)
	b.ExperienceYears = fields.ExperienceYears
	b.ExperienceScore = math.Min(b.ExperienceYears/float64(required+2), 1) * weightExperience

	// Location: one contains the other.
	jobLoc := strings.ToLower(job.Location)
	candLoc := strings.ToLower(fields.Location)
	b.LocationMatch = jobLoc != "" && candLoc != "" &&
		(strings.Contains(jobLoc, candLoc) || strings.Contains(candLoc, jobLoc))

	// Education: any degree keyword.
	edu := strings.ToLower(fields.Education)
	b.EducationMatch = strings.Contains(edu, "bachelor") || strings.Contains(edu, "master") || strings.Contains(edu, "phd")

	// Keyword bonus: job title+description+requirements tokens (length > 2)
	// found in a synthetic candidate text.
	keywords := atsKeywords(job)
	candidateText := strings.ToLower(strings.Join(append([]string{derefOr(fields.Name, "")}, append(fields.Skills, fields.Education)...), " "))
	for _, kw := range keywords {
		if strings.Contains(candidateText, kw) {
			b.KeywordMatches++
		}
	}
	b.KeywordScore = float64(b.KeywordMatches) / math.Max(float64(len(keywords)), 1) * weightKeywords

	total := b.SkillScore + b.ExperienceScore + b.KeywordScore
	if b.LocationMatch {
		total += weightLocation
	}
	if b.EducationMatch {
		total += weightEducation
	}
	b.Total = int(math.Round(math.Min(total, 100)))
	return b
}

// Rationale renders the fixed five-line component breakdown.
func (b ATSBreakdown) Rationale() []string {
	locPts, eduPts := 0, 0
	locLabel, eduLabel := "No match", "Not specified"
	if b.LocationMatch {
		locPts, locLabel = 10, "Match"
	}
	if b.EducationMatch {
		eduPts, eduLabel = 10, "Relevant"
	}
	return []string{
		fmt.Sprintf("Skills match: %d/%d (%d%%)", b.SkillMatches, b.JobSkills, int(math.Round(b.SkillScore))),
		fmt.Sprintf("Experience: %g years (%d%%)", b.ExperienceYears, int(math.Round(b.ExperienceScore))),
		fmt.Sprintf("Location: %s (%d%%)", locLabel, locPts),
		fmt.Sprintf("Education: %s (%d%%)", eduLabel, eduPts),
		fmt.Sprintf("Keywords: %d matches (%d%%)", b.KeywordMatches, int(math.Round(b.KeywordScore))),
	}
}

// RecommendedAction buckets the final score into a review suggestion.
func (b ATSBreakdown) RecommendedAction() string {
	switch {
	case b.Total >= 80:
		return "Strong candidate - recommend interview"
	case b.Total >= 60:
		return "Good candidate - consider for shortlist"
	case b.Total >= 40:
		return "Moderate match - review manually"
	default:
		return "Low match - may not be suitable"
	}
}

func matchesAnySkill(jobSkill string, candidateSkills []string) bool {
	js := strings.ToLower(jobSkill)
	for _, cs := range candidateSkills {
		cl := strings.ToLower(cs)
		if strings.Contains(cl, js) || strings.Contains(js, cl) {
			return true
		}
	}
	return false
}

// requiredYears maps a job experience level to its baseline years.
func requiredYears(level string) int {
	switch level {
	case "entry":
		return 0
	case "mid":
		return 2
	case "senior":
		return 5
	default: // lead and free-text levels
		return 8
	}
}

func atsKeywords(job *domain.Job) []string {
	text := strings.ToLower(job.Title + " " + job.Description + " " + job.Requirements)
	var out []string
	for _, tok := range strings.Fields(text) {
		if len(tok) > 2 {
			out = append(out, tok)
		}
	}
	return out
}

func derefOr(s *string, def string) string {
	if s != nil {
		return *s
	}
	return def
}
