package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobportal/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestComputeATSScorePartialSkills(t *testing.T) {
	job := &domain.Job{
		Title:       "Frontend Engineer",
		Description: "build react apps",
		Skills:      []string{"go", "react"},
		Experience:  "mid",
		Location:    "Berlin",
	}
	fields := domain.ExtractedFields{
		Skills: []string{"go"},
	}

	b := ComputeATSScore(job, fields)

	assert.Equal(t, 1, b.SkillMatches)
	assert.Equal(t, 2, b.JobSkills)
	assert.InDelta(t, 20, b.SkillScore, 0.001)
	assert.Equal(t, 20, b.Total)
	assert.Equal(t, "Low match - may not be suitable", b.RecommendedAction())

	rationale := b.Rationale()
	assert.Len(t, rationale, 5)
	assert.Equal(t, "Skills match: 1/2 (20%)", rationale[0])
}

func TestComputeATSScoreStrongCandidate(t *testing.T) {
	job := &domain.Job{
		Title:      "Go",
		Skills:     []string{"go", "postgres"},
		Experience: "mid",
		Location:   "Berlin",
	}
	fields := domain.ExtractedFields{
		Name:            strPtr("Jane Doe"),
		Skills:          []string{"go", "postgres"},
		ExperienceYears: 4,
		Education:       "Bachelor of Science",
		Location:        "berlin",
	}

	b := ComputeATSScore(job, fields)

	assert.Equal(t, 2, b.SkillMatches)
	assert.InDelta(t, 30, b.ExperienceScore, 0.001)
	assert.True(t, b.LocationMatch)
	assert.True(t, b.EducationMatch)
	assert.Equal(t, 90, b.Total)
	assert.Equal(t, "Strong candidate - recommend interview", b.RecommendedAction())
}

func TestComputeATSScoreEmptyFields(t *testing.T) {
	job := &domain.Job{
		Title:       "Backend Engineer",
		Description: "golang microservices",
		Skills:      []string{"go"},
		Experience:  "senior",
		Location:    "Remote",
	}

	b := ComputeATSScore(job, domain.ExtractedFields{})

	assert.Equal(t, 0, b.Total)
	assert.Len(t, b.Rationale(), 5)
	for _, line := range b.Rationale() {
		assert.NotEmpty(t, line)
	}
}

func TestComputeATSScoreNeverExceedsHundred(t *testing.T) {
	job := &domain.Job{
		Title:      "dev",
		Skills:     []string{"go"},
		Experience: "entry",
		Location:   "remote",
	}
	fields := domain.ExtractedFields{
		Skills:          []string{"go", "dev"},
		ExperienceYears: 30,
		Education:       "PhD in phd phd",
		Location:        "remote",
	}

	b := ComputeATSScore(job, fields)
	if b.Total > 100 {
		t.Fatalf("total %d exceeds 100", b.Total)
	}
}

func TestRecommendedActionBuckets(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{95, "Strong candidate - recommend interview"},
		{80, "Strong candidate - recommend interview"},
		{60, "Good candidate - consider for shortlist"},
		{40, "Moderate match - review manually"},
		{39, "Low match - may not be suitable"},
		{0, "Low match - may not be suitable"},
	}
	for _, tt := range tests {
		got := ATSBreakdown{Total: tt.total}.RecommendedAction()
		if got != tt.want {
			t.Errorf("total %d: got %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestRequiredYears(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{"entry", 0},
		{"mid", 2},
		{"senior", 5},
		{"lead", 8},
		{"anything else", 8},
	}
	for _, tt := range tests {
		if got := requiredYears(tt.level); got != tt.want {
			t.Errorf("requiredYears(%q) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestMatchesAnySkillBidirectional(t *testing.T) {
	assert.True(t, matchesAnySkill("Go", []string{"golang"}))
	assert.True(t, matchesAnySkill("golang", []string{"Go"}))
	assert.False(t, matchesAnySkill("react", []string{"golang"}))
	assert.False(t, matchesAnySkill("go", nil))
}
