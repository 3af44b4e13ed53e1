package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobportal/internal/domain"
	"jobportal/internal/model"
	"jobportal/pkg/ai"
)

// ResumeStore is the resume persistence the scorer depends on. AppendScore
// must be an atomic append at the storage layer so two concurrent scorings
// of the same resume never lose a record.
type ResumeStore interface {
	GetResume(ctx context.Context, id uuid.UUID) (*domain.Resume, error)
	AppendScore(ctx context.Context, resumeID uuid.UUID, rec domain.ScoreRecord) error
	UpdateExtracted(ctx context.Context, resumeID uuid.UUID, fields domain.ExtractedFields) error
}

type JobStore interface {
	GetJob(ctx context.Context, id uuid.UUID) (*domain.Job, error)
}

// LLM is the one blocking upstream collaborator. Implementations carry
// their own request timeout.
type LLM interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Strategy scores one resume against one job. The two named
// implementations are never silently mixed: AIStrategy (Gemini with a
// keyword fallback) and ATSStrategy (deterministic weighted formula).
type Strategy interface {
	Name() string
	Evaluate(ctx context.Context, job *domain.Job, resume *domain.Resume) domain.ScoreRecord
}

// Scorer is the consolidated scoring component. It owns entity resolution,
// strategy dispatch and score history persistence.
type Scorer struct {
	resumes ResumeStore
	jobs    JobStore
	llm     LLM
	now     func() time.Time
}

func NewScorer(resumes ResumeStore, jobs JobStore, llm LLM) *Scorer {
	return &Scorer{resumes: resumes, jobs: jobs, llm: llm, now: time.Now}
}

// ScoreResult pairs the parsed AI answer (nil when the model declined or
// produced garbage) with the record that was persisted.
type ScoreResult struct {
	Parsed *model.AIResult    `json:"parsed"`
	Record domain.ScoreRecord `json:"scoreRecord"`
}

// ScoreResumeForJob runs the AI scoring path for a (resume, job) pair and
// appends the outcome to the resume's score history. A record is always
// produced and persisted; only unresolvable entities abort the call.
func (s *Scorer) ScoreResumeForJob(ctx context.Context, resumeID, jobID uuid.UUID) (*ScoreResult, error) {
	resume, err := s.resumes.GetResume(ctx, resumeID)
	if err != nil {
		return nil, fmt.Errorf("missing resume %s: %w", resumeID, err)
	}
	job, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("missing job %s: %w", jobID, err)
	}

	parsed, record := s.evaluateAI(ctx, job, resume)
	record.JobID = jobID

	if err := s.resumes.AppendScore(ctx, resumeID, record); err != nil {
		return nil, fmt.Errorf("append score: %w", err)
	}

	// Best-effort: let a usable AI answer refine the extracted fields.
	if parsed != nil {
		if merged, changed := mergeExtracted(resume.Extracted, parsed); changed {
			if err := s.resumes.UpdateExtracted(ctx, resumeID, merged); err != nil {
				slog.Warn("failed to update extracted fields", "resume_id", resumeID, "error", err)
			}
		}
	}

	return &ScoreResult{Parsed: parsed, Record: record}, nil
}

// evaluateAI performs the single upstream attempt and absorbs every failure
// mode into the record: upstream failure => null score, unusable answer =>
// keyword fallback.
func (s *Scorer) evaluateAI(ctx context.Context, job *domain.Job, resume *domain.Resume) (*model.AIResult, domain.ScoreRecord) {
	record := domain.ScoreRecord{JobID: job.ID, CreatedAt: s.now()}

	text, err := s.llm.GenerateContent(ctx, scoringPrompt(job.Description, resume.RawText))
	if err != nil {
		slog.Error("ai scoring upstream failure", "job_id", job.ID, "resume_id", resume.ID, "error", err)
		record.Score = nil
		record.Rationale = []string{"upstream error"}
		record.RecommendedAction = "manual review"
		return nil, record
	}

	parsed := parseAIResult(text)
	if parsed != nil && parsed.Score != nil {
		score := domain.ClampScore(int(math.Round(*parsed.Score)))
		record.Score = &score
		record.Rationale = truncateRationale(parsed.Rationale)
		record.RecommendedAction = parsed.RecommendedAction
		return parsed, record
	}

	// Model declined, returned garbage, or omitted the score.
	score := KeywordScore(job.Description, resume.RawText)
	record.Score = &score
	record.Rationale = []string{fallbackRationale}
	record.RecommendedAction = fallbackAction
	return parsed, record
}

// jsonPayloadRe grabs the outermost brace-delimited payload so prose the
// model wraps around its JSON does not poison the parse.
var jsonPayloadRe = regexp.MustCompile(`(?s)\{.*\}`)

// parseAIResult cleans and strictly parses a model answer. Any failure
// yields nil; the caller falls back to keyword scoring.
func parseAIResult(text string) *model.AIResult {
	if strings.Contains(text, ai.MarkerNoJSON) {
		return nil
	}
	cleaned := jsonPayloadRe.FindString(ai.Clean(text))
	if cleaned == "" {
		slog.Warn("ai answer contains no json payload")
		return nil
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		slog.Warn("ai answer is not valid json", "error", err)
		return nil
	}
	if err := model.ValidateScoreMap(raw); err != nil {
		slog.Warn("ai answer failed schema validation", "error", err)
		return nil
	}

	var result model.AIResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		slog.Warn("ai answer decode failed", "error", err)
		return nil
	}
	return &result
}

func truncateRationale(r []string) []string {
	if r == nil {
		return []string{}
	}
	if len(r) > 3 {
		return r[:3]
	}
	return r
}

// mergeExtracted overlays non-empty AI fields onto the heuristic ones.
func mergeExtracted(base domain.ExtractedFields, parsed *model.AIResult) (domain.ExtractedFields, bool) {
	changed := false
	if parsed.Name != nil && *parsed.Name != "" {
		base.Name = parsed.Name
		changed = true
	}
	if parsed.Email != nil && *parsed.Email != "" {
		base.Email = parsed.Email
		changed = true
	}
	if parsed.Phone != nil && *parsed.Phone != "" {
		base.Phone = parsed.Phone
		changed = true
	}
	if len(parsed.Skills) > 0 {
		base.Skills = parsed.Skills
		changed = true
	}
	return base, changed
}

// ExtractFieldsAI asks the model for structured candidate fields. Returns
// nil on any failure; the caller keeps the heuristic extraction.
func (s *Scorer) ExtractFieldsAI(ctx context.Context, rawText string) *model.ExtractionResult {
	text, err := s.llm.GenerateContent(ctx, extractionPrompt(rawText))
	if err != nil {
		slog.Warn("ai field extraction failed", "error", err)
		return nil
	}
	cleaned := jsonPayloadRe.FindString(ai.Clean(text))
	if cleaned == "" {
		slog.Warn("ai field extraction returned no json payload")
		return nil
	}
	var result model.ExtractionResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		slog.Warn("ai field extraction returned non-json content", "error", err)
		return nil
	}
	return &result
}

// --- Strategies ---

// AIStrategy wraps the AI path (including its keyword fallback) behind the
// Strategy interface. It does not persist history; the Scorer does.
type AIStrategy struct {
	scorer *Scorer
}

func (a *AIStrategy) Name() string { return "ai" }

func (a *AIStrategy) Evaluate(ctx context.Context, job *domain.Job, resume *domain.Resume) domain.ScoreRecord {
	_, record := a.scorer.evaluateAI(ctx, job, resume)
	return record
}

// ATSStrategy is the deterministic weighted formula over extracted fields.
type ATSStrategy struct{}

func (ATSStrategy) Name() string { return "ats" }

func (ATSStrategy) Evaluate(_ context.Context, job *domain.Job, resume *domain.Resume) domain.ScoreRecord {
	b := ComputeATSScore(job, resume.Extracted)
	score := b.Total
	return domain.ScoreRecord{
		JobID:             job.ID,
		Score:             &score,
		Rationale:         b.Rationale(),
		RecommendedAction: b.RecommendedAction(),
		CreatedAt:         time.Now(),
	}
}

// StrategyByName resolves the configured upload-path strategy.
func (s *Scorer) StrategyByName(name string) Strategy {
	if name == "ai" {
		return &AIStrategy{scorer: s}
	}
	return ATSStrategy{}
}
