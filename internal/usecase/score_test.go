package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/internal/domain"
)

type fakeResumeStore struct {
	mu      sync.Mutex
	resumes map[uuid.UUID]*domain.Resume
	history map[uuid.UUID][]domain.ScoreRecord
}

func newFakeResumeStore(resumes ...*domain.Resume) *fakeResumeStore {
	s := &fakeResumeStore{
		resumes: make(map[uuid.UUID]*domain.Resume),
		history: make(map[uuid.UUID][]domain.ScoreRecord),
	}
	for _, r := range resumes {
		s.resumes[r.ID] = r
	}
	return s
}

func (s *fakeResumeStore) GetResume(_ context.Context, id uuid.UUID) (*domain.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.resumes[id]
	if !ok {
		return nil, errors.New("resume not found")
	}
	cp := *r
	return &cp, nil
}

func (s *fakeResumeStore) AppendScore(_ context.Context, resumeID uuid.UUID, rec domain.ScoreRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.resumes[resumeID]; !ok {
		return errors.New("resume not found")
	}
	s.history[resumeID] = append(s.history[resumeID], rec)
	return nil
}

func (s *fakeResumeStore) UpdateExtracted(_ context.Context, resumeID uuid.UUID, fields domain.ExtractedFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.resumes[resumeID]
	if !ok {
		return errors.New("resume not found")
	}
	r.Extracted = fields
	return nil
}

type fakeJobStore struct {
	jobs map[uuid.UUID]*domain.Job
}

func (s *fakeJobStore) GetJob(_ context.Context, id uuid.UUID) (*domain.Job, error) {
	j, ok := s.jobs[id]
	if !ok {
		return nil, errors.New("job not found")
	}
	return j, nil
}

type fakeLLM struct {
	text string
	err  error
}

func (f *fakeLLM) GenerateContent(context.Context, string) (string, error) {
	return f.text, f.err
}

func fixture() (*domain.Resume, *domain.Job, *fakeResumeStore, *fakeJobStore) {
	resume := &domain.Resume{
		ID:      uuid.New(),
		RawText: "golang developer with postgres experience",
	}
	job := &domain.Job{
		ID:          uuid.New(),
		Description: "golang developer with postgres",
	}
	resumes := newFakeResumeStore(resume)
	jobs := &fakeJobStore{jobs: map[uuid.UUID]*domain.Job{job.ID: job}}
	return resume, job, resumes, jobs
}

func TestScoreResumeForJobParsesFencedAnswerAndClamps(t *testing.T) {
	resume, job, resumes, jobs := fixture()
	llm := &fakeLLM{text: "Sure, here is the evaluation:\n```json\n" +
		`{"score": 150, "rationale": ["a", "b", "c", "d"], "recommendedAction": "interview"}` +
		"\n```"}
	scorer := NewScorer(resumes, jobs, llm)

	result, err := scorer.ScoreResumeForJob(context.Background(), resume.ID, job.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Parsed)
	require.NotNil(t, result.Record.Score)

	assert.Equal(t, 100, *result.Record.Score)
	assert.Equal(t, []string{"a", "b", "c"}, result.Record.Rationale)
	assert.Equal(t, "interview", result.Record.RecommendedAction)
	assert.Equal(t, job.ID, result.Record.JobID)

	history := resumes.history[resume.ID]
	require.Len(t, history, 1)
	assert.Equal(t, result.Record, history[0])
}

func TestScoreResumeForJobProseWrappedAnswer(t *testing.T) {
	resume, job, resumes, jobs := fixture()
	llm := &fakeLLM{text: "Based on my evaluation:\n" +
		`{"score": 64, "rationale": ["relevant stack"]}` +
		"\nLet me know if you need more detail."}
	scorer := NewScorer(resumes, jobs, llm)

	result, err := scorer.ScoreResumeForJob(context.Background(), resume.ID, job.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Parsed)
	require.NotNil(t, result.Record.Score)
	assert.Equal(t, 64, *result.Record.Score)
	assert.Equal(t, []string{"relevant stack"}, result.Record.Rationale)
}

func TestScoreResumeForJobUpstreamFailure(t *testing.T) {
	resume, job, resumes, jobs := fixture()
	llm := &fakeLLM{err: errors.New("connect: timeout")}
	scorer := NewScorer(resumes, jobs, llm)

	result, err := scorer.ScoreResumeForJob(context.Background(), resume.ID, job.ID)
	require.NoError(t, err)

	assert.Nil(t, result.Parsed)
	assert.Nil(t, result.Record.Score)
	assert.Equal(t, []string{"upstream error"}, result.Record.Rationale)
	assert.Equal(t, "manual review", result.Record.RecommendedAction)

	// The failure is still part of the history.
	require.Len(t, resumes.history[resume.ID], 1)
}

func TestScoreResumeForJobNoJSONFallsBackToKeywords(t *testing.T) {
	resume, job, resumes, jobs := fixture()
	llm := &fakeLLM{text: "I cannot evaluate this resume. <<<NO_JSON>>>"}
	scorer := NewScorer(resumes, jobs, llm)

	result, err := scorer.ScoreResumeForJob(context.Background(), resume.ID, job.ID)
	require.NoError(t, err)

	assert.Nil(t, result.Parsed)
	require.NotNil(t, result.Record.Score)
	assert.Equal(t, 100, *result.Record.Score)
	assert.Equal(t, []string{fallbackRationale}, result.Record.Rationale)
	assert.Equal(t, fallbackAction, result.Record.RecommendedAction)
}

func TestScoreResumeForJobMalformedAnswerFallsBack(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not json at all", "the candidate looks fine to me"},
		{"empty answer", ""},
		{"truncated json", `{"score": 8`},
		{"score missing", `{"rationale": ["solid"]}`},
		{"score not numeric", `{"score": "85"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resume, job, resumes, jobs := fixture()
			scorer := NewScorer(resumes, jobs, &fakeLLM{text: tt.text})

			result, err := scorer.ScoreResumeForJob(context.Background(), resume.ID, job.ID)
			require.NoError(t, err)

			require.NotNil(t, result.Record.Score)
			assert.GreaterOrEqual(t, *result.Record.Score, 1)
			assert.Equal(t, []string{fallbackRationale}, result.Record.Rationale)
		})
	}
}

func TestScoreResumeForJobScorelessAnswerKeepsFields(t *testing.T) {
	resume, job, resumes, jobs := fixture()
	llm := &fakeLLM{text: `{"name": "Jane Roe", "skills": ["go"]}`}
	scorer := NewScorer(resumes, jobs, llm)

	result, err := scorer.ScoreResumeForJob(context.Background(), resume.ID, job.ID)
	require.NoError(t, err)

	// No numeric score, so the keyword fallback decides the record...
	require.NotNil(t, result.Record.Score)
	assert.Equal(t, []string{fallbackRationale}, result.Record.Rationale)

	// ...but the answer itself is still usable for field extraction.
	require.NotNil(t, result.Parsed)
	stored := resumes.resumes[resume.ID]
	require.NotNil(t, stored.Extracted.Name)
	assert.Equal(t, "Jane Roe", *stored.Extracted.Name)
	assert.Equal(t, []string{"go"}, stored.Extracted.Skills)
}

func TestScoreResumeForJobMissingEntities(t *testing.T) {
	resume, job, resumes, jobs := fixture()
	scorer := NewScorer(resumes, jobs, &fakeLLM{text: `{"score": 50}`})

	_, err := scorer.ScoreResumeForJob(context.Background(), uuid.New(), job.ID)
	assert.Error(t, err)

	_, err = scorer.ScoreResumeForJob(context.Background(), resume.ID, uuid.New())
	assert.Error(t, err)

	assert.Empty(t, resumes.history[resume.ID])
}

func TestScoreResumeForJobUpdatesExtractedFromAnswer(t *testing.T) {
	resume, job, resumes, jobs := fixture()
	llm := &fakeLLM{text: `{"score": 70, "name": "Jane Roe", "skills": ["go", "sql"]}`}
	scorer := NewScorer(resumes, jobs, llm)

	_, err := scorer.ScoreResumeForJob(context.Background(), resume.ID, job.ID)
	require.NoError(t, err)

	stored := resumes.resumes[resume.ID]
	require.NotNil(t, stored.Extracted.Name)
	assert.Equal(t, "Jane Roe", *stored.Extracted.Name)
	assert.Equal(t, []string{"go", "sql"}, stored.Extracted.Skills)
}

func TestScoreResumeForJobConcurrentAppends(t *testing.T) {
	resume, job, resumes, jobs := fixture()
	scorer := NewScorer(resumes, jobs, &fakeLLM{text: `{"score": 42}`})

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := scorer.ScoreResumeForJob(context.Background(), resume.ID, job.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Len(t, resumes.history[resume.ID], n)
}

func TestParseAIResult(t *testing.T) {
	parsed := parseAIResult("<<<JSON>>>\n{\"score\": 66.4}\n<<<ENDJSON>>>")
	require.NotNil(t, parsed)
	require.NotNil(t, parsed.Score)
	assert.Equal(t, 66.4, *parsed.Score)

	assert.Nil(t, parseAIResult("<<<NO_JSON>>>"))
	assert.Nil(t, parseAIResult("plain refusal"))
}

func TestScoreRecordTimestamps(t *testing.T) {
	resume, job, resumes, jobs := fixture()
	scorer := NewScorer(resumes, jobs, &fakeLLM{text: `{"score": 10}`})
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	scorer.now = func() time.Time { return fixed }

	result, err := scorer.ScoreResumeForJob(context.Background(), resume.ID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, fixed, result.Record.CreatedAt)
}

func TestStrategyByName(t *testing.T) {
	resume, job, resumes, jobs := fixture()
	scorer := NewScorer(resumes, jobs, &fakeLLM{text: `{"score": 55}`})

	ai := scorer.StrategyByName("ai")
	assert.Equal(t, "ai", ai.Name())
	rec := ai.Evaluate(context.Background(), job, resume)
	require.NotNil(t, rec.Score)
	assert.Equal(t, 55, *rec.Score)

	ats := scorer.StrategyByName("ats")
	assert.Equal(t, "ats", ats.Name())
	rec = ats.Evaluate(context.Background(), job, resume)
	require.NotNil(t, rec.Score)
	assert.Equal(t, job.ID, rec.JobID)
}

func TestTruncateRationale(t *testing.T) {
	assert.Equal(t, []string{}, truncateRationale(nil))
	assert.Equal(t, []string{"a"}, truncateRationale([]string{"a"}))
	assert.Equal(t, []string{"a", "b", "c"}, truncateRationale([]string{"a", "b", "c", "d"}))
}
