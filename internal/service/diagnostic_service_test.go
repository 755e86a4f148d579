package service

import (
	"sync"
	"testing"
	"time"

	"sikshyamap_backend/internal/model"
	"sikshyamap_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// In-memory stores standing in for the gorm repositories.

type fakeCheckpointStore struct {
	checkpoints map[uint]*model.Checkpoint
}

func (f *fakeCheckpointStore) FindByID(id uint) (*model.Checkpoint, error) {
	if cp, ok := f.checkpoints[id]; ok {
		return cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakePatternStore struct {
	patterns map[uint][]model.ErrorPattern
}

func (f *fakePatternStore) ListByCheckpoint(checkpointID uint) ([]model.ErrorPattern, error) {
	return f.patterns[checkpointID], nil
}

type fakeStepStore struct {
	steps   map[uint]*model.Step
	options map[uint]*model.StepOption
}

func (f *fakeStepStore) FindStepByID(id uint) (*model.Step, error) {
	if step, ok := f.steps[id]; ok {
		return step, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStepStore) FindOptionByID(id uint) (*model.StepOption, error) {
	if opt, ok := f.options[id]; ok {
		return opt, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeStudentStore struct {
	students map[uint]*model.User
}

func (f *fakeStudentStore) FindByID(id uint) (*model.User, error) {
	if u, ok := f.students[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// fakeProgressStore mirrors the repository's upsert contract behind a mutex.
type fakeProgressStore struct {
	mu      sync.Mutex
	records map[[2]uint]*model.StudentProgress
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: map[[2]uint]*model.StudentProgress{}}
}

func (f *fakeProgressStore) RecordAttempt(studentID, conceptID uint, now time.Time) (*model.StudentProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := [2]uint{studentID, conceptID}
	if p, ok := f.records[key]; ok {
		p.Attempts++
		p.LastAttemptedAt = now
		cp := *p
		return &cp, nil
	}

	p := &model.StudentProgress{
		StudentID:       studentID,
		ConceptID:       conceptID,
		Status:          model.ProgressInProgress,
		Attempts:        1,
		LastAttemptedAt: now,
	}
	f.records[key] = p
	cp := *p
	return &cp, nil
}

func newTestService() (*DiagnosticService, *fakeCheckpointStore, *fakePatternStore, *fakeStepStore, *fakeStudentStore, *fakeProgressStore) {
	checkpoints := &fakeCheckpointStore{checkpoints: map[uint]*model.Checkpoint{}}
	patterns := &fakePatternStore{patterns: map[uint][]model.ErrorPattern{}}
	steps := &fakeStepStore{steps: map[uint]*model.Step{}, options: map[uint]*model.StepOption{}}
	students := &fakeStudentStore{students: map[uint]*model.User{}}
	progress := newFakeProgressStore()
	svc := NewDiagnosticService(checkpoints, patterns, steps, students, progress)
	return svc, checkpoints, patterns, steps, students, progress
}

func withID(id uint) model.BaseModel {
	return model.BaseModel{ID: id}
}

func TestMatchErrorPattern(t *testing.T) {
	svc, _, patterns, _, _, _ := newTestService()

	patterns.patterns[1] = []model.ErrorPattern{
		{BaseModel: withID(1), CheckpointID: 1, TriggerValue: "0.25", TriggerTolerance: 0.01, Confidence: 0.7, Description: "Divided instead of multiplying"},
		{BaseModel: withID(2), CheckpointID: 1, TriggerValue: "0.25", TriggerTolerance: 0.01, Confidence: 0.9, Description: "Inverted the fraction"},
		{BaseModel: withID(3), CheckpointID: 1, TriggerValue: "four", TriggerTolerance: 0.01, Confidence: 0.95, Description: "Answered in words"},
	}

	t.Run("picks highest confidence among numeric matches", func(t *testing.T) {
		got, err := svc.MatchErrorPattern(1, "0.251")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, uint(2), got.ID)
	})

	t.Run("text trigger matches case insensitively", func(t *testing.T) {
		got, err := svc.MatchErrorPattern(1, " FOUR ")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, uint(3), got.ID)
	})

	t.Run("no match is nil without error", func(t *testing.T) {
		got, err := svc.MatchErrorPattern(1, "99")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("no patterns at all is nil without error", func(t *testing.T) {
		got, err := svc.MatchErrorPattern(42, "0.25")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestMatchErrorPatternConfidenceTie(t *testing.T) {
	svc, _, patterns, _, _, _ := newTestService()

	patterns.patterns[1] = []model.ErrorPattern{
		{BaseModel: withID(10), CheckpointID: 1, TriggerValue: "7", TriggerTolerance: 0.01, Confidence: 0.8, Description: "first"},
		{BaseModel: withID(11), CheckpointID: 1, TriggerValue: "7", TriggerTolerance: 0.01, Confidence: 0.8, Description: "second"},
	}

	// Same confidence, same trigger: the lowest id must win every time.
	for i := 0; i < 5; i++ {
		got, err := svc.MatchErrorPattern(1, "7")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, uint(10), got.ID)
	}
}

func TestEvaluateStepSubmission(t *testing.T) {
	svc, _, _, steps, _, _ := newTestService()

	steps.steps[1] = &model.Step{
		BaseModel:       withID(1),
		ProblemID:       1,
		Order:           1,
		StepDescription: "Find a common denominator before adding.",
		CorrectAnswer:   "6",
		Explanation:     "Both fractions share the denominator 6.",
	}
	steps.options[10] = &model.StepOption{BaseModel: withID(10), StepID: 1, OptionText: "6", IsCorrect: true}
	steps.options[11] = &model.StepOption{BaseModel: withID(11), StepID: 1, OptionText: "8", IsCorrect: false}
	steps.options[20] = &model.StepOption{BaseModel: withID(20), StepID: 2, OptionText: "6", IsCorrect: true}

	t.Run("correct option", func(t *testing.T) {
		verdict, err := svc.EvaluateStepSubmission(1, 10, 1)
		require.NoError(t, err)
		assert.True(t, verdict.Correct)
		require.NotNil(t, verdict.Explanation)
		assert.Equal(t, "Both fractions share the denominator 6.", *verdict.Explanation)
		assert.Nil(t, verdict.Hint)
		assert.Equal(t, ActionContinue, verdict.NextAction)
	})

	t.Run("wrong option first attempt hints with step description", func(t *testing.T) {
		verdict, err := svc.EvaluateStepSubmission(1, 11, 1)
		require.NoError(t, err)
		assert.False(t, verdict.Correct)
		require.NotNil(t, verdict.Hint)
		assert.Equal(t, "Find a common denominator before adding.", *verdict.Hint)
		assert.Nil(t, verdict.Explanation)
		assert.Equal(t, ActionRetry, verdict.NextAction)
	})

	t.Run("wrong option second attempt discloses the answer", func(t *testing.T) {
		verdict, err := svc.EvaluateStepSubmission(1, 11, 2)
		require.NoError(t, err)
		assert.False(t, verdict.Correct)
		require.NotNil(t, verdict.Hint)
		assert.Equal(t, "6", *verdict.Hint)
		assert.Contains(t, verdict.Feedback, "6")
		assert.Equal(t, ActionRetry, verdict.NextAction)
	})

	t.Run("unknown option is invalid, not wrong", func(t *testing.T) {
		verdict, err := svc.EvaluateStepSubmission(1, 999, 1)
		require.NoError(t, err)
		assert.False(t, verdict.Correct)
		assert.Equal(t, feedbackInvalidOption, verdict.Feedback)
		assert.Nil(t, verdict.Hint)
		assert.Equal(t, ActionRetry, verdict.NextAction)
	})

	t.Run("option from another step is invalid even when marked correct", func(t *testing.T) {
		verdict, err := svc.EvaluateStepSubmission(1, 20, 1)
		require.NoError(t, err)
		assert.False(t, verdict.Correct)
		assert.Equal(t, feedbackInvalidOption, verdict.Feedback)
	})

	t.Run("missing step", func(t *testing.T) {
		_, err := svc.EvaluateStepSubmission(999, 10, 1)
		assert.ErrorIs(t, err, util.ErrStepNotFound)
	})
}

func TestEvaluateStepSubmissionHintTruncation(t *testing.T) {
	svc, _, _, steps, _, _ := newTestService()

	longAnswer := ""
	for i := 0; i < 12; i++ {
		longAnswer += "0123456789"
	}
	require.Len(t, longAnswer, 120)

	steps.steps[1] = &model.Step{
		BaseModel:       withID(1),
		ProblemID:       1,
		StepDescription: "desc",
		CorrectAnswer:   longAnswer,
	}
	steps.options[11] = &model.StepOption{BaseModel: withID(11), StepID: 1, OptionText: "x", IsCorrect: false}

	verdict, err := svc.EvaluateStepSubmission(1, 11, 2)
	require.NoError(t, err)

	// Feedback carries only the first 80 characters; the hint carries the
	// full answer.
	assert.Contains(t, verdict.Feedback, longAnswer[:80])
	assert.NotContains(t, verdict.Feedback, longAnswer)
	require.NotNil(t, verdict.Hint)
	assert.Equal(t, longAnswer, *verdict.Hint)
}

func TestEvaluateCheckpointAnswer(t *testing.T) {
	svc, checkpoints, patterns, _, students, progress := newTestService()

	checkpoints.checkpoints[1] = &model.Checkpoint{
		BaseModel:     withID(1),
		ConceptID:     5,
		Question:      "What is 1/4 as a decimal?",
		CorrectAnswer: "0.25",
		Tolerance:     0.01,
	}
	students.students[7] = &model.User{BaseModel: withID(7), Name: "Asha", Role: model.Student}
	patterns.patterns[1] = []model.ErrorPattern{
		{BaseModel: withID(1), CheckpointID: 1, TriggerValue: "4", TriggerTolerance: 0.01, Confidence: 0.9,
			Description: "You divided the denominator by the numerator.", Remediation: "Divide 1 by 4, not 4 by 1."},
	}

	t.Run("correct answer records an attempt", func(t *testing.T) {
		verdict, err := svc.EvaluateCheckpointAnswer(1, "0.25", 1, 7)
		require.NoError(t, err)
		assert.True(t, verdict.Correct)
		assert.Nil(t, verdict.ErrorPattern)
		require.NotNil(t, verdict.Progress)
		assert.Equal(t, 1, verdict.Progress.Attempts)
		assert.Equal(t, model.ProgressInProgress, verdict.Progress.Status)
	})

	t.Run("second submission increments without duplicating", func(t *testing.T) {
		verdict, err := svc.EvaluateCheckpointAnswer(1, "0.3", 2, 7)
		require.NoError(t, err)
		assert.False(t, verdict.Correct)
		require.NotNil(t, verdict.Progress)
		assert.Equal(t, 2, verdict.Progress.Attempts)
		assert.Len(t, progress.records, 1)
	})

	t.Run("recognized wrong answer carries pattern feedback", func(t *testing.T) {
		verdict, err := svc.EvaluateCheckpointAnswer(1, "4", 3, 7)
		require.NoError(t, err)
		assert.False(t, verdict.Correct)
		require.NotNil(t, verdict.ErrorPattern)
		assert.Equal(t, uint(1), verdict.ErrorPattern.ID)
		assert.Equal(t, "You divided the denominator by the numerator.", verdict.Feedback)
		require.NotNil(t, verdict.Hint)
		assert.Equal(t, "Divide 1 by 4, not 4 by 1.", *verdict.Hint)
		assert.Equal(t, ActionRetry, verdict.NextAction)
	})

	t.Run("unrecognized wrong answer gets generic feedback", func(t *testing.T) {
		verdict, err := svc.EvaluateCheckpointAnswer(1, "banana", 4, 7)
		require.NoError(t, err)
		assert.False(t, verdict.Correct)
		assert.Nil(t, verdict.ErrorPattern)
		assert.Equal(t, feedbackWrongGeneric, verdict.Feedback)
	})

	t.Run("missing checkpoint blocks any write", func(t *testing.T) {
		before := progress.records[[2]uint{7, 5}].Attempts
		_, err := svc.EvaluateCheckpointAnswer(99, "0.25", 1, 7)
		assert.ErrorIs(t, err, util.ErrCheckpointNotFound)
		assert.Equal(t, before, progress.records[[2]uint{7, 5}].Attempts)
	})

	t.Run("missing student blocks any write", func(t *testing.T) {
		_, err := svc.EvaluateCheckpointAnswer(1, "0.25", 1, 404)
		assert.ErrorIs(t, err, util.ErrUserNotFound)
		_, exists := progress.records[[2]uint{404, 5}]
		assert.False(t, exists)
	})
}

func TestEvaluateCheckpointAnswerConcurrent(t *testing.T) {
	svc, checkpoints, _, _, students, progress := newTestService()

	checkpoints.checkpoints[1] = &model.Checkpoint{
		BaseModel:     withID(1),
		ConceptID:     5,
		Question:      "2 + 2?",
		CorrectAnswer: "4",
		Tolerance:     0.01,
	}
	students.students[7] = &model.User{BaseModel: withID(7), Role: model.Student}

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.EvaluateCheckpointAnswer(1, "4", 1, 7)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	record, ok := progress.records[[2]uint{7, 5}]
	require.True(t, ok)
	assert.Equal(t, n, record.Attempts)
	assert.Len(t, progress.records, 1)
}
