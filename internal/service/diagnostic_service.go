package service

import (
	"errors"
	"fmt"
	"math"
	"sikshyamap_backend/internal/model"
	"sikshyamap_backend/internal/util"
	"sikshyamap_backend/pkg/monitoring"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Stores the diagnostic engine reads from. Implemented by the gorm
// repositories; tests substitute in-memory fakes.
type CheckpointStore interface {
	FindByID(id uint) (*model.Checkpoint, error)
}

type ErrorPatternStore interface {
	ListByCheckpoint(checkpointID uint) ([]model.ErrorPattern, error)
}

type StepStore interface {
	FindStepByID(id uint) (*model.Step, error)
	FindOptionByID(id uint) (*model.StepOption, error)
}

type StudentStore interface {
	FindByID(id uint) (*model.User, error)
}

type ProgressStore interface {
	RecordAttempt(studentID, conceptID uint, now time.Time) (*model.StudentProgress, error)
}

type NextAction string

const (
	ActionContinue NextAction = "continue"
	ActionRetry    NextAction = "retry"
)

// Verdict is the structured result of evaluating one submission.
type Verdict struct {
	Correct     bool       `json:"correct"`
	Feedback    string     `json:"feedback"`
	Explanation *string    `json:"explanation"`
	Hint        *string    `json:"hint"`
	NextAction  NextAction `json:"nextAction"`
}

// ErrorPatternFeedback is the targeted-misconception extension of a
// checkpoint verdict.
type ErrorPatternFeedback struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	Remediation string `json:"remediation,omitempty"`
}

type CheckpointVerdict struct {
	Verdict
	ErrorPattern *ErrorPatternFeedback  `json:"errorPattern,omitempty"`
	Progress     *model.StudentProgress `json:"progress,omitempty"`
}

const (
	feedbackInvalidOption = "Invalid option selected. Please choose one of the options provided."
	feedbackCorrect       = "Correct! Great work."
	feedbackFirstRetry    = "Not quite right. Review the step description and try again."
	feedbackWrongGeneric  = "Not quite right. Give it another try."

	// How much of the correct answer the escalated hint discloses.
	answerHintLimit = 80
)

// DiagnosticService evaluates step and checkpoint submissions and records
// checkpoint attempts against StudentProgress. It keeps no state between
// calls; the attempt number is supplied by the caller.
type DiagnosticService struct {
	Checkpoints CheckpointStore
	Patterns    ErrorPatternStore
	Steps       StepStore
	Students    StudentStore
	Progress    ProgressStore
}

func NewDiagnosticService(
	checkpoints CheckpointStore,
	patterns ErrorPatternStore,
	steps StepStore,
	students StudentStore,
	progress ProgressStore,
) *DiagnosticService {
	return &DiagnosticService{
		Checkpoints: checkpoints,
		Patterns:    patterns,
		Steps:       steps,
		Students:    students,
		Progress:    progress,
	}
}

// MatchErrorPattern finds the highest-confidence ErrorPattern whose trigger
// value matches the student's answer. No match returns (nil, nil): an
// unrecognized wrong answer is a normal outcome, not a failure.
func (s *DiagnosticService) MatchErrorPattern(checkpointID uint, studentAnswer string) (*model.ErrorPattern, error) {
	patterns, err := s.Patterns.ListByCheckpoint(checkpointID)
	if err != nil {
		return nil, err
	}

	var best *model.ErrorPattern
	for i := range patterns {
		p := &patterns[i]
		if !patternMatches(p, studentAnswer) {
			continue
		}
		// Patterns arrive ordered by id, so a strict > keeps the lowest id
		// on a confidence tie.
		if best == nil || p.Confidence > best.Confidence {
			best = p
		}
	}
	return best, nil
}

// patternMatches compares numerically when both sides parse; when either
// side does not, it falls back to comparing the raw values as strings. The
// fallback is intentionally asymmetric: a numeric answer against a textual
// trigger still goes through the string path.
func patternMatches(p *model.ErrorPattern, studentAnswer string) bool {
	sNum, sOK := ParseNumeric(studentAnswer)
	tNum, tOK := ParseNumeric(p.TriggerValue)
	if sOK && tOK {
		return math.Abs(sNum-tNum) <= p.TriggerTolerance
	}
	return strings.EqualFold(strings.TrimSpace(studentAnswer), strings.TrimSpace(p.TriggerValue))
}

// EvaluateStepSubmission runs the per-step state machine for one submission.
// A missing option or an option belonging to another step is an
// invalid-option verdict, distinct from a wrong answer. Wrong answers get
// the step description as a hint on the first attempt and the correct
// answer text from the second attempt on.
func (s *DiagnosticService) EvaluateStepSubmission(stepID, optionID uint, attemptNumber int) (*Verdict, error) {
	step, err := s.Steps.FindStepByID(stepID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStepNotFound
	}
	if err != nil {
		return nil, err
	}

	option, err := s.Steps.FindOptionByID(optionID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Option must exist and belong to this step; anything else points at a
	// stale or tampered client, not a learning signal.
	if errors.Is(err, gorm.ErrRecordNotFound) || option.StepID != step.ID {
		return &Verdict{
			Correct:    false,
			Feedback:   feedbackInvalidOption,
			NextAction: ActionRetry,
		}, nil
	}

	if option.IsCorrect {
		monitoring.RecordEvaluation("step", true)
		return &Verdict{
			Correct:     true,
			Feedback:    feedbackCorrect,
			Explanation: optionalText(step.Explanation),
			NextAction:  ActionContinue,
		}, nil
	}

	monitoring.RecordEvaluation("step", false)

	if attemptNumber <= 1 {
		return &Verdict{
			Correct:    false,
			Feedback:   feedbackFirstRetry,
			Hint:       optionalText(step.StepDescription),
			NextAction: ActionRetry,
		}, nil
	}

	feedback := fmt.Sprintf("Still incorrect. Hint: look for the option that matches -- %s...",
		truncateAnswer(step.CorrectAnswer))
	return &Verdict{
		Correct:    false,
		Feedback:   feedback,
		Hint:       optionalText(step.CorrectAnswer),
		NextAction: ActionRetry,
	}, nil
}

// EvaluateCheckpointAnswer grades a checkpoint submission and records the
// attempt against the student's progress for the checkpoint's concept. Both
// the checkpoint and the student must resolve before anything is written.
func (s *DiagnosticService) EvaluateCheckpointAnswer(checkpointID uint, studentAnswer string, attemptNumber int, studentID uint) (*CheckpointVerdict, error) {
	checkpoint, err := s.Checkpoints.FindByID(checkpointID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCheckpointNotFound
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.Students.FindByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	isCorrect := AnswersMatch(studentAnswer, checkpoint.CorrectAnswer, checkpoint.Tolerance)
	monitoring.RecordEvaluation("checkpoint", isCorrect)

	verdict := &CheckpointVerdict{
		Verdict: Verdict{
			Correct:    isCorrect,
			Feedback:   feedbackCorrect,
			NextAction: ActionContinue,
		},
	}

	if !isCorrect {
		verdict.Feedback = feedbackWrongGeneric
		verdict.NextAction = ActionRetry

		pattern, err := s.MatchErrorPattern(checkpointID, studentAnswer)
		if err != nil {
			return nil, err
		}
		if pattern != nil {
			if pattern.Description != "" {
				verdict.Feedback = pattern.Description
			}
			verdict.Hint = optionalText(pattern.Remediation)
			verdict.ErrorPattern = &ErrorPatternFeedback{
				ID:          pattern.ID,
				Description: pattern.Description,
				Remediation: pattern.Remediation,
			}
		}
	}

	progress, err := s.Progress.RecordAttempt(studentID, checkpoint.ConceptID, time.Now())
	if err != nil {
		return nil, err
	}
	verdict.Progress = progress

	return verdict, nil
}

func truncateAnswer(answer string) string {
	if len(answer) > answerHintLimit {
		return answer[:answerHintLimit]
	}
	return answer
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
