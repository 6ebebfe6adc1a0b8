package session

import (
	"errors"
	"time"
)

// DefaultSecondsPerQuestion is the time allowance for each question.
const DefaultSecondsPerQuestion = 30

var (
	// ErrInvalidTransition is returned when an operation is not allowed in
	// the current phase. The session is left unchanged.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrNoQuestions is returned when a session is created without questions.
	ErrNoQuestions = errors.New("no questions")
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseAnswering Phase = iota // Waiting for a selection and submit
	PhaseFeedback               // Showing whether the answer was correct
	PhaseCompleted              // All questions done (terminal until restart)
)

func (p Phase) String() string {
	switch p {
	case PhaseAnswering:
		return "answering"
	case PhaseFeedback:
		return "feedback"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of a single question.
type Verdict int

const (
	VerdictCorrect Verdict = iota
	VerdictIncorrect
	VerdictTimedOut
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	case VerdictTimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// Result records how one question was answered.
type Result struct {
	Index   int
	Answer  string // selection at submit or timeout, may be empty
	Verdict Verdict
}

// Outcome is produced exactly once when a session completes.
type Outcome struct {
	SessionID      string
	Score          int
	TotalQuestions int
	FinishedAt     time.Time
}

// State is a comparable snapshot of the session fields.
type State struct {
	Phase           Phase
	Index           int
	Selected        string
	Score           int
	TimeRemaining   int
	FeedbackVisible bool
	Completed       bool
}
