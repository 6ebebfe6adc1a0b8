package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/timedquiz/internal/quiz"
)

// Session drives one quiz run: question progression, the per-question
// timer, scoring and completion. It is not safe for concurrent use; the
// owning screen serializes all calls on the UI loop.
type Session struct {
	questions []quiz.Question
	now       func() time.Time
	newID     func() string

	id          string
	index       int
	selected    string
	score       int
	feedback    bool
	completed   bool
	lastCorrect bool
	results     []Result
	timer       Timer
}

// Option configures a Session.
type Option func(*Session)

// WithSecondsPerQuestion overrides the per-question allowance.
func WithSecondsPerQuestion(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.timer = NewTimer(n)
		}
	}
}

// WithClock overrides the clock used for completion timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDFunc overrides session ID generation.
func WithIDFunc(f func() string) Option {
	return func(s *Session) { s.newID = f }
}

// New creates a session at question 0 with the timer running.
func New(questions []quiz.Question, opts ...Option) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	s := &Session{
		questions: questions,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
		timer:     NewTimer(DefaultSecondsPerQuestion),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s, nil
}

// reset returns every field to its initial value and starts the timer.
func (s *Session) reset() {
	s.id = s.newID()
	s.index = 0
	s.selected = ""
	s.score = 0
	s.feedback = false
	s.completed = false
	s.lastCorrect = false
	s.results = make([]Result, 0, len(s.questions))
	s.timer.Start()
}

// Select sets the pending answer. Repeated calls overwrite it.
func (s *Session) Select(choice string) error {
	if s.Phase() != PhaseAnswering {
		return ErrInvalidTransition
	}
	s.selected = choice
	return nil
}

// Submit scores the pending answer and moves to feedback. It is rejected
// when nothing is selected.
func (s *Session) Submit() error {
	if s.Phase() != PhaseAnswering || s.selected == "" {
		return ErrInvalidTransition
	}
	s.timer.Stop()

	correct := s.questions[s.index].IsCorrect(s.selected)
	verdict := VerdictIncorrect
	if correct {
		s.score++
		verdict = VerdictCorrect
	}
	s.lastCorrect = correct
	s.results = append(s.results, Result{Index: s.index, Answer: s.selected, Verdict: verdict})
	s.feedback = true
	return nil
}

// Advance leaves feedback for the next question, or completes the session
// after the last one. The returned Outcome is non-nil only on completion.
func (s *Session) Advance() (*Outcome, error) {
	if s.Phase() != PhaseFeedback {
		return nil, ErrInvalidTransition
	}
	return s.next(), nil
}

// Tick applies one timer second if tag is the current timer tag. On expiry
// the question counts as timed out (no point, even with an unsubmitted
// selection) and the session advances. applied is false for stale ticks.
func (s *Session) Tick(tag int) (out *Outcome, applied bool) {
	if s.Phase() != PhaseAnswering {
		return nil, false
	}
	applied, expired := s.timer.Tick(tag)
	if !expired {
		return nil, applied
	}

	s.lastCorrect = false
	s.results = append(s.results, Result{Index: s.index, Answer: s.selected, Verdict: VerdictTimedOut})
	return s.next(), true
}

// next moves past the current question.
func (s *Session) next() *Outcome {
	if s.index < len(s.questions)-1 {
		s.index++
		s.selected = ""
		s.feedback = false
		s.timer.Start()
		return nil
	}

	s.timer.Stop()
	s.feedback = false
	s.completed = true
	return &Outcome{
		SessionID:      s.id,
		Score:          s.score,
		TotalQuestions: len(s.questions),
		FinishedAt:     s.now().UTC(),
	}
}

// Restart begins a fresh run from question 0. Only valid once completed.
func (s *Session) Restart() error {
	if !s.completed {
		return ErrInvalidTransition
	}
	s.reset()
	return nil
}

// Close stops the timer. Ticks armed before Close are ignored.
func (s *Session) Close() {
	s.timer.Stop()
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	switch {
	case s.completed:
		return PhaseCompleted
	case s.feedback:
		return PhaseFeedback
	default:
		return PhaseAnswering
	}
}

// State returns a snapshot of the session fields.
func (s *Session) State() State {
	return State{
		Phase:           s.Phase(),
		Index:           s.index,
		Selected:        s.selected,
		Score:           s.score,
		TimeRemaining:   s.timer.Remaining(),
		FeedbackVisible: s.feedback,
		Completed:       s.completed,
	}
}

func (s *Session) ID() string                   { return s.id }
func (s *Session) Index() int                   { return s.index }
func (s *Session) Total() int                   { return len(s.questions) }
func (s *Session) Current() quiz.Question       { return s.questions[s.index] }
func (s *Session) Selected() string             { return s.selected }
func (s *Session) Score() int                   { return s.score }
func (s *Session) FeedbackVisible() bool        { return s.feedback }
func (s *Session) Completed() bool              { return s.completed }
func (s *Session) LastCorrect() bool            { return s.lastCorrect }
func (s *Session) TimeRemaining() int           { return s.timer.Remaining() }
func (s *Session) SecondsPerQuestion() int      { return s.timer.Allowance() }
func (s *Session) TimerFraction() float64       { return s.timer.Fraction() }
func (s *Session) TimerTag() int                { return s.timer.Tag() }
func (s *Session) TimerRunning() bool           { return s.timer.Running() }
func (s *Session) Question(i int) quiz.Question { return s.questions[i] }

// Results returns a copy of the per-question results so far.
func (s *Session) Results() []Result {
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}
