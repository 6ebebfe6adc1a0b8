package quiz

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timedquiz/internal/router"
	"github.com/abhisek/timedquiz/internal/screen"
	sess "github.com/abhisek/timedquiz/internal/session"
	"github.com/abhisek/timedquiz/internal/store"
	"github.com/abhisek/timedquiz/internal/ui/components"
	"github.com/abhisek/timedquiz/internal/ui/layout"
)

// QuizScreen implements screen.Screen for a timed quiz run.
type QuizScreen struct {
	session    *sess.Session
	repo       store.AttemptRepo
	newHistory func() screen.Screen
	keys       keyMap
	interval   time.Duration

	choices components.MultiChoice
	actions components.ButtonRow

	// armed is the timer tag with a tick in flight, or -1.
	armed int

	hint     string
	saving   bool
	saved    *store.Attempt
	saveErr  error
	disposed bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.Disposer = (*QuizScreen)(nil)

// Option configures a QuizScreen.
type Option func(*QuizScreen)

// WithTickInterval sets the wall-clock length of one timer second.
func WithTickInterval(d time.Duration) Option {
	return func(s *QuizScreen) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithHistory sets the factory for the screen opened by "View History".
func WithHistory(newHistory func() screen.Screen) Option {
	return func(s *QuizScreen) { s.newHistory = newHistory }
}

// New creates a QuizScreen over a fresh session. A nil repo behaves like an
// unavailable store: runs complete normally but nothing is saved.
func New(session *sess.Session, repo store.AttemptRepo, opts ...Option) *QuizScreen {
	if repo == nil {
		repo = store.Unavailable()
	}
	s := &QuizScreen{
		session:  session,
		repo:     repo,
		keys:     newKeyMap(),
		interval: time.Second,
		armed:    -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.loadQuestion()
	s.actions = s.completedActions()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.armTick()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.session.Phase() {
	case sess.PhaseFeedback:
		return hints(s.keys.Next)
	case sess.PhaseCompleted:
		return hints(s.keys.Restart, s.keys.History)
	default:
		return hints(s.keys.Up, s.keys.Pick, s.keys.Choose, s.keys.Submit)
	}
}

// Dispose stops the timer. Ticks still in flight are dropped on arrival.
func (s *QuizScreen) Dispose() {
	s.disposed = true
	s.session.Close()
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick(msg)
	case attemptSavedMsg:
		return s.handleSaved(msg)
	case tea.KeyMsg:
		if s.disposed {
			return s, nil
		}
		switch s.session.Phase() {
		case sess.PhaseAnswering:
			return s.handleAnsweringKey(msg)
		case sess.PhaseFeedback:
			return s.handleFeedbackKey(msg)
		case sess.PhaseCompleted:
			return s.handleCompletedKey(msg)
		}
	}
	return s, nil
}

func (s *QuizScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.Tag == s.armed {
		s.armed = -1
	}
	if s.disposed {
		return s, nil
	}

	prev := s.session.Index()
	out, applied := s.session.Tick(msg.Tag)
	if !applied {
		return s, nil
	}

	if out != nil {
		slog.Debug("quiz completed on timeout", "session", out.SessionID, "score", out.Score)
		return s, s.save(out)
	}
	if s.session.Index() != prev {
		slog.Debug("question timed out", "session", s.session.ID(), "index", prev)
		s.loadQuestion()
	}
	return s, s.armTick()
}

func (s *QuizScreen) handleSaved(msg attemptSavedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, store.ErrStoreUnavailable) {
			slog.Warn("attempt not saved: store unavailable", "session", msg.SessionID, "error", msg.Err)
		} else {
			slog.Error("attempt not saved", "session", msg.SessionID, "error", msg.Err)
		}
	} else {
		slog.Info("attempt saved", "session", msg.SessionID, "date", msg.Attempt.Date,
			"score", msg.Attempt.Score, "total", msg.Attempt.TotalQuestions)
	}

	// A save for a run that was restarted since does not describe the
	// run on screen.
	if msg.SessionID != s.session.ID() {
		return s, nil
	}
	s.saving = false
	if msg.Err != nil {
		s.saveErr = msg.Err
		return s, nil
	}
	a := msg.Attempt
	s.saved = &a
	return s, nil
}

func (s *QuizScreen) handleAnsweringKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Submit):
		if err := s.session.Submit(); err != nil {
			s.hint = "Select an answer first."
			return s, nil
		}
		s.hint = ""
		s.revealAnswer()
		return s, nil

	case key.Matches(msg, s.keys.Choose):
		s.selectAnswer(s.choices.Current())
		return s, nil
	}

	var picked bool
	s.choices, picked = s.choices.Update(msg)
	if picked {
		s.selectAnswer(s.choices.Current())
	}
	return s, nil
}

func (s *QuizScreen) handleFeedbackKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !key.Matches(msg, s.keys.Next) {
		return s, nil
	}
	out, err := s.session.Advance()
	if err != nil {
		return s, nil
	}
	if out != nil {
		return s, s.save(out)
	}
	s.loadQuestion()
	return s, s.armTick()
}

func (s *QuizScreen) handleCompletedKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Restart):
		return s, s.restart()
	case key.Matches(msg, s.keys.History):
		return s, s.openHistory()
	}
	var cmd tea.Cmd
	s.actions, cmd = s.actions.Update(msg)
	return s, cmd
}

func (s *QuizScreen) selectAnswer(answer string) {
	if answer == "" {
		return
	}
	if err := s.session.Select(answer); err != nil {
		return
	}
	s.choices.Chosen = answer
	s.hint = ""
}

// loadQuestion rebuilds the choice widget for the current question.
func (s *QuizScreen) loadQuestion() {
	q := s.session.Current()
	s.choices = components.NewMultiChoice(q.Prompt, q.AnswerOptions)
	s.hint = ""
}

func (s *QuizScreen) revealAnswer() {
	s.choices.Reveal = true
	s.choices.Correct = s.session.Current().CorrectAnswer
	s.choices.Chosen = s.session.Selected()
}

func (s *QuizScreen) restart() tea.Cmd {
	if err := s.session.Restart(); err != nil {
		return nil
	}
	slog.Debug("quiz restarted", "session", s.session.ID())
	s.saved = nil
	s.saveErr = nil
	s.saving = false
	s.loadQuestion()
	return s.armTick()
}

func (s *QuizScreen) openHistory() tea.Cmd {
	if s.newHistory == nil {
		return nil
	}
	next := s.newHistory()
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *QuizScreen) completedActions() components.ButtonRow {
	return components.NewButtonRow(
		components.NewButton("Restart", true, func() tea.Cmd { return s.restart() }),
		components.NewButton("View History", false, func() tea.Cmd { return s.openHistory() }),
	)
}

// armTick schedules the next timer second for the running timer, unless
// one is already in flight for the same run.
func (s *QuizScreen) armTick() tea.Cmd {
	if s.disposed || !s.session.TimerRunning() {
		return nil
	}
	tag := s.session.TimerTag()
	if s.armed == tag {
		return nil
	}
	s.armed = tag
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return timerTickMsg{Tag: tag}
	})
}

// save persists a finished run in the background, keyed by its
// completion time.
func (s *QuizScreen) save(out *sess.Outcome) tea.Cmd {
	s.saving = true
	repo := s.repo
	id := out.SessionID
	attempt := store.Attempt{
		Date:           store.FormatDate(out.FinishedAt),
		Score:          out.Score,
		TotalQuestions: out.TotalQuestions,
	}
	return func() tea.Msg {
		saved, err := repo.Append(context.Background(), attempt)
		return attemptSavedMsg{SessionID: id, Attempt: saved, Err: err}
	}
}
