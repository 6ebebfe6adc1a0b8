package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/timedquiz/internal/quiz"
)

func threeQuestions() []quiz.Question {
	return []quiz.Question{
		{Prompt: "Capital of France?", AnswerOptions: []string{"Paris", "Rome", "Oslo"}, CorrectAnswer: "Paris"},
		{Prompt: "2 + 2?", AnswerOptions: []string{"3", "4", "5"}, CorrectAnswer: "4"},
		{Prompt: "Red planet?", AnswerOptions: []string{"Mars", "Venus"}, CorrectAnswer: "Mars"},
	}
}

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	ids := 0
	opts = append([]Option{
		WithIDFunc(func() string {
			ids++
			return "session-" + string(rune('0'+ids))
		}),
		WithClock(func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }),
	}, opts...)
	s, err := New(threeQuestions(), opts...)
	require.NoError(t, err)
	return s
}

// expire ticks the current timer down to zero.
func expire(t *testing.T, s *Session) *Outcome {
	t.Helper()
	var out *Outcome
	for i := 0; i < s.SecondsPerQuestion(); i++ {
		var applied bool
		out, applied = s.Tick(s.TimerTag())
		require.True(t, applied, "tick %d not applied", i)
	}
	return out
}

func answer(t *testing.T, s *Session, choice string) *Outcome {
	t.Helper()
	require.NoError(t, s.Select(choice))
	require.NoError(t, s.Submit())
	out, err := s.Advance()
	require.NoError(t, err)
	return out
}

func TestNew_InitialState(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, State{
		Phase:         PhaseAnswering,
		TimeRemaining: DefaultSecondsPerQuestion,
	}, s.State())
	assert.True(t, s.TimerRunning())
	assert.Equal(t, 3, s.Total())
}

func TestNew_NoQuestions(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestSelect_LastCallWins(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Select("Rome"))
	require.NoError(t, s.Select("Paris"))
	assert.Equal(t, "Paris", s.Selected())
	assert.Equal(t, PhaseAnswering, s.Phase())
}

func TestSubmit_EmptySelectionRejected(t *testing.T) {
	s := newTestSession(t)
	before := s.State()

	err := s.Submit()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, before, s.State())
	assert.Equal(t, PhaseAnswering, s.Phase())
}

func TestSubmit_CorrectAndIncorrect(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.Select("Paris"))
	require.NoError(t, s.Submit())
	assert.Equal(t, PhaseFeedback, s.Phase())
	assert.True(t, s.FeedbackVisible())
	assert.True(t, s.LastCorrect())
	assert.Equal(t, 1, s.Score())
	assert.False(t, s.TimerRunning(), "timer stops during feedback")

	_, err := s.Advance()
	require.NoError(t, err)
	assert.Equal(t, PhaseAnswering, s.Phase())
	assert.Equal(t, 1, s.Index())
	assert.Empty(t, s.Selected())
	assert.Equal(t, DefaultSecondsPerQuestion, s.TimeRemaining())

	require.NoError(t, s.Select("5"))
	require.NoError(t, s.Submit())
	assert.False(t, s.LastCorrect())
	assert.Equal(t, 1, s.Score())
}

func TestSubmit_NoNormalization(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Select("paris"))
	require.NoError(t, s.Submit())
	assert.Equal(t, 0, s.Score())

	_, err := s.Advance()
	require.NoError(t, err)
	require.NoError(t, s.Select("not an option"))
	require.NoError(t, s.Submit(), "unknown option is still submitted")
	assert.Equal(t, PhaseFeedback, s.Phase())
}

func TestInvalidTransitions(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Advance()
	assert.ErrorIs(t, err, ErrInvalidTransition, "advance while answering")
	assert.ErrorIs(t, s.Restart(), ErrInvalidTransition, "restart while answering")

	require.NoError(t, s.Select("Paris"))
	require.NoError(t, s.Submit())
	assert.ErrorIs(t, s.Select("Rome"), ErrInvalidTransition, "select during feedback")
	assert.ErrorIs(t, s.Submit(), ErrInvalidTransition, "submit during feedback")
	assert.Equal(t, "Paris", s.Selected())
}

func TestTick_DecrementsOnlyWhileAnswering(t *testing.T) {
	s := newTestSession(t)
	tag := s.TimerTag()

	_, applied := s.Tick(tag)
	require.True(t, applied)
	assert.Equal(t, DefaultSecondsPerQuestion-1, s.TimeRemaining())

	require.NoError(t, s.Select("Paris"))
	require.NoError(t, s.Submit())
	_, applied = s.Tick(s.TimerTag())
	assert.False(t, applied, "no ticks in feedback")
	assert.Equal(t, DefaultSecondsPerQuestion-1, s.TimeRemaining())
}

func TestTick_StaleTagIgnored(t *testing.T) {
	s := newTestSession(t)
	stale := s.TimerTag()

	answer(t, s, "Paris")
	before := s.State()

	_, applied := s.Tick(stale)
	assert.False(t, applied)
	assert.Equal(t, before, s.State())
}

func TestTick_CloseInvalidatesTimer(t *testing.T) {
	s := newTestSession(t)
	tag := s.TimerTag()
	s.Close()

	_, applied := s.Tick(tag)
	assert.False(t, applied)
	assert.False(t, s.TimerRunning())
	assert.Equal(t, DefaultSecondsPerQuestion, s.TimeRemaining())
}

func TestTimeout_SameAsAdvanceWithEmptySelection(t *testing.T) {
	timedOut := newTestSession(t)
	expire(t, timedOut)

	explicit := newTestSession(t)
	require.NoError(t, explicit.Select("Rome"))
	require.NoError(t, explicit.Submit())
	_, err := explicit.Advance()
	require.NoError(t, err)

	assert.Equal(t, explicit.State(), timedOut.State())
	assert.Equal(t, VerdictTimedOut, timedOut.Results()[0].Verdict)
}

func TestTimeout_PendingSelectionNotScored(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Select("Paris"))
	expire(t, s)

	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.Index())
	assert.Equal(t, Result{Index: 0, Answer: "Paris", Verdict: VerdictTimedOut}, s.Results()[0])
}

func TestTimer_ResetsPerQuestion(t *testing.T) {
	s := newTestSession(t, WithSecondsPerQuestion(5))
	for i := 0; i < 3; i++ {
		_, applied := s.Tick(s.TimerTag())
		require.True(t, applied)
	}
	assert.Equal(t, 2, s.TimeRemaining())

	answer(t, s, "Paris")
	assert.Equal(t, 5, s.TimeRemaining(), "no carry-over between questions")
}

func TestScenario_CorrectIncorrectTimeout(t *testing.T) {
	s := newTestSession(t)

	assert.Nil(t, answer(t, s, "Paris"))
	assert.Nil(t, answer(t, s, "3"))
	out := expire(t, s)

	require.NotNil(t, out)
	assert.Equal(t, 1, out.Score)
	assert.Equal(t, 3, out.TotalQuestions)
	assert.Equal(t, s.ID(), out.SessionID)
	assert.Equal(t, PhaseCompleted, s.Phase())
	assert.True(t, s.Completed())
	assert.False(t, s.TimerRunning())

	verdicts := []Verdict{}
	for _, r := range s.Results() {
		verdicts = append(verdicts, r.Verdict)
	}
	assert.Equal(t, []Verdict{VerdictCorrect, VerdictIncorrect, VerdictTimedOut}, verdicts)
}

func TestCompletion_EmitsOutcomeOnce(t *testing.T) {
	s := newTestSession(t)
	answer(t, s, "Paris")
	answer(t, s, "4")
	out := answer(t, s, "Mars")
	require.NotNil(t, out)
	assert.Equal(t, 3, out.Score)

	_, err := s.Advance()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	o, applied := s.Tick(s.TimerTag())
	assert.Nil(t, o)
	assert.False(t, applied)
}

func TestScoreBounds(t *testing.T) {
	choices := [][]string{
		{"Paris", "4", "Mars"},
		{"Rome", "4", "Venus"},
		{"Oslo", "3", "Venus"},
	}
	for _, picks := range choices {
		s := newTestSession(t)
		want := 0
		for i, c := range picks {
			if s.Current().IsCorrect(c) {
				want++
			}
			answer(t, s, c)
			assert.LessOrEqual(t, s.Score(), i+1)
		}
		assert.Equal(t, want, s.Score())
		assert.GreaterOrEqual(t, s.Score(), 0)
		assert.LessOrEqual(t, s.Score(), s.Total())
	}
}

func TestRestart_ReturnsToInitialState(t *testing.T) {
	s := newTestSession(t)
	initial := s.State()
	firstID := s.ID()

	answer(t, s, "Paris")
	answer(t, s, "4")
	require.NoError(t, s.Select("Venus"))
	require.NoError(t, s.Submit())
	_, err := s.Advance()
	require.NoError(t, err)
	require.True(t, s.Completed())

	require.NoError(t, s.Restart())
	assert.Equal(t, initial, s.State())
	assert.Empty(t, s.Results())
	assert.True(t, s.TimerRunning())
	assert.NotEqual(t, firstID, s.ID())
}

func TestRestart_AfterPartialTimer(t *testing.T) {
	s := newTestSession(t, WithSecondsPerQuestion(4))
	initial := s.State()

	answer(t, s, "Paris")
	_, _ = s.Tick(s.TimerTag())
	answer(t, s, "4")
	expire(t, s)
	require.NoError(t, s.Restart())

	assert.Equal(t, initial, s.State())
}
