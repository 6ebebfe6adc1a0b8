package home

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timedquiz/internal/router"
	"github.com/abhisek/timedquiz/internal/screen"
	"github.com/abhisek/timedquiz/internal/store"
)

type fakeRepo struct {
	stats store.Stats
	err   error
}

func (f *fakeRepo) Append(_ context.Context, a store.Attempt) (store.Attempt, error) { return a, nil }
func (f *fakeRepo) ListAll(context.Context) ([]store.Attempt, error)                 { return nil, f.err }
func (f *fakeRepo) Stats(context.Context) (store.Stats, error)                       { return f.stats, f.err }

type stubScreen struct{ title string }

func (s stubScreen) Init() tea.Cmd                           { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s stubScreen) View(int, int) string                    { return s.title }
func (s stubScreen) Title() string                           { return s.title }

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func factories() Factories {
	return Factories{
		Quiz:    func() (screen.Screen, error) { return stubScreen{title: "Quiz"}, nil },
		History: func() screen.Screen { return stubScreen{title: "History"} },
	}
}

func TestHomeScreen_Title(t *testing.T) {
	h := New("General Knowledge", &fakeRepo{}, factories())
	if h.Title() != "Home" {
		t.Errorf("Title = %q, want %q", h.Title(), "Home")
	}
}

func TestHomeScreen_StartQuiz(t *testing.T) {
	h := New("General Knowledge", &fakeRepo{}, factories())

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from START QUIZ")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if msg.Screen.Title() != "Quiz" {
		t.Errorf("pushed %q, want Quiz", msg.Screen.Title())
	}
}

func TestHomeScreen_History(t *testing.T) {
	h := New("General Knowledge", &fakeRepo{}, factories())

	h.Update(specialKey(tea.KeyDown))
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from HISTORY")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok || msg.Screen.Title() != "History" {
		t.Error("expected the history screen to be pushed")
	}
}

func TestHomeScreen_QuizFactoryError(t *testing.T) {
	f := factories()
	f.Quiz = func() (screen.Screen, error) { return nil, errors.New("no questions available") }
	h := New("", &fakeRepo{}, f)

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no navigation when the quiz cannot start")
	}
	if !strings.Contains(h.View(100, 40), "no questions available") {
		t.Error("expected the error in the view")
	}
}

func TestHomeScreen_Stats(t *testing.T) {
	h := New("General Knowledge", &fakeRepo{stats: store.Stats{Count: 4, BestScore: 9, BestTotal: 10, AveragePercent: 0.75}}, factories())
	h.Update(h.Init()())

	view := h.View(120, 40)
	for _, want := range []string{"4 PLAYED", "BEST 9/10", "AVG 75%", "General Knowledge"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestHomeScreen_StatsUnavailableReadsAsEmpty(t *testing.T) {
	h := New("", nil, factories())
	h.Update(h.Init()())

	view := h.View(120, 40)
	if !strings.Contains(view, "NO ATTEMPTS YET") {
		t.Error("expected the no-attempts notice for a missing store")
	}
	if strings.Contains(view, "UNAVAILABLE") {
		t.Error("expected no unavailable notice")
	}
}

func TestHomeScreen_ResumeReloadsStats(t *testing.T) {
	h := New("", &fakeRepo{}, factories())
	_, cmd := h.Update(router.ScreenResumedMsg{})
	if cmd == nil {
		t.Error("expected stats reload on resume")
	}
}
