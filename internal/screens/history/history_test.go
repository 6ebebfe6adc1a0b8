package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	hist "github.com/abhisek/timedquiz/internal/history"
	"github.com/abhisek/timedquiz/internal/store"
)

type fakeRepo struct {
	attempts []store.Attempt
	err      error
}

func (f *fakeRepo) Append(_ context.Context, a store.Attempt) (store.Attempt, error) {
	f.attempts = append(f.attempts, a)
	return a, nil
}
func (f *fakeRepo) ListAll(context.Context) ([]store.Attempt, error) { return f.attempts, f.err }
func (f *fakeRepo) Stats(context.Context) (store.Stats, error)       { return store.Stats{}, f.err }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func attempts(n int) []store.Attempt {
	out := make([]store.Attempt, n)
	for i := range out {
		out[i] = store.Attempt{
			Date:           fmt.Sprintf("2026-03-01T10:00:%02d.000Z", i),
			Score:          i % 4,
			TotalQuestions: 3,
		}
	}
	return out
}

func loaded(t *testing.T, repo *fakeRepo, order hist.Order) *HistoryScreen {
	t.Helper()
	s := New(repo, order, 5)
	s.loc = time.UTC
	msg := s.Init()()
	s.Update(msg)
	return s
}

func TestHistoryScreen_Loading(t *testing.T) {
	s := New(&fakeRepo{}, hist.NewestFirst, 5)
	if !strings.Contains(s.View(100, 40), "Loading history...") {
		t.Error("expected loading message before data arrives")
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := loaded(t, &fakeRepo{}, hist.NewestFirst)
	view := s.View(100, 40)
	if !strings.Contains(view, "No attempts recorded yet.") {
		t.Error("expected empty-state message")
	}
	if !strings.Contains(view, "Page 1 of 1") {
		t.Error("expected a single page for an empty history")
	}
}

func TestHistoryScreen_PagesNewestFirst(t *testing.T) {
	s := loaded(t, &fakeRepo{attempts: attempts(12)}, hist.NewestFirst)

	view := s.View(100, 60)
	if !strings.Contains(view, "Page 1 of 3") {
		t.Error("expected page 1 of 3")
	}
	if !strings.Contains(view, "10:00:11") {
		t.Error("expected the newest attempt on page 1")
	}
	if strings.Contains(view, "10:00:00") {
		t.Error("expected the oldest attempt not on page 1")
	}

	s.Update(specialKey(tea.KeyRight))
	s.Update(keyPress('l'))
	if s.pager.Page() != 3 {
		t.Fatalf("page = %d, want 3", s.pager.Page())
	}
	if n := len(s.pager.Items()); n != 2 {
		t.Errorf("items on last page = %d, want 2", n)
	}

	s.Update(specialKey(tea.KeyRight))
	if s.pager.Page() != 3 {
		t.Error("expected next on the last page to be a no-op")
	}

	s.Update(keyPress('h'))
	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyLeft))
	if s.pager.Page() != 1 {
		t.Error("expected prev to stop at page 1")
	}
}

func TestHistoryScreen_OldestFirst(t *testing.T) {
	s := loaded(t, &fakeRepo{attempts: attempts(7)}, hist.OldestFirst)
	first := s.pager.Items()[0]
	if first.Date != "2026-03-01T10:00:00.000Z" {
		t.Errorf("first = %s, want the oldest attempt", first.Date)
	}
}

func TestHistoryScreen_ScoreLine(t *testing.T) {
	s := loaded(t, &fakeRepo{attempts: []store.Attempt{
		{Date: "2026-03-01T10:00:00.000Z", Score: 2, TotalQuestions: 3},
	}}, hist.NewestFirst)

	if !strings.Contains(s.View(100, 40), "Score: 2 / 3") {
		t.Error("expected score line")
	}
}

func TestHistoryScreen_UnavailableShowsEmptyHistory(t *testing.T) {
	s := loaded(t, &fakeRepo{err: store.ErrStoreUnavailable}, hist.NewestFirst)

	view := s.View(100, 40)
	if !strings.Contains(view, "No attempts recorded yet.") {
		t.Error("expected the empty-history notice")
	}
	if !strings.Contains(view, "Page 1 of 1") {
		t.Error("expected page 1 of 1")
	}
	if strings.Contains(view, "unavailable") || strings.Contains(view, "Could not load") {
		t.Error("expected no error message for a missing store")
	}
	if s.pager.Len() != 0 {
		t.Error("expected an empty pager when the store is unavailable")
	}
}

func TestHistoryScreen_OtherLoadError(t *testing.T) {
	s := loaded(t, &fakeRepo{err: errors.New("disk I/O error")}, hist.NewestFirst)
	if !strings.Contains(s.View(100, 40), "Could not load history.") {
		t.Error("expected load error message")
	}
}

func TestHistoryScreen_Reload(t *testing.T) {
	repo := &fakeRepo{}
	s := loaded(t, repo, hist.NewestFirst)
	repo.attempts = attempts(3)

	_, cmd := s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a reload command")
	}
	s.Update(cmd())
	if s.pager.Len() != 3 {
		t.Errorf("len = %d, want 3 after reload", s.pager.Len())
	}
}

func TestHistoryScreen_KeyHints(t *testing.T) {
	s := New(nil, hist.NewestFirst, 5)
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}

func TestHistoryScreen_ReloadKeepsPage(t *testing.T) {
	repo := &fakeRepo{attempts: attempts(12)}
	s := loaded(t, repo, hist.NewestFirst)
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyRight))
	if s.pager.Page() != 3 {
		t.Fatalf("page = %d, want 3", s.pager.Page())
	}

	repo.attempts = attempts(13)
	_, cmd := s.Update(keyPress('r'))
	s.Update(cmd())
	if s.pager.Page() != 3 {
		t.Errorf("page = %d, want 3 after reload", s.pager.Page())
	}

	repo.attempts = attempts(6)
	_, cmd = s.Update(keyPress('r'))
	s.Update(cmd())
	if s.pager.Page() != 2 {
		t.Errorf("page = %d, want 2 after the list shrank", s.pager.Page())
	}
}
