package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	hist "github.com/abhisek/timedquiz/internal/history"
	"github.com/abhisek/timedquiz/internal/screen"
	"github.com/abhisek/timedquiz/internal/store"
	"github.com/abhisek/timedquiz/internal/ui/components"
	"github.com/abhisek/timedquiz/internal/ui/layout"
	"github.com/abhisek/timedquiz/internal/ui/theme"
)

type attemptsLoadedMsg struct {
	Attempts []store.Attempt
	Err      error
}

type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Reload key.Binding
}

// HistoryScreen displays stored attempts one page at a time.
type HistoryScreen struct {
	repo     store.AttemptRepo
	order    hist.Order
	pageSize int
	loc      *time.Location
	keys     keyMap

	pager  *hist.Pager
	loaded bool
	err    error
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen. A nil repo is treated as an unavailable
// store.
func New(repo store.AttemptRepo, order hist.Order, pageSize int) *HistoryScreen {
	if repo == nil {
		repo = store.Unavailable()
	}
	return &HistoryScreen{
		repo:     repo,
		order:    order,
		pageSize: pageSize,
		loc:      time.Local,
		keys: keyMap{
			Prev:   key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←", "Prev")),
			Next:   key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→", "Next")),
			Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("R", "Reload")),
		},
		pager: hist.NewPager(nil, pageSize),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		attempts, err := repo.ListAll(context.Background())
		return attemptsLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	out := make([]layout.KeyHint, 0, 4)
	for _, b := range []key.Binding{s.keys.Prev, s.keys.Next, s.keys.Reload} {
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(out, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptsLoadedMsg:
		s.loaded = true
		s.err = msg.Err
		if msg.Err != nil {
			slog.Warn("history unavailable", "error", msg.Err)
			s.pager = hist.NewPager(nil, s.pageSize)
			return s, nil
		}
		page := s.pager.Page()
		s.pager = hist.NewPager(hist.Sort(msg.Attempts, s.order), s.pageSize)
		s.pager.SetPage(page)
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Prev):
			s.pager.Prev()
		case key.Matches(msg, s.keys.Next):
			s.pager.Next()
		case key.Matches(msg, s.keys.Reload):
			return s, s.Init()
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(center.Render(theme.Title.Render("Quiz History")))
	b.WriteString("\n\n")

	switch {
	case !s.loaded:
		b.WriteString(center.Render(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading history...")))
	case s.err != nil && !errors.Is(s.err, store.ErrStoreUnavailable):
		b.WriteString(center.Render(lipgloss.NewStyle().Foreground(theme.Warning).Render("Could not load history.")))
		b.WriteString("\n\n")
		b.WriteString(center.Render(s.renderPageLine()))
	case s.pager.Len() == 0:
		// A missing store reads as an empty history.
		b.WriteString(center.Render(theme.Hint.Render("No attempts recorded yet.")))
		b.WriteString("\n\n")
		b.WriteString(center.Render(s.renderPageLine()))
	default:
		for _, a := range s.pager.Items() {
			b.WriteString(components.ArcadeCard(s.renderAttempt(a), cw))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(center.Render(s.renderPageLine()))
	}

	return components.CabinetFrame(b.String(), width, height)
}

func (s *HistoryScreen) renderAttempt(a store.Attempt) string {
	date := a.Date
	if t, err := store.ParseDate(a.Date); err == nil {
		date = t.In(s.loc).Format("Jan 02, 2006 15:04:05")
	}
	style := theme.Incorrect
	if a.Percent() >= 0.5 {
		style = theme.Correct
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("Date: "+date) + "\n" +
		style.Render(fmt.Sprintf("Score: %d / %d", a.Score, a.TotalQuestions)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  (%.0f%%)", a.Percent()*100))
}

func (s *HistoryScreen) renderPageLine() string {
	prev := lipgloss.NewStyle().Foreground(theme.Border).Render("◀ Prev")
	if s.pager.HasPrev() {
		prev = lipgloss.NewStyle().Foreground(theme.Text).Render("◀ Prev")
	}
	next := lipgloss.NewStyle().Foreground(theme.Border).Render("Next ▶")
	if s.pager.HasNext() {
		next = lipgloss.NewStyle().Foreground(theme.Text).Render("Next ▶")
	}
	page := lipgloss.NewStyle().Foreground(theme.Secondary).Render(
		fmt.Sprintf("Page %d of %d", s.pager.Page(), s.pager.TotalPages()))
	return prev + "   " + page + "   " + next + "\n" + s.pager.Dots()
}
