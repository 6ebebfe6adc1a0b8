package home

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timedquiz/internal/router"
	"github.com/abhisek/timedquiz/internal/screen"
	"github.com/abhisek/timedquiz/internal/store"
	"github.com/abhisek/timedquiz/internal/ui/components"
	"github.com/abhisek/timedquiz/internal/ui/layout"
)

type statsLoadedMsg struct {
	Stats store.Stats
	Err   error
}

// Factories builds the screens reachable from the menu.
type Factories struct {
	// Quiz starts a fresh run.
	Quiz func() (screen.Screen, error)
	// History opens the attempt history.
	History func() screen.Screen
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu      components.Menu
	repo      store.AttemptRepo
	bankTitle string

	stats  store.Stats
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. repo may be nil when the store could not
// be opened.
func New(bankTitle string, repo store.AttemptRepo, f Factories) *HomeScreen {
	if repo == nil {
		repo = store.Unavailable()
	}
	h := &HomeScreen{
		repo:      repo,
		bankTitle: bankTitle,
	}

	h.menu = components.NewMenu(
		components.MenuItem{Label: "START QUIZ", Action: func() tea.Cmd {
			if f.Quiz == nil {
				return nil
			}
			next, err := f.Quiz()
			if err != nil {
				slog.Error("start quiz", "error", err)
				h.errMsg = err.Error()
				return nil
			}
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		components.MenuItem{Label: "HISTORY", Action: func() tea.Cmd {
			if f.History == nil {
				return nil
			}
			next := f.History()
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	repo := h.repo
	return func() tea.Msg {
		st, err := repo.Stats(context.Background())
		return statsLoadedMsg{Stats: st, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		// A missing store counts as no attempts.
		h.stats = msg.Stats
		if msg.Err != nil && !errors.Is(msg.Err, store.ErrStoreUnavailable) {
			slog.Warn("load stats", "error", msg.Err)
		}
		return h, nil
	case router.ScreenResumedMsg:
		// Back from a quiz or the history: the numbers may have changed.
		return h, h.loadStats()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and frame gaps.
	termHeight := height + layout.HeaderHeight + layout.FooterHeight + 2
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(h.bankTitle, cw, compact))
	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	if h.errMsg != "" {
		sections = append(sections, renderError(h.errMsg, cw))
	}
	sections = append(sections, h.menu.View(cw))

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
