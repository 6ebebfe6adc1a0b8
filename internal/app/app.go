package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	hist "github.com/abhisek/timedquiz/internal/history"
	"github.com/abhisek/timedquiz/internal/quiz"
	"github.com/abhisek/timedquiz/internal/router"
	"github.com/abhisek/timedquiz/internal/screen"
	"github.com/abhisek/timedquiz/internal/screens/history"
	"github.com/abhisek/timedquiz/internal/screens/home"
	quizscreen "github.com/abhisek/timedquiz/internal/screens/quiz"
	"github.com/abhisek/timedquiz/internal/session"
	"github.com/abhisek/timedquiz/internal/store"
	"github.com/abhisek/timedquiz/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Bank               *quiz.Bank
	Repo               store.AttemptRepo // nil when the store is unavailable
	SecondsPerQuestion int
	PageSize           int
	HistoryOrder       hist.Order

	// StartIn picks the first screen.
	StartIn StartScreen
}

// StartScreen selects the screen the app opens on.
type StartScreen int

const (
	StartHome StartScreen = iota
	StartQuiz
	StartHistory
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	initCmds []tea.Cmd
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen at the bottom of
// the stack.
func newAppModel(opts Options) (AppModel, error) {
	newHistory := func() screen.Screen {
		return history.New(opts.Repo, opts.HistoryOrder, opts.PageSize)
	}
	newQuiz := func() (screen.Screen, error) {
		s, err := session.New(opts.Bank.Questions, session.WithSecondsPerQuestion(opts.SecondsPerQuestion))
		if err != nil {
			return nil, fmt.Errorf("start quiz: %w", err)
		}
		return quizscreen.New(s, opts.Repo, quizscreen.WithHistory(newHistory)), nil
	}

	homeScreen := home.New(opts.Bank.Title, opts.Repo, home.Factories{
		Quiz:    newQuiz,
		History: newHistory,
	})
	m := AppModel{
		router:   router.New(homeScreen),
		initCmds: []tea.Cmd{homeScreen.Init()},
	}

	switch opts.StartIn {
	case StartQuiz:
		q, err := newQuiz()
		if err != nil {
			return AppModel{}, err
		}
		m.initCmds = append(m.initCmds, m.router.Push(q))
	case StartHistory:
		m.initCmds = append(m.initCmds, m.router.Push(newHistory()))
	}
	return m, nil
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.initCmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.DisposeAll()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(kp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	m.router.DisposeAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
