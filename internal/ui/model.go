package ui

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harun/logtail/pkg/tailer"
)

// The tail session runs outside the Bubble Tea loop, so the runtime forwards
// its callbacks into the program as messages.
type (
	// BatchMsg replaces the viewer content with a fresh batch of lines.
	BatchMsg struct{ Lines []string }

	// StateMsg reports a session state change.
	StateMsg struct{ State tailer.State }

	// ReadErrorMsg reports a failed read.
	ReadErrorMsg struct{ Err error }

	// DecodeErrorMsg reports unreadable file content.
	DecodeErrorMsg struct{ Message string }
)

// Options configures the viewer.
type Options struct {
	Path      string
	Follow    bool
	StatusBar bool

	// ViewHeight receives the current viewport height so reads can be
	// sized to the visible area.
	ViewHeight *atomic.Int64
}

// Model is the root viewer state for Bubble Tea.
type Model struct {
	path       string
	statusBar  bool
	viewHeight *atomic.Int64

	keys   keyMap
	styles Styles

	width  int
	height int
	ready  bool

	viewport viewport.Model
	follow   bool

	lines   []string
	state   tailer.State
	lastErr string
}

// New creates a new viewer model.
func New(opts Options) Model {
	return Model{
		path:       opts.Path,
		statusBar:  opts.StatusBar,
		viewHeight: opts.ViewHeight,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		follow:     opts.Follow,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		return m, nil

	case BatchMsg:
		m.lines = msg.Lines
		m.lastErr = ""
		m.refreshContent()
		return m, nil

	case StateMsg:
		m.state = msg.State
		return m, nil

	case ReadErrorMsg:
		m.lastErr = msg.Err.Error()
		return m, nil

	case DecodeErrorMsg:
		m.lastErr = msg.Message
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if !m.statusBar {
		return m.viewport.View()
	}

	return m.viewport.View() + "\n" + m.renderStatus()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleFollow):
		m.follow = !m.follow
		if m.follow {
			m.viewport.GotoBottom()
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		// Jumping to the top leaves follow mode, otherwise the next
		// batch would yank the view back down.
		m.follow = false
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// resizeViewport applies the current terminal size to the viewport and
// publishes the visible height.
func (m *Model) resizeViewport() {
	height := m.height
	if m.statusBar {
		height--
	}
	if height < 1 {
		height = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, height)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = height
	}

	if m.viewHeight != nil {
		m.viewHeight.Store(int64(height))
	}

	m.refreshContent()
}

// refreshContent re-renders the viewport content from the current lines.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}

	m.viewport.SetContent(strings.Join(m.lines, "\n"))

	if m.follow {
		m.viewport.GotoBottom()
	}
}

// renderStatus renders the status bar under the viewport.
func (m Model) renderStatus() string {
	if m.lastErr != "" {
		return m.styles.StatusError.Width(m.width).Render(truncate(m.lastErr, m.width))
	}

	follow := "off"
	if m.follow {
		follow = "on"
	}

	parts := []string{
		m.styles.StatusPath.Render(m.path),
		m.styles.StatusBar.Render(fmt.Sprintf("%d lines", len(m.lines))),
		m.styles.StatusState.Render(m.state.String()),
		m.styles.StatusBar.Render("follow " + follow),
		m.styles.StatusFaint.Render("f follow  g/G top/bottom  q quit"),
	}

	sep := m.styles.StatusFaint.Render(" • ")
	return m.styles.StatusBar.Width(m.width).Render(strings.Join(parts, sep))
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
