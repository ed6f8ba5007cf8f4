// Package tui is the interactive rendering surface for the film list.
// It owns no view state of its own: every frame is derived from a fresh
// controller snapshot, so the loading/error/films/placeholder branch is
// always the controller's call.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/filmdex/filmdex/view"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	crawlStyle  = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("222"))
)

// Model is the bubbletea model for the browse command.
type Model struct {
	ctrl      *view.Controller
	fetcher   view.Fetcher
	cursor    int
	width     int
	showCrawl bool
}

// NewModel creates the browse model. The fetcher is the same one the
// controller was built around.
func NewModel(ctrl *view.Controller, fetcher view.Fetcher) Model {
	return Model{
		ctrl:    ctrl,
		fetcher: fetcher,
	}
}

// reloadDoneMsg signals that a reload cycle finished.
type reloadDoneMsg struct{}

// reload marks the controller loading immediately (so this frame shows
// the loading branch) and returns the command that completes the cycle.
func (m Model) reload() (Model, tea.Cmd) {
	m.ctrl.Begin()
	return m, func() tea.Msg {
		films, err := m.fetcher.Films(context.Background())
		m.ctrl.Finish(films, err)
		return reloadDoneMsg{}
	}
}

// Init triggers the initial reload on mount.
func (m Model) Init() tea.Cmd {
	_, cmd := m.reload()
	return cmd
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case reloadDoneMsg:
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			// Reload is always allowed, even mid-flight. Overlapping
			// cycles race and the last completion wins.
			return m.reload()
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.ctrl.Snapshot().Films)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			m.showCrawl = !m.showCrawl
			return m, nil
		}
	}

	return m, nil
}

func (m *Model) clampCursor() {
	n := len(m.ctrl.Snapshot().Films)
	if n == 0 {
		m.cursor = 0
	} else if m.cursor >= n {
		m.cursor = n - 1
	}
}

func (m Model) View() string {
	snap := m.ctrl.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("filmdex"))
	b.WriteString("\n\n")

	switch snap.Screen() {
	case view.ScreenLoading:
		b.WriteString("Loading films...")
	case view.ScreenError:
		b.WriteString(errorStyle.Render(snap.Err))
	case view.ScreenFilms:
		for i, film := range snap.Films {
			prefix := "  "
			line := fmt.Sprintf("Episode %d — %s (%s)", film.ID, film.Title, film.ReleaseDate)
			if i == m.cursor {
				prefix = cursorStyle.Render("> ")
				line = cursorStyle.Render(line)
			}
			b.WriteString(prefix + line + "\n")
		}
		if m.showCrawl && m.cursor < len(snap.Films) {
			b.WriteString("\n")
			b.WriteString(crawlStyle.Render(snap.Films[m.cursor].OpeningText))
			b.WriteString("\n")
		}
	default:
		b.WriteString("No films found.")
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("r reload • ↑/↓ move • enter crawl • q quit"))
	b.WriteString("\n")

	return b.String()
}
