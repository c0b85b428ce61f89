// internal/tui/viewer.go
// Package tui provides an interactive pager over search results.
package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/minigrep/internal/params"
	"github.com/mwiater/minigrep/internal/runner"
	"github.com/mwiater/minigrep/internal/search"
)

const (
	defaultWidth  = 80
	defaultHeight = 20
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// model is the Bubble Tea model backing the viewer.
type model struct {
	params   params.Params
	matches  []search.Match
	viewport viewport.Model
	width    int
	height   int
}

func initialModel(p params.Params, matches []search.Match) *model {
	vp := viewport.New(defaultWidth, defaultHeight)
	vp.SetContent(renderMatches(p, matches, defaultWidth))
	return &model{
		params:   p,
		matches:  matches,
		viewport: vp,
	}
}

// renderMatches formats every match the way the plain output does, cutting
// rows that do not fit in width.
func renderMatches(p params.Params, matches []search.Match, width int) string {
	if len(matches) == 0 {
		return emptyStyle.Render("No matches found")
	}
	f := runner.NewFormatter(p, runner.Options{})
	rows := make([]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, truncateRunes(f.Format(m), width))
	}
	return strings.Join(rows, "\n")
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.viewport.SetContent(renderMatches(m.params, m.matches, msg.Width))
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.viewport.View(), m.footerView())
}

func (m *model) headerView() string {
	mode := "case-sensitive"
	if m.params.IgnoreCase() {
		mode = "case-insensitive"
	}
	title := titleStyle.Render("minigrep " + m.params.FilePath())
	info := infoStyle.Render(fmt.Sprintf("query=%q  %s  %s", m.params.Query(), mode, matchCount(len(m.matches))))
	return lipgloss.JoinVertical(lipgloss.Left, title, info)
}

func (m *model) footerView() string {
	return footerStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", m.viewport.ScrollPercent()*100))
}

// truncateRunes shortens text to at most width runes, ending in an ellipsis
// when something was cut.
func truncateRunes(text string, width int) string {
	if width <= 0 || utf8.RuneCountInString(text) <= width {
		return text
	}
	runes := []rune(text)
	return string(runes[:width-1]) + "…"
}

func matchCount(n int) string {
	if n == 1 {
		return "1 match"
	}
	return fmt.Sprintf("%d matches", n)
}

// Run shows matches in a full-screen pager and blocks until the user quits.
func Run(p params.Params, matches []search.Match) error {
	prog := tea.NewProgram(initialModel(p, matches), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
