package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("57"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("57"))
)

// header and footer rows around the viewport
const chromeHeight = 2

// pagerModel shows one rendered snapshot. It never rescans.
type pagerModel struct {
	title       string
	lines       []string
	viewport    viewport.Model
	searchInput textinput.Model
	searching   bool
	message     string
}

func newPagerModel(title, text string) pagerModel {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.CharLimit = 64
	ti.Width = 30

	vp := viewport.New(0, 0)
	vp.SetContent(text)

	return pagerModel{
		title:       title,
		lines:       strings.Split(strings.TrimSuffix(text, "\n"), "\n"),
		viewport:    vp,
		searchInput: ti,
	}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter":
				m.searching = false
				m.searchInput.Blur()
				m.jumpToMatch(m.viewport.YOffset)
				return m, nil
			case "esc":
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			}
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "/":
			m.searching = true
			m.message = ""
			return m, m.searchInput.Focus()
		case "n":
			m.jumpToMatch(m.viewport.YOffset + 1)
			return m, nil
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// jumpToMatch scrolls to the first line at or after from containing the
// query, wrapping around once.
func (m *pagerModel) jumpToMatch(from int) {
	query := m.searchInput.Value()
	if query == "" {
		return
	}
	line := findLine(m.lines, query, from)
	if line < 0 {
		m.message = fmt.Sprintf("%q not found", query)
		return
	}
	m.message = fmt.Sprintf("line %d", line+1)
	m.viewport.SetYOffset(line)
}

func findLine(lines []string, query string, from int) int {
	if len(lines) == 0 {
		return -1
	}
	from = max(from, 0) % len(lines)
	for i := range lines {
		n := (from + i) % len(lines)
		if strings.Contains(lines[n], query) {
			return n
		}
	}
	return -1
}

func (m pagerModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.title) + "\n")
	b.WriteString(m.viewport.View() + "\n")
	switch {
	case m.searching:
		b.WriteString(promptStyle.Render("/") + m.searchInput.View())
	case m.message != "":
		b.WriteString(footerStyle.Render(m.message + "  (n: next, /: search, q: quit)"))
	default:
		b.WriteString(footerStyle.Render("↑/↓ scroll  /: search  n: next  q: quit"))
	}
	return b.String()
}

// Run pages through an already rendered tree until the user quits
func Run(title, text string) error {
	p := tea.NewProgram(newPagerModel(title, text), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
