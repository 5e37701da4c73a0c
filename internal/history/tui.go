// Package history provides an interactive browser over the posted-jobs store.
package history

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jobpulse/internal/model"
	"jobpulse/internal/store"
)

// Lines per entry in the list view (title + subtitle + blank separator).
const entryItemHeight = 3

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")) // bright blue

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("39"))

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	entryTitleStyle = lipgloss.NewStyle().
			Bold(true)

	entrySubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	selectedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")). // bright white
				Background(lipgloss.Color("24"))  // dark blue bg

	selectedSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("24"))

	levelStyles = map[model.Level]lipgloss.Style{
		model.LevelJunior: lipgloss.NewStyle().Foreground(lipgloss.Color("40")),  // green
		model.LevelMiddle: lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // yellow
		model.LevelSenior: lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
	}
	unknownLevelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type historyModel struct {
	entries  []store.Entry
	viewport viewport.Model
	cursor   int
	width    int
	height   int
	ready    bool
}

func (m historyModel) Init() tea.Cmd {
	return nil
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
			return m, nil
		case "down", "j":
			m.moveCursor(1)
			return m, nil
		}

		// Forward other keys (pgup/pgdn/home/end) to the viewport.
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *historyModel) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, max(len(m.entries)-1, 0))
	m.viewport.SetContent(renderEntries(m.entries, m.cursor))
	m.ensureCursorVisible()
}

func (m *historyModel) ensureCursorVisible() {
	cursorTop := m.cursor * entryItemHeight
	cursorBottom := cursorTop + entryItemHeight - 1

	if cursorTop < m.viewport.YOffset {
		m.viewport.SetYOffset(cursorTop)
	} else if cursorBottom >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(cursorBottom - m.viewport.Height + 1)
	}
}

func (m *historyModel) recalcLayout() {
	width := max(m.width-2, 20)

	// Header (1 line) + border top/bottom (2) + status bar (1) = 4 lines overhead.
	height := max(m.height-4, 5)

	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}

	m.viewport.SetContent(renderEntries(m.entries, m.cursor))
}

func (m historyModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := headerStyle.Render(fmt.Sprintf(" Published Jobs (%d)", len(m.entries)))
	pane := borderStyle.Width(m.viewport.Width).Render(m.viewport.View())
	statusBar := statusBarStyle.Width(m.width).Render(" ↑/↓ cursor  PgUp/PgDn scroll  q quit")

	return header + "\n" + pane + "\n" + statusBar
}

func renderEntries(entries []store.Entry, cursor int) string {
	if len(entries) == 0 {
		return "  (no published jobs yet)"
	}

	var b strings.Builder
	for i, e := range entries {
		titleSt := entryTitleStyle
		subtitleSt := entrySubtitleStyle
		prefix := "  "
		if i == cursor {
			titleSt = selectedTitleStyle
			subtitleSt = selectedSubtitleStyle
			prefix = "> "
		}

		b.WriteString(prefix)
		b.WriteString(levelBadge(e.Level))
		b.WriteByte(' ')
		b.WriteString(titleSt.Render(e.Title))
		b.WriteByte('\n')

		b.WriteString(prefix)
		b.WriteString(subtitleSt.Render(fmt.Sprintf("%s · %s", e.Company, e.FirstSeen.Format("2006-01-02 15:04"))))
		b.WriteByte('\n')

		if i < len(entries)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func levelBadge(level model.Level) string {
	st, ok := levelStyles[level]
	if !ok {
		st = unknownLevelStyle
		if level == "" {
			level = model.LevelUnknown
		}
	}
	return st.Render("[" + string(level) + "]")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run launches the interactive history browser over the given entries,
// newest first.
func Run(entries []store.Entry) error {
	p := tea.NewProgram(historyModel{entries: entries}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
