package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/baki/internal/files"
	"github.com/faizmokh/baki/internal/timelog"
)

// Model owns Bubble Tea state for the balance browser. The browser is
// read-only: it never mutates the log file.
type Model struct {
	ctx     context.Context
	manager *files.Manager
	target  int

	days       []timelog.DaySummary
	conditions []timelog.Condition
	dayIndex   int
	selected   int

	loading    bool
	statusLine string
	errorLine  string
}

type logLoadedMsg struct {
	days       []timelog.DaySummary
	conditions []timelog.Condition
	err        error
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
)

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, manager *files.Manager, target int) Model {
	return Model{
		ctx:        ctx,
		manager:    manager,
		target:     target,
		loading:    true,
		statusLine: "Loading time log...",
	}
}

// Init loads the log.
func (m Model) Init() tea.Cmd {
	return m.loadLogCmd()
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case logLoadedMsg:
		return m.handleLogLoaded(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		if entries := m.currentEntries(); m.selected < len(entries)-1 {
			m.selected++
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "left", "h", "p":
		// Days are ordered most recent first; left moves to the older day.
		if m.dayIndex < len(m.days)-1 {
			m.dayIndex++
			m.selected = 0
		}
	case "right", "l", "n":
		if m.dayIndex > 0 {
			m.dayIndex--
			m.selected = 0
		}
	case "g":
		m.dayIndex = 0
		m.selected = 0
	case "r":
		m.loading = true
		m.statusLine = "Reloading..."
		m.errorLine = ""
		return m, m.loadLogCmd()
	}

	return m, nil
}

func (m Model) handleLogLoaded(msg logLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errorLine = msg.err.Error()
		m.statusLine = ""
		return m, nil
	}

	m.days = msg.days
	m.conditions = msg.conditions
	m.dayIndex = 0
	m.selected = 0
	m.errorLine = ""
	m.statusLine = fmt.Sprintf("Loaded %d day(s).", len(m.days))
	return m, nil
}

func (m Model) currentEntries() []timelog.Entry {
	if m.dayIndex >= len(m.days) {
		return nil
	}
	return m.days[m.dayIndex].Entries
}

func (m Model) loadLogCmd() tea.Cmd {
	manager := m.manager
	target := m.target
	return func() tea.Msg {
		source, err := manager.ReadLog("")
		if err != nil {
			return logLoadedMsg{err: err}
		}
		days, conditions := timelog.ParseLog(source, target)
		return logLoadedMsg{days: days, conditions: conditions}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("baki — target %s/day", timelog.FormatMinutes(m.target))))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.days) == 0:
		b.WriteString("(no entries)\n")
	default:
		day := m.days[m.dayIndex]
		b.WriteString(headerStyle.Render(day.Date.Format("2006-01-02")))
		fmt.Fprintf(&b, "  %s, delta minutes %s\n\n",
			timelog.FormatMinutes(day.TotalMinutes), renderDelta(day.DeltaMinutes))

		for i, entry := range day.Entries {
			cursor := " "
			if i == m.selected {
				cursor = cursorStyle.Render(">")
			}
			b.WriteString(cursor)
			b.WriteByte(' ')
			b.WriteString(timelog.FormatEntry(day.Date, entry))
			b.WriteByte('\n')
		}

		fmt.Fprintf(&b, "\nDay %d of %d\n", m.dayIndex+1, len(m.days))
	}

	if len(m.conditions) > 0 {
		b.WriteString(faintStyle.Render(fmt.Sprintf("%d line(s) skipped while parsing", len(m.conditions))))
		b.WriteByte('\n')
	}

	if m.errorLine != "" {
		b.WriteString("\n! ")
		b.WriteString(m.errorLine)
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("Navigation: <-/h/p older  ->/l/n newer  j/k select  g latest  r reload  q quit"))
	b.WriteByte('\n')

	return b.String()
}

func renderDelta(delta int) string {
	text := fmt.Sprintf("%d", delta)
	if delta < 0 {
		return negativeStyle.Render(text)
	}
	return positiveStyle.Render(text)
}
