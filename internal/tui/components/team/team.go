package team

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/teamfit/teamfit/internal/stats"
)

var (
	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Width(20)

	barFillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const barWidth = 14

type Model struct {
	viewport viewport.Model
	rows     []stats.MemberProgress
	// cheers holds each member's latest encouragement lines, keyed by
	// member ID, newest first.
	cheers map[string][]string
	loaded bool
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.loaded {
		return "Loading team progress..."
	}
	if len(m.rows) == 0 {
		return "\n  No members yet."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

func (m *Model) SetRows(rows []stats.MemberProgress, cheers map[string][]string) {
	m.rows = rows
	m.cheers = cheers
	m.loaded = true
	m.render()
}

func (m *Model) render() {
	var b strings.Builder
	for _, row := range m.rows {
		last := "never"
		if !row.LastWorkout.IsZero() {
			last = row.LastWorkout.Format("2006-01-02")
		}
		line := fmt.Sprintf("%s %s %s\n",
			nameStyle.Render(row.Member.Name),
			weekBar(row.WeeklyRatio),
			mutedStyle.Render(fmt.Sprintf("%d workouts %dm | 7d %d (%dm) | goals %d%% | last %s",
				row.TotalWorkouts, row.TotalDurationMin,
				row.Recent7Workouts, row.Recent7DurationMin,
				row.GoalProgress, last)),
		)
		b.WriteString(line)
		for _, cheer := range m.cheers[row.Member.ID] {
			b.WriteString(mutedStyle.Render("    " + cheer))
			b.WriteString("\n")
		}
	}
	m.viewport.SetContent(b.String())
}

// weekBar renders the trailing-week activity ratio as a fixed-width bar.
func weekBar(ratio float64) string {
	filled := int(ratio * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
}
