package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/teamfit/teamfit/internal/models"
	"github.com/teamfit/teamfit/internal/stats"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(22)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type Model struct {
	viewport viewport.Model
	overview stats.TeamOverview
	recent   []models.WorkoutLog
	names    map[string]string
	loaded   bool
}

func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
		names:    make(map[string]string),
	}
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
		return "Loading dashboard..."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

// SetData refreshes the dashboard from the current record set. Recent logs
// are expected newest first.
func (m *Model) SetData(overview stats.TeamOverview, recent []models.WorkoutLog, members []models.Member) {
	m.overview = overview
	m.recent = recent
	m.names = make(map[string]string, len(members))
	for _, member := range members {
		m.names[member.ID] = member.Name
	}
	m.loaded = true
	m.render()
}

func (m *Model) render() {
	if !m.loaded {
		return
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Team overview"))
	b.WriteString("\n\n")

	row := func(label string, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	row("Members", fmt.Sprintf("%d", m.overview.MemberCount))
	row("Active plans", fmt.Sprintf("%d", m.overview.ActiveWorkoutPlans))
	row("Total workouts", fmt.Sprintf("%d", m.overview.TotalWorkouts))
	row("Workouts this week", fmt.Sprintf("%d", m.overview.WorkoutsThisWeek))
	row("Active challenges", fmt.Sprintf("%d", m.overview.ActiveChallenges))

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Recent activity"))
	b.WriteString("\n\n")
	if len(m.recent) == 0 {
		b.WriteString(mutedStyle.Render("No workouts logged yet."))
	}
	for _, log := range m.recent {
		name := m.names[log.MemberID]
		if name == "" {
			name = log.MemberID
		}
		line := fmt.Sprintf("%s  %s trained %dm", log.Date, name, log.TotalDurationMin)
		if log.Mood != "" {
			line += fmt.Sprintf(" (%s)", log.Mood)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	m.viewport.SetContent(b.String())
}
