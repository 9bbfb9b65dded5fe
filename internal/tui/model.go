package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/teamfit/teamfit/internal/models"
	"github.com/teamfit/teamfit/internal/stats"
	"github.com/teamfit/teamfit/internal/storage"
	"github.com/teamfit/teamfit/internal/tui/components/dashboard"
	"github.com/teamfit/teamfit/internal/tui/components/memberlist"
	"github.com/teamfit/teamfit/internal/tui/components/team"
	"github.com/teamfit/teamfit/internal/validation"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateMembers
	StateTeam
	StateAddMember
	StateConfirmDelete
)

// tabCount is the number of cycling top-level tabs.
const tabCount = 3

type MemberFormModel struct {
	Name   string
	Height string
	Weight string
	Age    string
	Gender models.Gender
	Goals  []models.FitnessGoal
}

type Model struct {
	store             *storage.Store
	state             SessionState
	keys              KeyMap
	help              help.Model
	dashboard         dashboard.Model
	members           memberlist.Model
	team              team.Model
	form              *huh.Form
	memberForm        *MemberFormModel
	quitting          bool
	width             int
	height            int
	memberToDelete    string
	validationWarning string
}

func NewModel(store *storage.Store) Model {
	m := Model{
		store:     store,
		state:     StateDashboard,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		dashboard: dashboard.New(0, 0),
		members:   memberlist.New(nil, nil, 0, 0),
		team:      team.New(0, 0),
	}
	m.refreshData()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateMembers {
		keys = append(keys, m.keys.Add, m.keys.Delete)
	}
	keys = append(keys, m.keys.Refresh)
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}

	var actions []key.Binding
	if m.state == StateMembers {
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshData reloads every tab from the store and re-runs validation.
func (m *Model) refreshData() {
	members, err := m.store.Members()
	if err != nil {
		m.validationWarning = "⚠ Storage unavailable"
		return
	}
	logs, err := m.store.WorkoutLogs()
	if err != nil {
		m.validationWarning = "⚠ Storage unavailable"
		return
	}
	goals, _ := m.store.Goals()
	encouragements, _ := m.store.Encouragements()

	now := time.Now()

	workouts := make(map[string]int)
	for _, log := range logs {
		workouts[log.MemberID]++
	}
	m.members.SetMembers(members, workouts)

	recent := recentLogs(logs, 8)
	m.dashboard.SetData(stats.Overview(members, logs, now), recent, members)
	m.team.SetRows(stats.TeamProgress(members, logs, goals, now), memberCheers(members, encouragements, 3))

	m.updateValidationStatus(members, logs, goals)
}

// memberCheers collects each member's n newest encouragements as rendered
// lines, keyed by recipient ID.
func memberCheers(members []models.Member, encouragements []models.Encouragement, n int) map[string][]string {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}
	cheers := make(map[string][]string)
	for i := len(encouragements) - 1; i >= 0; i-- {
		e := encouragements[i]
		if len(cheers[e.ToMemberID]) >= n {
			continue
		}
		from := names[e.FromMemberID]
		if from == "" {
			from = e.FromMemberID
		}
		cheers[e.ToMemberID] = append(cheers[e.ToMemberID], fmt.Sprintf("%s: %q", from, e.Message))
	}
	return cheers
}

// recentLogs returns the last n logs, newest first.
func recentLogs(logs []models.WorkoutLog, n int) []models.WorkoutLog {
	var recent []models.WorkoutLog
	for i := len(logs) - 1; i >= 0 && len(recent) < n; i-- {
		recent = append(recent, logs[i])
	}
	return recent
}

func (m *Model) updateValidationStatus(members []models.Member, logs []models.WorkoutLog, goals []models.Goal) {
	challenges, err := m.store.Challenges()
	if err != nil {
		m.validationWarning = "⚠ Validation unavailable"
		return
	}
	templates, err := m.store.ExerciseTemplates()
	if err != nil {
		m.validationWarning = "⚠ Validation unavailable"
		return
	}

	result := validation.New().Validate(validation.Snapshot{
		Members:    members,
		Logs:       logs,
		Goals:      goals,
		Challenges: challenges,
		Templates:  templates,
	})
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}

// newMemberForm builds the huh form for adding a member.
func newMemberForm(data *MemberFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&data.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Height (cm)").
				Value(&data.Height),
			huh.NewInput().
				Title("Weight (kg)").
				Value(&data.Weight),
			huh.NewInput().
				Title("Age").
				Value(&data.Age),
			huh.NewSelect[models.Gender]().
				Title("Gender").
				Options(
					huh.NewOption("Female", models.GenderFemale),
					huh.NewOption("Male", models.GenderMale),
					huh.NewOption("Other", models.GenderOther),
				).
				Value(&data.Gender),
			huh.NewMultiSelect[models.FitnessGoal]().
				Title("Fitness goals").
				Options(
					huh.NewOption("Weight loss", models.FitnessWeightLoss),
					huh.NewOption("Muscle gain", models.FitnessMuscleGain),
					huh.NewOption("Endurance", models.FitnessEndurance),
					huh.NewOption("Flexibility", models.FitnessFlexibility),
					huh.NewOption("Strength", models.FitnessStrength),
					huh.NewOption("General fitness", models.FitnessGeneralFitness),
				).
				Value(&data.Goals),
		),
	)
}
