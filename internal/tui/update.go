package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/teamfit/teamfit/internal/logger"
	"github.com/teamfit/teamfit/internal/models"
	"github.com/teamfit/teamfit/internal/tui/components/memberlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 4
		m.dashboard.SetSize(msg.Width-4, contentHeight)
		m.members.SetSize(msg.Width-4, contentHeight)
		m.team.SetSize(msg.Width-4, contentHeight)

	case memberlist.AddMemberMsg:
		m.memberForm = &MemberFormModel{Gender: models.GenderOther}
		m.form = newMemberForm(m.memberForm)
		m.state = StateAddMember
		return m, m.form.Init()

	case memberlist.DeleteMemberMsg:
		m.memberToDelete = msg.ID
		m.state = StateConfirmDelete
		return m, nil
	}

	switch m.state {
	case StateAddMember:
		return m.updateAddMember(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Right):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab), key.Matches(msg, m.keys.Left):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.refreshData()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case StateMembers:
		m.members, cmd = m.members.Update(msg)
	case StateTeam:
		m.team, cmd = m.team.Update(msg)
	}
	return m, cmd
}

func (m Model) updateAddMember(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		m.state = StateMembers
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.saveNewMember()
		m.state = StateMembers
		return m, nil
	}
	if m.form.State == huh.StateAborted {
		m.state = StateMembers
		return m, nil
	}

	return m, cmd
}

// saveNewMember persists the completed add-member form. Unparseable
// numeric fields fall back to zero rather than blocking the save.
func (m *Model) saveNewMember() {
	data := m.memberForm
	height, _ := strconv.ParseFloat(data.Height, 64)
	weight, _ := strconv.ParseFloat(data.Weight, 64)
	age, _ := strconv.Atoi(data.Age)

	member := models.Member{
		ID:   uuid.New().String(),
		Name: data.Name,
		Physical: models.PhysicalInfo{
			HeightCm: height,
			WeightKg: weight,
			Age:      age,
			Gender:   data.Gender,
		},
		FitnessGoals: data.Goals,
		CreatedAt:    time.Now(),
	}
	if err := m.store.AddMember(member); err != nil {
		logger.Error("Failed to add member", "error", err)
		return
	}
	m.refreshData()
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if err := m.store.DeleteMember(m.memberToDelete); err != nil {
				logger.Error("Failed to delete member", "error", err)
			}
			m.memberToDelete = ""
			m.refreshData()
			m.state = StateMembers
		case "n", "N", "esc", "q":
			m.memberToDelete = ""
			m.state = StateMembers
		}
	}
	return m, nil
}
