package memberlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/teamfit/teamfit/internal/models"
)

type AddMemberMsg struct{}

type DeleteMemberMsg struct {
	ID string
}

type Item struct {
	Member   models.Member
	Workouts int
}

func (i Item) Title() string { return i.Member.Name }
func (i Item) Description() string {
	desc := fmt.Sprintf("%d workouts | goals: ", i.Workouts)
	if len(i.Member.FitnessGoals) == 0 {
		return desc + "none"
	}
	for j, g := range i.Member.FitnessGoals {
		if j > 0 {
			desc += ", "
		}
		desc += string(g)
	}
	return desc
}
func (i Item) FilterValue() string { return i.Member.Name }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(members []models.Member, workouts map[string]int, width, height int) Model {
	l := list.New(toItems(members, workouts), list.NewDefaultDelegate(), width, height)
	l.Title = "Members"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is handled globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toItems(members []models.Member, workouts map[string]int) []list.Item {
	items := make([]list.Item, len(members))
	for i, m := range members {
		items[i] = Item{Member: m, Workouts: workouts[m.ID]}
	}
	return items
}

func (m *Model) SetMembers(members []models.Member, workouts map[string]int) {
	m.list.SetItems(toItems(members, workouts))
}

// Selected returns the highlighted member, if any.
func (m Model) Selected() (models.Member, bool) {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Member, true
	}
	return models.Member{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMemberMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteMemberMsg{ID: i.Member.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No members yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
