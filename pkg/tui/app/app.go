// Package app hosts the interactive habit tracker. The Bubble Tea model is a
// rendering layer only: it reads store state, translates key presses into
// actions, and never mutates feature state directly.
package app

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/tally/pkg/edithabit"
	"tableflip.dev/tally/pkg/feature"
	"tableflip.dev/tally/pkg/habits"
	"tableflip.dev/tally/pkg/icon"
	"tableflip.dev/tally/pkg/newhabit"
	"tableflip.dev/tally/pkg/tui/components/habitform"
	"tableflip.dev/tally/pkg/tui/components/habitlist"
	"tableflip.dev/tally/pkg/tui/theme"
	"tableflip.dev/tally/pkg/tui/ui/overlay"
)

// stateCommittedMsg is sent whenever the store commits a new state, so
// effect-produced changes re-render without user input.
type stateCommittedMsg struct{}

// Model is the root TUI model wrapping the habits store.
type Model struct {
	store *feature.Store[habits.State, habits.Action]
	deps  habits.Deps
	theme theme.Theme

	list *habitlist.Model
	form *habitform.Model

	termWidth  int
	termHeight int
}

// New constructs the root model around an existing store.
func New(store *feature.Store[habits.State, habits.Action], deps habits.Deps) *Model {
	th := theme.Default()
	return &Model{
		store: store,
		deps:  deps,
		theme: th,
		list:  habitlist.New(th),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.syncFromState()
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.list.SetWidth(msg.Width)
	case stateCommittedMsg:
		// state re-read below
	case tea.KeyPressMsg:
		if m.form != nil {
			cmd = m.form.Update(msg)
		} else if quit := m.handleListKey(msg); quit {
			return m, tea.Quit
		}
	default:
		if m.form != nil {
			cmd = m.form.Update(msg)
		}
	}

	m.syncFromState()
	return m, cmd
}

func (m *Model) handleListKey(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case "q", "ctrl+c":
		return true
	case "j", "down":
		m.list.Move(1)
	case "k", "up":
		m.list.Move(-1)
	case "a":
		m.store.Send(habits.PlusTapped{})
	case "e", "enter":
		if h, ok := m.list.Selected(); ok {
			m.store.Send(habits.EditTapped{ID: h.ID})
		}
	case " ", "space":
		if h, ok := m.list.Selected(); ok {
			m.store.Send(habits.ToggleCheck{ID: h.ID})
		}
	case "x", "backspace":
		if h, ok := m.list.Selected(); ok {
			m.store.Send(habits.RemoveTodayLog{ID: h.ID})
		}
	case "s":
		m.store.Send(habits.SetSort{Mode: m.store.State().Sort.Next()})
	}
	return false
}

// syncFromState keeps the list and the modal form aligned with the store: a
// populated child slot opens the matching form, a cleared slot dismisses it.
func (m *Model) syncFromState() {
	state := m.store.State()
	m.list.SetHabits(habits.Sorted(state, m.deps))

	switch {
	case state.NewHabit != nil:
		if m.form == nil {
			m.form = m.newHabitForm(*state.NewHabit)
		}
	case state.EditHabit != nil:
		if m.form == nil {
			m.form = m.editHabitForm(*state.EditHabit)
		}
	default:
		m.form = nil
	}
}

func (m *Model) newHabitForm(s newhabit.State) *habitform.Model {
	send := func(a newhabit.Action) {
		m.store.Send(habits.NewHabitAction{Action: feature.Presented(a)})
	}
	return habitform.New(m.theme, "Add Habit", "add",
		habitform.Seed{
			Title:  s.Title,
			Icon:   s.Icon,
			Tags:   s.TagsText,
			Target: s.TargetPerDay,
			Notes:  s.Notes,
		},
		habitform.Hooks{
			SetTitle:  func(v string) { send(newhabit.SetTitle(v)) },
			SetIcon:   func(v icon.ID) { send(newhabit.SetIcon(v)) },
			SetTags:   func(v string) { send(newhabit.SetTagsText(v)) },
			SetTarget: func(v int) { send(newhabit.SetTargetPerDay(v)) },
			SetNotes:  func(v string) { send(newhabit.SetNotes(v)) },
			Submit:    func() { send(newhabit.AddTapped{}) },
			Cancel:    func() { send(newhabit.CancelTapped{}) },
		})
}

func (m *Model) editHabitForm(s edithabit.State) *habitform.Model {
	send := func(a edithabit.Action) {
		m.store.Send(habits.EditHabitAction{Action: feature.Presented(a)})
	}
	return habitform.New(m.theme, "Edit Habit", "save",
		habitform.Seed{
			Title:  s.Title,
			Icon:   s.Icon,
			Tags:   s.TagsText,
			Target: s.TargetPerDay,
			Notes:  s.Notes,
		},
		habitform.Hooks{
			SetTitle:    func(v string) { send(edithabit.SetTitle(v)) },
			SetIcon:     func(v icon.ID) { send(edithabit.SetIcon(v)) },
			SetTags:     func(v string) { send(edithabit.SetTagsText(v)) },
			SetTarget:   func(v int) { send(edithabit.SetTargetPerDay(v)) },
			SetNotes:    func(v string) { send(edithabit.SetNotes(v)) },
			Submit:      func() { send(edithabit.SaveTapped{}) },
			Cancel:      func() { send(edithabit.CancelTapped{}) },
			RemovePhoto: func() { send(edithabit.RemovePhotoTapped{}) },
		})
}

// View implements tea.Model.
func (m *Model) View() string {
	state := m.store.State()
	now := m.deps.Clock.Now()

	sections := []string{
		m.theme.Title.Render("Habits"),
		m.list.Legend(string(state.Sort)),
		"",
		m.list.View(now, m.deps.Calendar),
		"",
		m.theme.Footer.Render("a add • e edit • space check • x undo • s sort • q quit"),
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.form != nil && m.termWidth > 0 && m.termHeight > 0 {
		return overlay.Center(body, m.termWidth, m.termHeight, m.form.View())
	}
	return body
}

// Run launches the interactive program over the given store.
func Run(store *feature.Store[habits.State, habits.Action], deps habits.Deps) error {
	p := tea.NewProgram(New(store, deps), tea.WithAltScreen())
	store.Subscribe(func(habits.State) {
		go p.Send(stateCommittedMsg{})
	})
	_, err := p.Run()
	return err
}
