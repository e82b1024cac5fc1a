package habitform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/tally/pkg/icon"
	"tableflip.dev/tally/pkg/tui/theme"
)

type focusField int

const (
	fieldTitle focusField = iota
	fieldIcon
	fieldTags
	fieldTarget
	fieldNotes
)

// Hooks connect the form to whichever feature hosts it. Every hook dispatches
// an action into the store; the form never mutates feature state itself.
// RemovePhoto may be nil when the hosting feature has no such action.
type Hooks struct {
	SetTitle    func(string)
	SetIcon     func(icon.ID)
	SetTags     func(string)
	SetTarget   func(int)
	SetNotes    func(string)
	Submit      func()
	Cancel      func()
	RemovePhoto func()
}

// Seed pre-populates the form inputs.
type Seed struct {
	Title  string
	Icon   icon.ID
	Tags   string
	Target int
	Notes  string
}

// Model renders a modal habit form (add or edit).
type Model struct {
	theme  theme.Theme
	title  string
	hooks  Hooks
	submit string

	titleInput textinput.Model
	tagsInput  textinput.Model
	notesInput textinput.Model

	icons     []icon.Icon
	iconIndex int
	target    int

	focus focusField
}

// New constructs the form. title is the modal heading, submitLabel names the
// confirm action ("Add" or "Save").
func New(th theme.Theme, title, submitLabel string, seed Seed, hooks Hooks) *Model {
	ti := textinput.New()
	ti.Placeholder = "Habit title…"
	ti.Prompt = ""
	ti.SetValue(seed.Title)
	ti.Focus()

	tags := textinput.New()
	tags.Placeholder = "comma, separated, tags"
	tags.Prompt = ""
	tags.SetValue(seed.Tags)

	notes := textinput.New()
	notes.Placeholder = "Notes…"
	notes.Prompt = ""
	notes.SetValue(seed.Notes)

	m := &Model{
		theme:      th,
		title:      title,
		submit:     submitLabel,
		hooks:      hooks,
		titleInput: ti,
		tagsInput:  tags,
		notesInput: notes,
		icons:      icon.All(),
		target:     seed.Target,
	}
	if m.target < 1 {
		m.target = 1
	}
	for i, ic := range m.icons {
		if ic.ID == seed.Icon {
			m.iconIndex = i
			break
		}
	}
	return m
}

// Update handles key input for the modal.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m.routeToInput(msg)
	}

	switch key.String() {
	case "esc":
		if m.hooks.Cancel != nil {
			m.hooks.Cancel()
		}
		return nil
	case "enter":
		if strings.TrimSpace(m.titleInput.Value()) == "" {
			// Empty title keeps submit disabled.
			return nil
		}
		if m.hooks.Submit != nil {
			m.hooks.Submit()
		}
		return nil
	case "tab":
		m.advance(1)
		return nil
	case "shift+tab":
		m.advance(-1)
		return nil
	case "ctrl+r":
		if m.hooks.RemovePhoto != nil {
			m.hooks.RemovePhoto()
		}
		return nil
	}

	switch m.focus {
	case fieldIcon:
		switch key.String() {
		case "left", "h":
			m.cycleIcon(-1)
		case "right", "l":
			m.cycleIcon(1)
		}
		return nil
	case fieldTarget:
		switch key.String() {
		case "left", "h", "down", "-":
			m.setTarget(m.target - 1)
		case "right", "l", "up", "+":
			m.setTarget(m.target + 1)
		}
		return nil
	}
	return m.routeToInput(msg)
}

func (m *Model) routeToInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		before := m.titleInput.Value()
		m.titleInput, cmd = m.titleInput.Update(msg)
		if v := m.titleInput.Value(); v != before && m.hooks.SetTitle != nil {
			m.hooks.SetTitle(v)
		}
	case fieldTags:
		before := m.tagsInput.Value()
		m.tagsInput, cmd = m.tagsInput.Update(msg)
		if v := m.tagsInput.Value(); v != before && m.hooks.SetTags != nil {
			m.hooks.SetTags(v)
		}
	case fieldNotes:
		before := m.notesInput.Value()
		m.notesInput, cmd = m.notesInput.Update(msg)
		if v := m.notesInput.Value(); v != before && m.hooks.SetNotes != nil {
			m.hooks.SetNotes(v)
		}
	}
	return cmd
}

func (m *Model) advance(delta int) {
	next := int(m.focus) + delta
	if next < int(fieldTitle) {
		next = int(fieldNotes)
	}
	if next > int(fieldNotes) {
		next = int(fieldTitle)
	}
	m.focus = focusField(next)

	m.titleInput.Blur()
	m.tagsInput.Blur()
	m.notesInput.Blur()
	switch m.focus {
	case fieldTitle:
		m.titleInput.Focus()
	case fieldTags:
		m.tagsInput.Focus()
	case fieldNotes:
		m.notesInput.Focus()
	}
}

func (m *Model) cycleIcon(delta int) {
	n := len(m.icons)
	m.iconIndex = (m.iconIndex + delta + n) % n
	if m.hooks.SetIcon != nil {
		m.hooks.SetIcon(m.icons[m.iconIndex].ID)
	}
}

func (m *Model) setTarget(v int) {
	if v < 1 {
		v = 1
	}
	m.target = v
	if m.hooks.SetTarget != nil {
		m.hooks.SetTarget(v)
	}
}

// View renders the modal body.
func (m *Model) View() string {
	ic := m.icons[m.iconIndex]
	rows := []string{
		m.theme.Title.Render(m.title),
		"",
		m.row("Title", m.titleInput.View(), m.focus == fieldTitle),
		m.row("Icon", fmt.Sprintf("%s %s", ic.Symbol, ic.ID), m.focus == fieldIcon),
		m.row("Tags", m.tagsInput.View(), m.focus == fieldTags),
		m.row("Per day", strconv.Itoa(m.target), m.focus == fieldTarget),
		m.row("Notes", m.notesInput.View(), m.focus == fieldNotes),
		"",
		m.statusLine(),
	}
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return m.theme.Modal.Render(body)
}

func (m *Model) row(label, value string, focused bool) string {
	indicator := "  "
	key := m.theme.FieldKey.Render(fmt.Sprintf("%-8s", label))
	if focused {
		indicator = m.theme.Cursor.Render("➤ ")
		key = m.theme.Cursor.Render(fmt.Sprintf("%-8s", label))
	}
	return indicator + key + " " + value
}

func (m *Model) statusLine() string {
	hint := "Enter " + m.submit + " • Esc cancel • Tab fields"
	if strings.TrimSpace(m.titleInput.Value()) == "" {
		hint = "A title is required • Esc cancel"
	}
	return m.theme.Faint.Render(hint)
}
