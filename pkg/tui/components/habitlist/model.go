package habitlist

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/tally/pkg/clock"
	"tableflip.dev/tally/pkg/habit"
	"tableflip.dev/tally/pkg/icon"
	"tableflip.dev/tally/pkg/tui/theme"
)

// Model renders the habit list with a selection cursor. It is a read-only
// view over store state; all mutation flows back through store actions.
type Model struct {
	theme  theme.Theme
	habits []habit.Habit
	cursor int
	width  int
}

// New constructs the list component.
func New(th theme.Theme) *Model {
	return &Model{theme: th}
}

// SetHabits replaces the rendered habits, clamping the cursor.
func (m *Model) SetHabits(habits []habit.Habit) {
	m.habits = habits
	if m.cursor >= len(habits) {
		m.cursor = len(habits) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetWidth sets the render width.
func (m *Model) SetWidth(width int) { m.width = width }

// Move shifts the cursor by delta, clamped to the list bounds.
func (m *Model) Move(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.habits) {
		m.cursor = len(m.habits) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the habit under the cursor.
func (m *Model) Selected() (habit.Habit, bool) {
	if m.cursor < 0 || m.cursor >= len(m.habits) {
		return habit.Habit{}, false
	}
	return m.habits[m.cursor], true
}

// View renders the list.
func (m *Model) View(now time.Time, cal clock.Calendar) string {
	if len(m.habits) == 0 {
		return m.theme.Faint.Render("no habits yet. press 'a' to add one")
	}

	var b strings.Builder
	for i, h := range m.habits {
		cursor := "  "
		line := fmt.Sprintf("%s %s", icon.Symbol(h.Icon), h.Title)
		done := h.CountOn(now, cal)
		target := habit.ClampTarget(h.TargetPerDay)
		check := m.theme.Faint.Render(fmt.Sprintf(" %d/%d", done, target))
		if done >= target {
			check = m.theme.Streak.Render(" ✔")
		}
		streak := ""
		if s := h.Streak(now, cal); s > 0 {
			streak = m.theme.Streak.Render(fmt.Sprintf("  ✦%d", s))
		}
		if i == m.cursor {
			cursor = m.theme.Cursor.Render("➤ ")
			line = m.theme.Cursor.Render(line)
		}
		b.WriteString(cursor + line + check + streak + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Legend renders the sort line shown under the list title.
func (m *Model) Legend(sort string) string {
	return m.theme.Faint.Render("sort: " + sort + "  (s to cycle)")
}
