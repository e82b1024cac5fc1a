package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/tally/pkg/assets"
	"tableflip.dev/tally/pkg/clock"
	"tableflip.dev/tally/pkg/habit"
	"tableflip.dev/tally/pkg/icon"
)

// PrettyPrint renders habits and assets for the terminal.
type PrettyPrint struct {
	ShowID    bool
	ShowNotes bool
	WrapAt    int
}

var spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Title prints a bold underlined section heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Habits prints one line per habit: glyph, title, streak and today counters.
func (pp *PrettyPrint) Habits(now clock.Clock, cal clock.Calendar, all ...habit.Habit) {
	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	g := color.New(color.FgGreen)
	f := color.New(color.Faint)

	for _, h := range all {
		if pp.ShowID {
			id := string(h.ID)
			if len(id) > len(spacing)-2 {
				id = id[:len(spacing)-2]
			}
			_, _ = y.Print(id)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
		}
		_, _ = t.Printf("%s %s", icon.Symbol(h.Icon), h.Title)
		if streak := h.Streak(now.Now(), cal); streak > 0 {
			_, _ = g.Printf("  %d day streak", streak)
		}
		_, _ = f.Printf("  (%d/%d today)\n", h.CountOn(now.Now(), cal), habit.ClampTarget(h.TargetPerDay))
		if pp.ShowNotes && h.Notes != "" {
			wrap := pp.WrapAt
			if wrap <= 0 {
				wrap = 72
			}
			for _, line := range strings.Split(wordwrap.String(h.Notes, wrap), "\n") {
				_, _ = f.Printf("    %s\n", line)
			}
		}
	}
	_, _ = t.Println("")
}

// HabitTable renders the habits as a table with streak and weekly columns.
func (pp *PrettyPrint) HabitTable(now clock.Clock, cal clock.Calendar, all ...habit.Habit) {
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("HABIT", "TAGS", "TODAY", "STREAK", "WEEK")
	for _, h := range all {
		table.AddRow(
			fmt.Sprintf("%s %s", icon.Symbol(h.Icon), h.Title),
			habit.JoinTags(h.Tags),
			fmt.Sprintf("%d/%d", h.CountOn(now.Now(), cal), habit.ClampTarget(h.TargetPerDay)),
			fmt.Sprintf("%d", h.Streak(now.Now(), cal)),
			fmt.Sprintf("%.0f%%", h.WeeklyRatio(now.Now(), cal)*100),
		)
	}
	fmt.Println(table)
}

// AssetTable renders the filtered asset inventory.
func (pp *PrettyPrint) AssetTable(all ...assets.Asset) {
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("ID", "NAME", "CATEGORY", "TAGS")
	for _, a := range all {
		table.AddRow(string(a.ID), a.Name, a.Category, strings.Join(a.Tags, ", "))
	}
	fmt.Println(table)
}
