// Package sample seeds demo stores with in-memory data. Application state is
// in-memory only; there is no persistence layer behind it.
package sample

import (
	"time"

	"tableflip.dev/tally/pkg/assets"
	"tableflip.dev/tally/pkg/clock"
	"tableflip.dev/tally/pkg/habit"
	"tableflip.dev/tally/pkg/icon"
)

// Habits returns a small set of habits with logs placed relative to now, so
// streaks and weekly ratios render meaningfully.
func Habits(now time.Time, cal clock.Calendar) []habit.Habit {
	water := habit.New("Drink water", icon.Droplet, habit.MustColorFromHex("#219ebc"), []string{"health"}, 3)
	water.Notes = "Three glasses spread through the day."
	for days := 0; days < 4; days++ {
		for n := 0; n < 3; n++ {
			water = water.AppendLog(cal.AddDays(now, -days))
		}
	}

	read := habit.New("Read 20 pages", icon.Book, habit.MustColorFromHex("#e76f51"), []string{"mind", "evening"}, 1)
	for _, days := range []int{0, 1, 2, 4, 5} {
		read = read.AppendLog(cal.AddDays(now, -days))
	}

	run := habit.New("Morning run", icon.Flame, habit.MustColorFromHex("#2a9d8f"), []string{"fitness"}, 1)
	run.ReminderEnabled = true
	run.ReminderTime = time.Date(0, 1, 1, 6, 30, 0, 0, time.UTC)
	run = run.AppendLog(cal.AddDays(now, -1))

	journal := habit.New("Journal", icon.Pencil, habit.MustColorFromHex("#8338ec"), nil, 1)

	return []habit.Habit{water, read, run, journal}
}

// Assets returns the demo inventory from the asset-management variant.
func Assets() []assets.Asset {
	return []assets.Asset{
		{ID: "A-001", Name: "MacBook Pro 14", Category: "Office Equipment", Tags: []string{"Apple"}},
		{ID: "A-002", Name: "Thunderbolt cable", Category: "Cables"},
		{ID: "A-003", Name: "Magic Trackpad", Category: "Office Equipment", Tags: []string{"Apple", "Input"}},
		{ID: "A-004", Name: "HDMI cable", Category: "Cables", Tags: []string{"Video"}},
		{ID: "A-005", Name: "Standing desk", Category: "Furniture"},
	}
}
