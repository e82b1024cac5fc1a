package habit

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/tally/pkg/clock"
	"tableflip.dev/tally/pkg/icon"
)

// ID uniquely identifies a habit or a log entry.
type ID string

// NewID returns a fresh identifier.
func NewID() ID { return ID(uuid.NewString()) }

// LogEntry records one completion of a habit.
type LogEntry struct {
	ID   ID        `json:"id"`
	Date time.Time `json:"date"`
}

// Habit is a tracked daily practice.
type Habit struct {
	ID              ID         `json:"id"`
	Title           string     `json:"title"`
	Icon            icon.ID    `json:"icon"`
	Color           Color      `json:"color"`
	Tags            []string   `json:"tags,omitempty"`
	TargetPerDay    int        `json:"targetPerDay"`
	Notes           string     `json:"notes,omitempty"`
	ReminderEnabled bool       `json:"reminderEnabled"`
	ReminderTime    time.Time  `json:"reminderTime"`
	Photo           []byte     `json:"photo,omitempty"`
	Log             []LogEntry `json:"log,omitempty"`
}

// Identity implements identified.Identifiable.
func (h Habit) Identity() ID { return h.ID }

// New constructs a habit with a fresh identifier and an empty log. The daily
// target is clamped to at least 1.
func New(title string, ic icon.ID, color Color, tags []string, targetPerDay int) Habit {
	return Habit{
		ID:           NewID(),
		Title:        title,
		Icon:         ic,
		Color:        color,
		Tags:         tags,
		TargetPerDay: ClampTarget(targetPerDay),
	}
}

// ClampTarget enforces the daily target floor of 1.
func ClampTarget(target int) int {
	if target < 1 {
		return 1
	}
	return target
}

// SplitTags turns comma-separated free text into an ordered tag list, trimming
// whitespace and dropping empty segments.
func SplitTags(text string) []string {
	parts := strings.Split(text, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// JoinTags reverses SplitTags for form pre-population.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// CountOn returns the number of log entries that fall on the same calendar
// day as t.
func (h Habit) CountOn(t time.Time, cal clock.Calendar) int {
	n := 0
	for _, e := range h.Log {
		if cal.SameDay(e.Date, t) {
			n++
		}
	}
	return n
}

// DoneOn reports whether the daily target was met on the day of t.
func (h Habit) DoneOn(t time.Time, cal clock.Calendar) bool {
	return h.CountOn(t, cal) >= ClampTarget(h.TargetPerDay)
}

// Streak counts consecutive calendar days, ending today, on which the daily
// target was met.
func (h Habit) Streak(today time.Time, cal clock.Calendar) int {
	n := 0
	day := cal.StartOfDay(today)
	for h.DoneOn(day, cal) {
		n++
		day = cal.AddDays(day, -1)
	}
	return n
}

// WeeklyRatio returns the share of the last seven days (ending today) on
// which the daily target was met.
func (h Habit) WeeklyRatio(today time.Time, cal clock.Calendar) float64 {
	done := 0
	day := cal.StartOfDay(today)
	for i := 0; i < 7; i++ {
		if h.DoneOn(day, cal) {
			done++
		}
		day = cal.AddDays(day, -1)
	}
	return float64(done) / 7
}

// AppendLog returns a copy of the habit with a new log entry timestamped now.
func (h Habit) AppendLog(now time.Time) Habit {
	log := make([]LogEntry, 0, len(h.Log)+1)
	log = append(log, h.Log...)
	log = append(log, LogEntry{ID: NewID(), Date: now})
	h.Log = log
	return h
}

// RemoveLastOn returns a copy of the habit with the most recently added log
// entry for the day of t removed. Without a matching entry the habit is
// returned unchanged.
func (h Habit) RemoveLastOn(t time.Time, cal clock.Calendar) Habit {
	for i := len(h.Log) - 1; i >= 0; i-- {
		if cal.SameDay(h.Log[i].Date, t) {
			log := make([]LogEntry, 0, len(h.Log)-1)
			log = append(log, h.Log[:i]...)
			log = append(log, h.Log[i+1:]...)
			h.Log = log
			return h
		}
	}
	return h
}
