// Package habits is the root feature: it owns the habit collection and the
// sort mode, hosts the new-habit and edit-habit sheets as optional children,
// and interprets their delegates.
package habits

import (
	"tableflip.dev/tally/pkg/clock"
	"tableflip.dev/tally/pkg/edithabit"
	"tableflip.dev/tally/pkg/feature"
	"tableflip.dev/tally/pkg/habit"
	"tableflip.dev/tally/pkg/identified"
	"tableflip.dev/tally/pkg/newhabit"
	"tableflip.dev/tally/pkg/photos"
)

// SortMode orders the habit list.
type SortMode string

const (
	SortNewest SortMode = "newest"
	SortStreak SortMode = "streak"
	SortWeekly SortMode = "weekly"
)

// Next cycles through the sort modes.
func (m SortMode) Next() SortMode {
	switch m {
	case SortNewest:
		return SortStreak
	case SortStreak:
		return SortWeekly
	default:
		return SortNewest
	}
}

// Cancel tokens for the child slots' in-flight effects.
const (
	newHabitToken  feature.CancelID = "habits.newHabit"
	editHabitToken feature.CancelID = "habits.editHabit"
)

// State is the root feature state. The child slots are nil while their
// sheets are dismissed.
type State struct {
	Habits identified.Array[habit.ID, habit.Habit]
	Sort   SortMode

	NewHabit  *newhabit.State
	EditHabit *edithabit.State
}

// NewState seeds the root state.
func NewState(habits ...habit.Habit) State {
	return State{
		Habits: identified.Of[habit.ID](habits...),
		Sort:   SortNewest,
	}
}

// Action is the closed set of events the root feature accepts.
type Action interface {
	isHabitsAction()
}

// PlusTapped opens the new-habit sheet with a fresh draft.
type PlusTapped struct{}

// EditTapped opens the edit sheet for the habit with the given id. Unknown
// ids are a silent no-op.
type EditTapped struct {
	ID habit.ID
}

// ToggleCheck records (or undoes) today's completion for a habit.
type ToggleCheck struct {
	ID habit.ID
}

// RemoveTodayLog unconditionally removes the most recent of today's log
// entries, if any.
type RemoveTodayLog struct {
	ID habit.ID
}

// SetSort selects the list ordering.
type SetSort struct {
	Mode SortMode
}

// NewHabitAction routes a wrapped action to the new-habit child slot.
type NewHabitAction struct {
	Action feature.PresentationAction[newhabit.Action]
}

// EditHabitAction routes a wrapped action to the edit-habit child slot.
type EditHabitAction struct {
	Action feature.PresentationAction[edithabit.Action]
}

func (PlusTapped) isHabitsAction()      {}
func (EditTapped) isHabitsAction()      {}
func (ToggleCheck) isHabitsAction()     {}
func (RemoveTodayLog) isHabitsAction()  {}
func (SetSort) isHabitsAction()         {}
func (NewHabitAction) isHabitsAction()  {}
func (EditHabitAction) isHabitsAction() {}

// Deps are the external collaborators the root feature needs.
type Deps struct {
	Clock    clock.Clock
	Calendar clock.Calendar
	Photos   photos.Loader
}

// New builds the root reducer with both child features mounted.
func New(deps Deps) feature.Reducer[State, Action] {
	core := feature.ReducerFunc[State, Action](func(s *State, action Action) feature.Effect[Action] {
		switch a := action.(type) {
		case PlusTapped:
			st := newhabit.NewState()
			s.NewHabit = &st
			return feature.None[Action]()

		case EditTapped:
			h, ok := s.Habits.Get(a.ID)
			if !ok {
				return feature.None[Action]()
			}
			st := edithabit.StateFrom(h)
			s.EditHabit = &st
			return feature.None[Action]()

		case ToggleCheck:
			h, ok := s.Habits.Get(a.ID)
			if !ok {
				return feature.None[Action]()
			}
			now := deps.Clock.Now()
			if h.CountOn(now, deps.Calendar) >= habit.ClampTarget(h.TargetPerDay) {
				h = h.RemoveLastOn(now, deps.Calendar)
			} else {
				h = h.AppendLog(now)
			}
			s.Habits = s.Habits.Replace(h)
			return feature.None[Action]()

		case RemoveTodayLog:
			h, ok := s.Habits.Get(a.ID)
			if !ok {
				return feature.None[Action]()
			}
			s.Habits = s.Habits.Replace(h.RemoveLastOn(deps.Clock.Now(), deps.Calendar))
			return feature.None[Action]()

		case SetSort:
			s.Sort = a.Mode
			return feature.None[Action]()

		case NewHabitAction:
			if ca, ok := a.Action.Action(); ok {
				if d, ok := ca.(newhabit.DelegateAction); ok {
					switch del := d.Delegate.(type) {
					case newhabit.Added:
						s.Habits = s.Habits.InsertFront(del.Habit)
						s.NewHabit = nil
					case newhabit.Cancelled:
						s.NewHabit = nil
					}
				}
			}
			return feature.None[Action]()

		case EditHabitAction:
			if ca, ok := a.Action.Action(); ok {
				if d, ok := ca.(edithabit.DelegateAction); ok {
					switch del := d.Delegate.(type) {
					case edithabit.Updated:
						s.Habits = s.Habits.Replace(del.Habit)
						s.EditHabit = nil
					case edithabit.Cancelled:
						s.EditHabit = nil
					}
				}
			}
			return feature.None[Action]()
		}
		return feature.None[Action]()
	})

	withNew := feature.IfLet(
		core,
		func(s *State) **newhabit.State { return &s.NewHabit },
		func(a Action) (feature.PresentationAction[newhabit.Action], bool) {
			if na, ok := a.(NewHabitAction); ok {
				return na.Action, true
			}
			return feature.PresentationAction[newhabit.Action]{}, false
		},
		func(pa feature.PresentationAction[newhabit.Action]) Action {
			return NewHabitAction{Action: pa}
		},
		newhabit.New(deps.Photos),
		newHabitToken,
	)

	return feature.IfLet(
		withNew,
		func(s *State) **edithabit.State { return &s.EditHabit },
		func(a Action) (feature.PresentationAction[edithabit.Action], bool) {
			if ea, ok := a.(EditHabitAction); ok {
				return ea.Action, true
			}
			return feature.PresentationAction[edithabit.Action]{}, false
		},
		func(pa feature.PresentationAction[edithabit.Action]) Action {
			return EditHabitAction{Action: pa}
		},
		edithabit.New(deps.Photos),
		editHabitToken,
	)
}

// Sorted returns the habits ordered by the current sort mode, computed
// against the injected time dependencies.
func Sorted(s State, deps Deps) []habit.Habit {
	switch s.Sort {
	case SortStreak:
		now := deps.Clock.Now()
		return s.Habits.Sorted(func(x, y habit.Habit) bool {
			return x.Streak(now, deps.Calendar) > y.Streak(now, deps.Calendar)
		}).All()
	case SortWeekly:
		now := deps.Clock.Now()
		return s.Habits.Sorted(func(x, y habit.Habit) bool {
			return x.WeeklyRatio(now, deps.Calendar) > y.WeeklyRatio(now, deps.Calendar)
		}).All()
	default:
		return s.Habits.All()
	}
}
