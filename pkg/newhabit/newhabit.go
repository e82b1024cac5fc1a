// Package newhabit is the form feature backing the "add habit" sheet. It
// binds form fields, loads a picked photo asynchronously, and reports its
// terminal outcome upward as a delegate; it never references its parent.
package newhabit

import (
	"context"
	"time"

	"tableflip.dev/tally/pkg/feature"
	"tableflip.dev/tally/pkg/habit"
	"tableflip.dev/tally/pkg/icon"
	"tableflip.dev/tally/pkg/photos"
)

// State holds the draft habit form.
type State struct {
	Title           string
	Icon            icon.ID
	Color           habit.Color
	TagsText        string
	TargetPerDay    int
	Notes           string
	ReminderEnabled bool
	ReminderTime    time.Time
	PhotoRef        photos.Ref
	PhotoData       []byte
}

// NewState returns the empty draft the sheet opens with.
func NewState() State {
	return State{
		Icon:         icon.Default,
		Color:        habit.DefaultColor,
		TargetPerDay: 1,
	}
}

// Action is the closed set of events the form accepts.
type Action interface {
	isNewHabitAction()
}

// BindingChanged applies a form field write.
type BindingChanged struct {
	feature.Binding[State]
}

// AddTapped submits the draft. The caller is responsible for disabling the
// action while the title is empty.
type AddTapped struct{}

// CancelTapped abandons the draft.
type CancelTapped struct{}

// PhotoPicked starts an asynchronous load of the picked photo.
type PhotoPicked struct {
	Ref photos.Ref
}

// PhotoLoaded delivers the loaded photo bytes.
type PhotoLoaded struct {
	Data []byte
}

// DelegateAction reports a terminal outcome to the parent.
type DelegateAction struct {
	Delegate Delegate
}

func (BindingChanged) isNewHabitAction() {}
func (AddTapped) isNewHabitAction()      {}
func (CancelTapped) isNewHabitAction()   {}
func (PhotoPicked) isNewHabitAction()    {}
func (PhotoLoaded) isNewHabitAction()    {}
func (DelegateAction) isNewHabitAction() {}

// Delegate is the form's outward-facing terminal event set.
type Delegate interface {
	isNewHabitDelegate()
}

// Added reports that a habit was built from the draft.
type Added struct {
	Habit habit.Habit
}

// Cancelled reports that the draft was abandoned.
type Cancelled struct{}

func (Added) isNewHabitDelegate()     {}
func (Cancelled) isNewHabitDelegate() {}

// Field binding constructors.

func SetTitle(v string) BindingChanged {
	return BindingChanged{feature.Bind("title", func(s *State) { s.Title = v })}
}

func SetIcon(v icon.ID) BindingChanged {
	return BindingChanged{feature.Bind("icon", func(s *State) { s.Icon = v })}
}

func SetColor(v habit.Color) BindingChanged {
	return BindingChanged{feature.Bind("color", func(s *State) { s.Color = v })}
}

func SetTagsText(v string) BindingChanged {
	return BindingChanged{feature.Bind("tagsText", func(s *State) { s.TagsText = v })}
}

func SetTargetPerDay(v int) BindingChanged {
	return BindingChanged{feature.Bind("targetPerDay", func(s *State) { s.TargetPerDay = v })}
}

func SetNotes(v string) BindingChanged {
	return BindingChanged{feature.Bind("notes", func(s *State) { s.Notes = v })}
}

func SetReminderEnabled(v bool) BindingChanged {
	return BindingChanged{feature.Bind("reminderEnabled", func(s *State) { s.ReminderEnabled = v })}
}

func SetReminderTime(v time.Time) BindingChanged {
	return BindingChanged{feature.Bind("reminderTime", func(s *State) { s.ReminderTime = v })}
}

// New builds the new-habit reducer around a photo loader.
func New(loader photos.Loader) feature.Reducer[State, Action] {
	bindings := feature.BindingReducer(func(a Action) (feature.Binding[State], bool) {
		if b, ok := a.(BindingChanged); ok {
			return b.Binding, true
		}
		return feature.Binding[State]{}, false
	})

	core := feature.ReducerFunc[State, Action](func(s *State, action Action) feature.Effect[Action] {
		switch a := action.(type) {
		case BindingChanged:
			return feature.None[Action]()
		case AddTapped:
			h := habit.New(s.Title, s.Icon, s.Color, habit.SplitTags(s.TagsText), s.TargetPerDay)
			h.Notes = s.Notes
			h.ReminderEnabled = s.ReminderEnabled
			h.ReminderTime = s.ReminderTime
			h.Photo = s.PhotoData
			return feature.Send[Action](DelegateAction{Delegate: Added{Habit: h}})
		case CancelTapped:
			return feature.Send[Action](DelegateAction{Delegate: Cancelled{}})
		case PhotoPicked:
			s.PhotoRef = a.Ref
			ref := a.Ref
			return feature.Run(func(ctx context.Context, send func(Action)) {
				data, err := loader.Load(ctx, ref)
				if err != nil {
					// A failed load leaves the draft untouched.
					return
				}
				send(PhotoLoaded{Data: data})
			})
		case PhotoLoaded:
			s.PhotoData = a.Data
			return feature.None[Action]()
		case DelegateAction:
			// Interpreted by the parent.
			return feature.None[Action]()
		}
		return feature.None[Action]()
	})

	return feature.Combine(bindings, core)
}
