// Package edithabit is the form feature backing the "edit habit" sheet. It
// shares the new-habit form's shape, pre-populated from an existing habit,
// and preserves the habit's identity and log on save.
package edithabit

import (
	"context"
	"time"

	"tableflip.dev/tally/pkg/feature"
	"tableflip.dev/tally/pkg/habit"
	"tableflip.dev/tally/pkg/icon"
	"tableflip.dev/tally/pkg/photos"
)

// State holds the form fields plus the habit being edited.
type State struct {
	HabitID         habit.ID
	Log             []habit.LogEntry
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

// StateFrom pre-populates the form from an existing habit.
func StateFrom(h habit.Habit) State {
	return State{
		HabitID:         h.ID,
		Log:             h.Log,
		Title:           h.Title,
		Icon:            h.Icon,
		Color:           h.Color,
		TagsText:        habit.JoinTags(h.Tags),
		TargetPerDay:    h.TargetPerDay,
		Notes:           h.Notes,
		ReminderEnabled: h.ReminderEnabled,
		ReminderTime:    h.ReminderTime,
		PhotoData:       h.Photo,
	}
}

// Action is the closed set of events the form accepts.
type Action interface {
	isEditHabitAction()
}

// BindingChanged applies a form field write.
type BindingChanged struct {
	feature.Binding[State]
}

// SaveTapped submits the edited habit. The caller disables the action while
// the title is empty.
type SaveTapped struct{}

// CancelTapped abandons the edit.
type CancelTapped struct{}

// PhotoPicked starts an asynchronous load of the picked photo.
type PhotoPicked struct {
	Ref photos.Ref
}

// PhotoLoaded delivers the loaded photo bytes.
type PhotoLoaded struct {
	Data []byte
}

// RemovePhotoTapped clears the photo field.
type RemovePhotoTapped struct{}

// DelegateAction reports a terminal outcome to the parent.
type DelegateAction struct {
	Delegate Delegate
}

func (BindingChanged) isEditHabitAction()    {}
func (SaveTapped) isEditHabitAction()        {}
func (CancelTapped) isEditHabitAction()      {}
func (PhotoPicked) isEditHabitAction()       {}
func (PhotoLoaded) isEditHabitAction()       {}
func (RemovePhotoTapped) isEditHabitAction() {}
func (DelegateAction) isEditHabitAction()    {}

// Delegate is the form's outward-facing terminal event set.
type Delegate interface {
	isEditHabitDelegate()
}

// Updated reports the reconstructed habit, identity and log preserved.
type Updated struct {
	Habit habit.Habit
}

// Cancelled reports that the edit was abandoned.
type Cancelled struct{}

func (Updated) isEditHabitDelegate()   {}
func (Cancelled) isEditHabitDelegate() {}

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

// New builds the edit-habit reducer around a photo loader.
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
		case SaveTapped:
			h := habit.Habit{
				ID:              s.HabitID,
				Title:           s.Title,
				Icon:            s.Icon,
				Color:           s.Color,
				Tags:            habit.SplitTags(s.TagsText),
				TargetPerDay:    habit.ClampTarget(s.TargetPerDay),
				Notes:           s.Notes,
				ReminderEnabled: s.ReminderEnabled,
				ReminderTime:    s.ReminderTime,
				Photo:           s.PhotoData,
				Log:             s.Log,
			}
			return feature.Send[Action](DelegateAction{Delegate: Updated{Habit: h}})
		case CancelTapped:
			return feature.Send[Action](DelegateAction{Delegate: Cancelled{}})
		case PhotoPicked:
			s.PhotoRef = a.Ref
			ref := a.Ref
			return feature.Run(func(ctx context.Context, send func(Action)) {
				data, err := loader.Load(ctx, ref)
				if err != nil {
					return
				}
				send(PhotoLoaded{Data: data})
			})
		case PhotoLoaded:
			s.PhotoData = a.Data
			return feature.None[Action]()
		case RemovePhotoTapped:
			s.PhotoRef = ""
			s.PhotoData = nil
			return feature.None[Action]()
		case DelegateAction:
			return feature.None[Action]()
		}
		return feature.None[Action]()
	})

	return feature.Combine(bindings, core)
}
