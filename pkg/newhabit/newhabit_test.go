package newhabit

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/tally/pkg/feature"
	"tableflip.dev/tally/pkg/habit"
	"tableflip.dev/tally/pkg/icon"
	"tableflip.dev/tally/pkg/photos"
)

// recordingStore wraps the form reducer so the test can observe delegate
// actions the way a parent feature would.
func recordingStore(t *testing.T, loader photos.Loader) (*feature.Store[State, Action], *[]Delegate) {
	t.Helper()
	inner := New(loader)
	var delegates []Delegate
	wrapped := feature.ReducerFunc[State, Action](func(s *State, a Action) feature.Effect[Action] {
		if d, ok := a.(DelegateAction); ok {
			delegates = append(delegates, d.Delegate)
		}
		return inner.Reduce(s, a)
	})
	store := feature.NewStore(NewState(), wrapped)
	t.Cleanup(store.Close)
	return store, &delegates
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	if s.Icon != icon.Default {
		t.Fatalf("expected default icon, got %q", s.Icon)
	}
	if s.TargetPerDay != 1 {
		t.Fatalf("expected target 1, got %d", s.TargetPerDay)
	}
	if s.Color != habit.DefaultColor {
		t.Fatal("expected default color")
	}
}

func TestBindingsWriteFields(t *testing.T) {
	store, _ := recordingStore(t, photos.Static{})

	store.Send(SetTitle("Stretch"))
	store.Send(SetIcon(icon.Barbell))
	store.Send(SetTagsText("body, morning"))
	store.Send(SetTargetPerDay(2))
	store.Send(SetNotes("after coffee"))
	store.Send(SetReminderEnabled(true))

	s := store.State()
	if s.Title != "Stretch" || s.Icon != icon.Barbell || s.TargetPerDay != 2 {
		t.Fatalf("unexpected state %+v", s)
	}
	if s.Notes != "after coffee" || !s.ReminderEnabled {
		t.Fatalf("unexpected state %+v", s)
	}
}

func TestAddTappedDelegatesBuiltHabit(t *testing.T) {
	store, delegates := recordingStore(t, photos.Static{})

	store.Send(SetTitle("Drink water"))
	store.Send(SetTagsText(" health ,, morning "))
	store.Send(SetTargetPerDay(0))
	store.Send(AddTapped{})

	if len(*delegates) != 1 {
		t.Fatalf("expected one delegate, got %d", len(*delegates))
	}
	added, ok := (*delegates)[0].(Added)
	if !ok {
		t.Fatalf("expected Added, got %T", (*delegates)[0])
	}
	h := added.Habit
	if h.Title != "Drink water" {
		t.Fatalf("unexpected title %q", h.Title)
	}
	if h.ID == "" {
		t.Fatal("expected a fresh id")
	}
	if len(h.Tags) != 2 || h.Tags[0] != "health" || h.Tags[1] != "morning" {
		t.Fatalf("expected trimmed tags, got %v", h.Tags)
	}
	if h.TargetPerDay != 1 {
		t.Fatalf("expected clamped target 1, got %d", h.TargetPerDay)
	}
	if len(h.Log) != 0 {
		t.Fatal("expected empty log")
	}
}

func TestAddTappedMintsDistinctIDs(t *testing.T) {
	store, delegates := recordingStore(t, photos.Static{})

	store.Send(SetTitle("One"))
	store.Send(AddTapped{})
	store.Send(AddTapped{})

	if len(*delegates) != 2 {
		t.Fatalf("expected two delegates, got %d", len(*delegates))
	}
	first := (*delegates)[0].(Added).Habit
	second := (*delegates)[1].(Added).Habit
	if first.ID == second.ID {
		t.Fatal("expected each submit to mint a new id")
	}
}

func TestCancelTappedDelegates(t *testing.T) {
	store, delegates := recordingStore(t, photos.Static{})

	store.Send(SetTitle("Abandoned"))
	store.Send(CancelTapped{})

	if len(*delegates) != 1 {
		t.Fatalf("expected one delegate, got %d", len(*delegates))
	}
	if _, ok := (*delegates)[0].(Cancelled); !ok {
		t.Fatalf("expected Cancelled, got %T", (*delegates)[0])
	}
}

func TestPhotoPickedLoadsAsynchronously(t *testing.T) {
	store, _ := recordingStore(t, photos.Static{"pick-1": []byte("jpeg")})

	store.Send(PhotoPicked{Ref: "pick-1"})
	store.Wait()

	s := store.State()
	if s.PhotoRef != "pick-1" {
		t.Fatalf("expected ref recorded, got %q", s.PhotoRef)
	}
	if string(s.PhotoData) != "jpeg" {
		t.Fatalf("expected loaded bytes, got %q", s.PhotoData)
	}
}

type failingLoader struct{}

func (failingLoader) Load(context.Context, photos.Ref) ([]byte, error) {
	return nil, errors.New("unreadable")
}

func TestPhotoLoadFailureLeavesDraftUntouched(t *testing.T) {
	store, _ := recordingStore(t, failingLoader{})

	store.Send(PhotoPicked{Ref: "pick-1"})
	store.Wait()

	if data := store.State().PhotoData; data != nil {
		t.Fatalf("expected no photo data on failure, got %q", data)
	}
}
