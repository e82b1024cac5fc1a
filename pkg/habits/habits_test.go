package habits

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/tally/pkg/clock"
	"tableflip.dev/tally/pkg/edithabit"
	"tableflip.dev/tally/pkg/feature"
	"tableflip.dev/tally/pkg/habit"
	"tableflip.dev/tally/pkg/icon"
	"tableflip.dev/tally/pkg/newhabit"
	"tableflip.dev/tally/pkg/photos"
)

var (
	fixedNow = time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC)
	cal      = clock.Gregorian{Location: time.UTC}
)

func testDeps() Deps {
	return Deps{
		Clock:    clock.Fixed{Instant: fixedNow},
		Calendar: cal,
		Photos:   photos.Static{},
	}
}

func newStore(t *testing.T, deps Deps, seed ...habit.Habit) *feature.Store[State, Action] {
	t.Helper()
	store := feature.NewStore(NewState(seed...), New(deps))
	t.Cleanup(store.Close)
	return store
}

func sendNew(store *feature.Store[State, Action], a newhabit.Action) {
	store.Send(NewHabitAction{Action: feature.Presented(a)})
}

func sendEdit(store *feature.Store[State, Action], a edithabit.Action) {
	store.Send(EditHabitAction{Action: feature.Presented(a)})
}

func TestPlusTappedOpensFreshDraft(t *testing.T) {
	store := newStore(t, testDeps())

	store.Send(PlusTapped{})
	s := store.State()
	if s.NewHabit == nil {
		t.Fatal("expected new-habit slot populated")
	}
	if s.NewHabit.TargetPerDay != 1 || s.NewHabit.Title != "" {
		t.Fatalf("expected a fresh draft, got %+v", s.NewHabit)
	}
}

func TestAddedDelegateInsertsAtFrontAndDismisses(t *testing.T) {
	existing := habit.New("Read", icon.Book, habit.DefaultColor, nil, 1)
	store := newStore(t, testDeps(), existing)

	store.Send(PlusTapped{})
	sendNew(store, newhabit.SetTitle("Drink water"))
	sendNew(store, newhabit.SetTagsText("health, morning"))
	sendNew(store, newhabit.SetTargetPerDay(3))
	sendNew(store, newhabit.AddTapped{})

	s := store.State()
	if s.NewHabit != nil {
		t.Fatal("expected new-habit slot dismissed after add")
	}
	if got := s.Habits.Len(); got != 2 {
		t.Fatalf("expected 2 habits, got %d", got)
	}
	first := s.Habits.At(0)
	if first.Title != "Drink water" {
		t.Fatalf("expected new habit at index 0, got %q", first.Title)
	}
	if len(first.Tags) != 2 || first.Tags[0] != "health" || first.Tags[1] != "morning" {
		t.Fatalf("expected trimmed tags, got %v", first.Tags)
	}
	if first.TargetPerDay != 3 {
		t.Fatalf("expected target 3, got %d", first.TargetPerDay)
	}
	if len(first.Log) != 0 {
		t.Fatal("expected an empty log on a new habit")
	}
	if s.Habits.At(1).ID != existing.ID {
		t.Fatal("existing habit should keep its position after the insert")
	}
}

func TestCancelDelegateDismissesWithoutMutation(t *testing.T) {
	existing := habit.New("Read", icon.Book, habit.DefaultColor, nil, 1)
	store := newStore(t, testDeps(), existing)

	store.Send(PlusTapped{})
	sendNew(store, newhabit.SetTitle("Abandoned"))
	sendNew(store, newhabit.CancelTapped{})

	s := store.State()
	if s.NewHabit != nil {
		t.Fatal("expected slot absent after cancel")
	}
	if s.Habits.Len() != 1 || s.Habits.At(0).ID != existing.ID {
		t.Fatalf("expected collection unchanged, got %d habits", s.Habits.Len())
	}
}

func TestEditTappedLooksUpHabit(t *testing.T) {
	existing := habit.New("Read", icon.Book, habit.DefaultColor, []string{"mind"}, 2)
	store := newStore(t, testDeps(), existing)

	store.Send(EditTapped{ID: existing.ID})
	s := store.State()
	if s.EditHabit == nil {
		t.Fatal("expected edit slot populated")
	}
	if s.EditHabit.HabitID != existing.ID || s.EditHabit.Title != "Read" {
		t.Fatalf("expected form pre-populated, got %+v", s.EditHabit)
	}
	if s.EditHabit.TagsText != "mind" {
		t.Fatalf("expected tags text pre-populated, got %q", s.EditHabit.TagsText)
	}
}

func TestEditTappedUnknownIDIsNoOp(t *testing.T) {
	store := newStore(t, testDeps(), habit.New("Read", icon.Book, habit.DefaultColor, nil, 1))

	store.Send(EditTapped{ID: "missing"})
	if store.State().EditHabit != nil {
		t.Fatal("expected lookup miss to leave the slot absent")
	}
}

func TestUpdatedDelegateReplacesByIDAndDismisses(t *testing.T) {
	existing := habit.New("Read", icon.Book, habit.DefaultColor, nil, 1)
	existing = existing.AppendLog(fixedNow)
	other := habit.New("Run", icon.Flame, habit.DefaultColor, nil, 1)
	store := newStore(t, testDeps(), existing, other)

	store.Send(EditTapped{ID: existing.ID})
	sendEdit(store, edithabit.SetTitle("Read 20 pages"))
	sendEdit(store, edithabit.SaveTapped{})

	s := store.State()
	if s.EditHabit != nil {
		t.Fatal("expected edit slot dismissed after save")
	}
	if s.Habits.Len() != 2 {
		t.Fatalf("expected 2 habits, got %d", s.Habits.Len())
	}
	updated, ok := s.Habits.Get(existing.ID)
	if !ok {
		t.Fatal("expected habit to keep its identity")
	}
	if updated.Title != "Read 20 pages" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
	if len(updated.Log) != 1 {
		t.Fatal("expected the log to be preserved through the edit")
	}
	if s.Habits.At(0).ID != existing.ID {
		t.Fatal("expected replace to keep the habit's position")
	}
}

func TestToggleCheckAppendsUntilTargetThenUndoes(t *testing.T) {
	h := habit.New("Journal", icon.Pencil, habit.DefaultColor, nil, 1)
	deps := testDeps()
	store := newStore(t, deps, h)

	store.Send(ToggleCheck{ID: h.ID})
	got, _ := store.State().Habits.Get(h.ID)
	if n := got.CountOn(fixedNow, cal); n != 1 {
		t.Fatalf("expected 1 after first toggle, got %d", n)
	}

	store.Send(ToggleCheck{ID: h.ID})
	got, _ = store.State().Habits.Get(h.ID)
	if n := got.CountOn(fixedNow, cal); n != 0 {
		t.Fatalf("expected toggle to undo back to 0, got %d", n)
	}
}

func TestToggleCheckWithHigherTarget(t *testing.T) {
	h := habit.New("Water", icon.Droplet, habit.DefaultColor, nil, 3)
	store := newStore(t, testDeps(), h)

	for i := 0; i < 3; i++ {
		store.Send(ToggleCheck{ID: h.ID})
	}
	got, _ := store.State().Habits.Get(h.ID)
	if n := got.CountOn(fixedNow, cal); n != 3 {
		t.Fatalf("expected 3 after reaching target, got %d", n)
	}

	// At target: the next toggle undoes the most recent entry.
	store.Send(ToggleCheck{ID: h.ID})
	got, _ = store.State().Habits.Get(h.ID)
	if n := got.CountOn(fixedNow, cal); n != 2 {
		t.Fatalf("expected undo to 2, got %d", n)
	}
}

func TestToggleCheckUnknownIDIsNoOp(t *testing.T) {
	h := habit.New("Water", icon.Droplet, habit.DefaultColor, nil, 1)
	store := newStore(t, testDeps(), h)

	store.Send(ToggleCheck{ID: "missing"})
	got, _ := store.State().Habits.Get(h.ID)
	if n := got.CountOn(fixedNow, cal); n != 0 {
		t.Fatalf("expected untouched habit, got %d", n)
	}
}

func TestRemoveTodayLog(t *testing.T) {
	h := habit.New("Water", icon.Droplet, habit.DefaultColor, nil, 3)
	store := newStore(t, testDeps(), h)

	store.Send(ToggleCheck{ID: h.ID})
	store.Send(ToggleCheck{ID: h.ID})
	store.Send(RemoveTodayLog{ID: h.ID})

	got, _ := store.State().Habits.Get(h.ID)
	if n := got.CountOn(fixedNow, cal); n != 1 {
		t.Fatalf("expected 1 after removal, got %d", n)
	}

	// Removing with nothing left today is a no-op.
	store.Send(RemoveTodayLog{ID: h.ID})
	store.Send(RemoveTodayLog{ID: h.ID})
	got, _ = store.State().Habits.Get(h.ID)
	if n := got.CountOn(fixedNow, cal); n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
}

type gatedLoader struct {
	gate chan struct{}
	data []byte
}

func (l gatedLoader) Load(ctx context.Context, ref photos.Ref) ([]byte, error) {
	<-l.gate
	return l.data, nil
}

func TestPhotoLoadDiscardedAfterDismissal(t *testing.T) {
	gate := make(chan struct{})
	deps := testDeps()
	deps.Photos = gatedLoader{gate: gate, data: []byte("jpeg")}
	store := newStore(t, deps)

	store.Send(PlusTapped{})
	sendNew(store, newhabit.PhotoPicked{Ref: "pick-1"})

	// The session ends while the load is parked; its result must be dropped.
	sendNew(store, newhabit.CancelTapped{})
	close(gate)
	store.Wait()

	if store.State().NewHabit != nil {
		t.Fatal("expected slot to stay absent after the stale load completed")
	}
}

func TestPhotoLoadPopulatesDraft(t *testing.T) {
	gate := make(chan struct{})
	deps := testDeps()
	deps.Photos = gatedLoader{gate: gate, data: []byte("jpeg")}
	store := newStore(t, deps)

	store.Send(PlusTapped{})
	sendNew(store, newhabit.PhotoPicked{Ref: "pick-1"})
	close(gate)
	store.Wait()

	s := store.State()
	if s.NewHabit == nil || string(s.NewHabit.PhotoData) != "jpeg" {
		t.Fatalf("expected photo data in draft, got %+v", s.NewHabit)
	}
}

func TestSortModes(t *testing.T) {
	strong := habit.New("Water", icon.Droplet, habit.DefaultColor, nil, 1)
	for d := 0; d < 3; d++ {
		strong = strong.AppendLog(cal.AddDays(fixedNow, -d))
	}
	weak := habit.New("Journal", icon.Pencil, habit.DefaultColor, nil, 1)

	deps := testDeps()
	store := newStore(t, deps, weak, strong)

	if got := Sorted(store.State(), deps); got[0].ID != weak.ID {
		t.Fatalf("expected insertion order for newest sort, got %q first", got[0].Title)
	}

	store.Send(SetSort{Mode: SortStreak})
	if got := Sorted(store.State(), deps); got[0].ID != strong.ID {
		t.Fatalf("expected streak sort to lead with %q", strong.Title)
	}

	store.Send(SetSort{Mode: SortWeekly})
	if got := Sorted(store.State(), deps); got[0].ID != strong.ID {
		t.Fatalf("expected weekly sort to lead with %q", strong.Title)
	}
}

func TestSortModeCycles(t *testing.T) {
	if SortNewest.Next() != SortStreak || SortStreak.Next() != SortWeekly || SortWeekly.Next() != SortNewest {
		t.Fatal("expected newest → streak → weekly → newest")
	}
}
