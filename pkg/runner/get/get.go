package get

import (
	"context"

	"tableflip.dev/tally/pkg/clock"
	"tableflip.dev/tally/pkg/feature"
	"tableflip.dev/tally/pkg/habits"
	"tableflip.dev/tally/pkg/photos"
	"tableflip.dev/tally/pkg/printers"
	"tableflip.dev/tally/pkg/sample"
)

// Get lists the habits, optionally re-sorted, from a store seeded with the
// sample data.
type Get struct {
	ShowID    bool
	ShowNotes bool
	Table     bool
	Sort      string
}

func (g *Get) Do(ctx context.Context) error {
	now := clock.System{}
	cal := clock.Gregorian{}
	deps := habits.Deps{Clock: now, Calendar: cal, Photos: photos.FileLoader{}}

	store := feature.NewStore(habits.NewState(sample.Habits(now.Now(), cal)...), habits.New(deps))
	defer store.Close()

	if g.Sort != "" {
		store.Send(habits.SetSort{Mode: habits.SortMode(g.Sort)})
	}

	state := store.State()
	pp := printers.PrettyPrint{ShowID: g.ShowID, ShowNotes: g.ShowNotes}
	pp.NewLine()
	pp.Title("Habits")
	if g.Table {
		pp.HabitTable(now, cal, habits.Sorted(state, deps)...)
		return nil
	}
	pp.Habits(now, cal, habits.Sorted(state, deps)...)
	return nil
}
