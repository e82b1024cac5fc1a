package ui

import (
	"context"

	"tableflip.dev/tally/pkg/clock"
	"tableflip.dev/tally/pkg/feature"
	"tableflip.dev/tally/pkg/habits"
	"tableflip.dev/tally/pkg/photos"
	"tableflip.dev/tally/pkg/sample"
	"tableflip.dev/tally/pkg/tui/app"
)

// UI launches the interactive habit tracker over an in-memory store.
type UI struct {
	Empty bool
}

func (u *UI) Do(ctx context.Context) error {
	now := clock.System{}
	cal := clock.Gregorian{}
	deps := habits.Deps{Clock: now, Calendar: cal, Photos: photos.FileLoader{}}

	state := habits.NewState()
	if !u.Empty {
		state = habits.NewState(sample.Habits(now.Now(), cal)...)
	}

	store := feature.NewStore(state, habits.New(deps))
	defer store.Close()

	return app.Run(store, deps)
}
