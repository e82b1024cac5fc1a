package demo

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/tally/pkg/counter"
	"tableflip.dev/tally/pkg/facts"
	"tableflip.dev/tally/pkg/feature"
)

// Demo drives the counter feature through a scripted scenario, printing the
// state after each send. With Live set it fetches facts from the network;
// otherwise it uses the deterministic local fetcher.
type Demo struct {
	Steps int
	Live  bool
}

func (d *Demo) Do(ctx context.Context) error {
	if d.Steps <= 0 {
		d.Steps = 3
	}

	var fetcher facts.Fetcher
	if d.Live {
		cfg, err := facts.LoadConfig()
		if err != nil {
			return err
		}
		fetcher = facts.NewHTTPFetcher(cfg)
	} else {
		fetcher = facts.Static{Format: "%d is a good number Brent"}
	}

	store := feature.NewStore(counter.State{}, counter.New(fetcher))
	defer store.Close()

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	for i := 0; i < d.Steps; i++ {
		store.Send(counter.IncrementTapped{})
		_, _ = bold.Printf("count = %d\n", store.State().Count)
	}
	store.Send(counter.DecrementTapped{})
	_, _ = bold.Printf("count = %d\n", store.State().Count)

	_, _ = faint.Println("fetching a fact…")
	store.Send(counter.FactButtonTapped{})
	store.Wait()

	state := store.State()
	if state.Fact == "" {
		return errors.New("no fact arrived")
	}
	fmt.Println(state.Fact)
	return nil
}
