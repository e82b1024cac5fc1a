package counter

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/tally/pkg/facts"
	"tableflip.dev/tally/pkg/feature"
)

type failingFetcher struct{}

func (failingFetcher) Fetch(context.Context, int) (string, error) {
	return "", errors.New("boom")
}

func TestCounterScenario(t *testing.T) {
	fetcher := facts.Static{Format: "%d is a good number Brent"}
	store := feature.NewStore(State{}, New(fetcher))
	defer store.Close()

	store.Send(IncrementTapped{})
	if got := store.State().Count; got != 1 {
		t.Fatalf("expected count 1, got %d", got)
	}

	store.Send(DecrementTapped{})
	if got := store.State().Count; got != 0 {
		t.Fatalf("expected count 0, got %d", got)
	}

	store.Send(FactButtonTapped{})
	store.Wait()

	if got := store.State().Fact; got != "0 is a good number Brent" {
		t.Fatalf("expected fact for 0, got %q", got)
	}
}

func TestFetchFailureLeavesStateUnchanged(t *testing.T) {
	store := feature.NewStore(State{Count: 3}, New(failingFetcher{}))
	defer store.Close()

	store.Send(FactButtonTapped{})
	store.Wait()

	s := store.State()
	if s.Fact != "" || s.Count != 3 {
		t.Fatalf("expected silent failure, got %+v", s)
	}
}

func TestFactUsesCountAtTapTime(t *testing.T) {
	store := feature.NewStore(State{}, New(facts.Static{Format: "fact about %d"}))
	defer store.Close()

	store.Send(IncrementTapped{})
	store.Send(IncrementTapped{})
	store.Send(FactButtonTapped{})
	store.Wait()

	if got := store.State().Fact; got != "fact about 2" {
		t.Fatalf("expected fact about 2, got %q", got)
	}
}
