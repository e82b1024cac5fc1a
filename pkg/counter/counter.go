// Package counter is the minimal demonstration feature for the
// unidirectional core: two synchronous mutations plus one task effect that
// calls out to an injected fact fetcher.
package counter

import (
	"context"

	"tableflip.dev/tally/pkg/facts"
	"tableflip.dev/tally/pkg/feature"
)

// State holds the counter value and the most recently fetched fact.
type State struct {
	Count int
	Fact  string
}

// Action is the closed set of events the counter accepts.
type Action interface {
	isCounterAction()
}

// IncrementTapped bumps the count by one.
type IncrementTapped struct{}

// DecrementTapped drops the count by one.
type DecrementTapped struct{}

// FactButtonTapped requests a fact for the current count.
type FactButtonTapped struct{}

// FactResponse delivers the fetched fact back into the loop.
type FactResponse struct {
	Fact string
}

func (IncrementTapped) isCounterAction()  {}
func (DecrementTapped) isCounterAction()  {}
func (FactButtonTapped) isCounterAction() {}
func (FactResponse) isCounterAction()     {}

// New builds the counter reducer around a fact fetcher.
func New(fetcher facts.Fetcher) feature.Reducer[State, Action] {
	return feature.ReducerFunc[State, Action](func(s *State, action Action) feature.Effect[Action] {
		switch a := action.(type) {
		case IncrementTapped:
			s.Count++
			return feature.None[Action]()
		case DecrementTapped:
			s.Count--
			return feature.None[Action]()
		case FactButtonTapped:
			count := s.Count
			return feature.Run(func(ctx context.Context, send func(Action)) {
				fact, err := fetcher.Fetch(ctx, count)
				if err != nil {
					// Fetch failures are swallowed; the count is still
					// correct and the user can tap again.
					return
				}
				send(FactResponse{Fact: fact})
			})
		case FactResponse:
			s.Fact = a.Fact
			return feature.None[Action]()
		}
		return feature.None[Action]()
	})
}
