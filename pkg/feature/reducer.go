package feature

// Reducer computes the next state and a description of side effects from the
// current state and an incoming action. Reducers are deterministic and never
// block; all asynchronous work is packaged into the returned Effect.
type Reducer[S, A any] interface {
	Reduce(s *S, action A) Effect[A]
}

// ReducerFunc adapts a plain function to the Reducer interface.
type ReducerFunc[S, A any] func(s *S, action A) Effect[A]

// Reduce implements Reducer.
func (f ReducerFunc[S, A]) Reduce(s *S, action A) Effect[A] { return f(s, action) }

// Combine runs reducers in order against the same state and batches their
// effects. Sub-reducers are expected to touch disjoint regions of state.
func Combine[S, A any](reducers ...Reducer[S, A]) Reducer[S, A] {
	return ReducerFunc[S, A](func(s *S, action A) Effect[A] {
		effects := make([]Effect[A], 0, len(reducers))
		for _, r := range reducers {
			effects = append(effects, r.Reduce(s, action))
		}
		return Batch(effects...)
	})
}

// Binding is a generic "set field F to value V" form action. Features embed it
// in their own action set so every form field write flows through the reducer
// instead of mutating state directly.
type Binding[S any] struct {
	Field string
	apply func(*S)
}

// Bind constructs a Binding for the named field.
func Bind[S any](field string, apply func(*S)) Binding[S] {
	return Binding[S]{Field: field, apply: apply}
}

// Apply writes the bound value into state.
func (b Binding[S]) Apply(s *S) {
	if b.apply != nil {
		b.apply(s)
	}
}

// BindingReducer applies any Binding carried by an action and returns None,
// leaving every other action to the reducers composed after it. The extract
// func pulls the Binding out of the feature's action type when present.
func BindingReducer[S, A any](extract func(A) (Binding[S], bool)) Reducer[S, A] {
	return ReducerFunc[S, A](func(s *S, action A) Effect[A] {
		if b, ok := extract(action); ok {
			b.Apply(s)
		}
		return None[A]()
	})
}
