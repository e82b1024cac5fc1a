package feature

// Scoped is a derived view over a subset of a parent store's state and
// actions, for use by a child UI. It is a projection, not a copy: sends are
// rewrapped into parent actions and flow through the parent's single source of
// truth.
type Scoped[CS, CA any] struct {
	state func() CS
	send  func(CA)
}

// Scope derives a child view from a parent store. toState projects the child's
// slice of state out of a parent snapshot; fromAction embeds a child action
// into the parent's action type.
func Scope[S, A, CS, CA any](st *Store[S, A], toState func(S) CS, fromAction func(CA) A) *Scoped[CS, CA] {
	return &Scoped[CS, CA]{
		state: func() CS { return toState(st.State()) },
		send:  func(ca CA) { st.Send(fromAction(ca)) },
	}
}

// State returns the projected child state.
func (s *Scoped[CS, CA]) State() CS { return s.state() }

// Send dispatches a child action through the parent store.
func (s *Scoped[CS, CA]) Send(action CA) { s.send(action) }
