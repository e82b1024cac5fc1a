package feature

import (
	"context"
	"sync"
)

// Store is the single authoritative holder of state for a feature tree. All
// reducer invocations for one Store are serialized, so state is only ever
// mutated inside a reducer and never concurrently. Effects run concurrently
// with respect to each other and to further Send calls, but their emitted
// actions re-enter the same serialized path.
type Store[S, A any] struct {
	mu        sync.Mutex
	state     S
	reducer   Reducer[S, A]
	observers []func(S)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	taskMu  sync.Mutex
	taskSeq int
	tasks   map[CancelID]map[int]context.CancelFunc
}

// NewStore creates a store around an initial state and a root reducer.
func NewStore[S, A any](initial S, reducer Reducer[S, A]) *Store[S, A] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Store[S, A]{
		state:   initial,
		reducer: reducer,
		ctx:     ctx,
		cancel:  cancel,
		tasks:   make(map[CancelID]map[int]context.CancelFunc),
	}
}

// State returns a snapshot of the current state.
func (st *Store[S, A]) State() S {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}

// Subscribe registers an observer invoked with the committed state after every
// reduction. Observers run outside the reducer lock.
func (st *Store[S, A]) Subscribe(observer func(S)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.observers = append(st.observers, observer)
}

// Send applies the root reducer to the action, commits the new state, notifies
// observers, and schedules the returned effect. Direct callers' actions are
// applied in the order Send is called.
func (st *Store[S, A]) Send(action A) {
	st.mu.Lock()
	effect := st.reducer.Reduce(&st.state, action)
	snapshot := st.state
	observers := append([]func(S){}, st.observers...)
	st.mu.Unlock()

	for _, o := range observers {
		o(snapshot)
	}
	st.execute(effect)
}

// Close cancels every in-flight task and stops accepting their results.
func (st *Store[S, A]) Close() {
	st.cancel()
	st.wg.Wait()
}

// Wait blocks until every task in flight at the time of the call has finished.
// Intended for tests that need deterministic effect completion.
func (st *Store[S, A]) Wait() {
	st.wg.Wait()
}

func (st *Store[S, A]) execute(effect Effect[A]) {
	switch effect.kind {
	case effectNone:
	case effectSend:
		st.Send(*effect.action)
	case effectBatch:
		for _, child := range effect.children {
			st.execute(child)
		}
	case effectCancel:
		st.cancelToken(effect.token)
	case effectRun:
		st.spawn(effect)
	}
}

func (st *Store[S, A]) spawn(effect Effect[A]) {
	ctx, cancel := context.WithCancel(st.ctx)
	var unregister func()
	if effect.hasToken {
		unregister = st.register(effect.token, cancel)
	}

	st.wg.Add(1)
	go func() {
		defer st.wg.Done()
		defer cancel()
		if unregister != nil {
			defer unregister()
		}
		effect.op(ctx, func(action A) {
			// Results arriving after the owning scope is torn down are
			// discarded without mutating state.
			if ctx.Err() != nil {
				return
			}
			st.Send(action)
		})
	}()
}

func (st *Store[S, A]) register(token CancelID, cancel context.CancelFunc) func() {
	st.taskMu.Lock()
	defer st.taskMu.Unlock()
	st.taskSeq++
	id := st.taskSeq
	group := st.tasks[token]
	if group == nil {
		group = make(map[int]context.CancelFunc)
		st.tasks[token] = group
	}
	group[id] = cancel
	return func() {
		st.taskMu.Lock()
		defer st.taskMu.Unlock()
		delete(group, id)
		if len(group) == 0 {
			delete(st.tasks, token)
		}
	}
}

func (st *Store[S, A]) cancelToken(token CancelID) {
	st.taskMu.Lock()
	cancels := make([]context.CancelFunc, 0, len(st.tasks[token]))
	for _, c := range st.tasks[token] {
		cancels = append(cancels, c)
	}
	st.taskMu.Unlock()
	for _, c := range cancels {
		c()
	}
}
