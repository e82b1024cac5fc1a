package feature

import "context"

// CancelID names a group of in-flight effect tasks so a later Cancel (or a
// dismissed child slot) can tear them down together.
type CancelID string

// Operation is the body of a task effect. It may suspend on external calls and
// emits zero or more follow-up actions through send. Once the surrounding
// scope is cancelled, emitted actions are dropped by the runtime.
type Operation[A any] func(ctx context.Context, send func(A))

type effectKind int

const (
	effectNone effectKind = iota
	effectSend
	effectRun
	effectCancel
	effectBatch
)

// Effect describes deferred work produced by a reducer. Reducers never perform
// side effects inline; they return an Effect and the Store executes it.
type Effect[A any] struct {
	kind     effectKind
	action   *A
	op       Operation[A]
	token    CancelID
	hasToken bool
	children []Effect[A]
}

// None reports no side effect.
func None[A any]() Effect[A] {
	return Effect[A]{kind: effectNone}
}

// Send synchronously re-enters the loop with the given action once the current
// reduction has been committed. Used sparingly, for example to translate a
// cancel tap into a delegate.
func Send[A any](action A) Effect[A] {
	return Effect[A]{kind: effectSend, action: &action}
}

// Run schedules op as a concurrent task. The task is finite and not
// restartable; a new dispatch creates a new task.
func Run[A any](op Operation[A]) Effect[A] {
	return Effect[A]{kind: effectRun, op: op}
}

// Cancel tears down every in-flight task registered under token.
func Cancel[A any](token CancelID) Effect[A] {
	return Effect[A]{kind: effectCancel, token: token}
}

// Batch combines several effects; they are started in order.
func Batch[A any](effects ...Effect[A]) Effect[A] {
	kept := make([]Effect[A], 0, len(effects))
	for _, e := range effects {
		if e.kind == effectNone {
			continue
		}
		kept = append(kept, e)
	}
	switch len(kept) {
	case 0:
		return None[A]()
	case 1:
		return kept[0]
	default:
		return Effect[A]{kind: effectBatch, children: kept}
	}
}

// Cancellable registers the effect's tasks under token so they can be torn
// down by Cancel or by the owning child slot being dismissed.
func (e Effect[A]) Cancellable(token CancelID) Effect[A] {
	switch e.kind {
	case effectRun:
		e.token = token
		e.hasToken = true
	case effectBatch:
		children := make([]Effect[A], len(e.children))
		for i, c := range e.children {
			children[i] = c.Cancellable(token)
		}
		e.children = children
	}
	return e
}

// IsNone reports whether the effect carries no work.
func (e Effect[A]) IsNone() bool { return e.kind == effectNone }

// Map rewraps every action the effect produces, so a child feature's effect
// can travel through its parent's action type.
func Map[A, B any](e Effect[A], f func(A) B) Effect[B] {
	switch e.kind {
	case effectNone:
		return None[B]()
	case effectSend:
		return Send(f(*e.action))
	case effectRun:
		op := e.op
		out := Run(func(ctx context.Context, send func(B)) {
			op(ctx, func(a A) { send(f(a)) })
		})
		out.token = e.token
		out.hasToken = e.hasToken
		return out
	case effectCancel:
		return Cancel[B](e.token)
	case effectBatch:
		children := make([]Effect[B], len(e.children))
		for i, c := range e.children {
			children[i] = Map(c, f)
		}
		return Effect[B]{kind: effectBatch, children: children}
	}
	return None[B]()
}
