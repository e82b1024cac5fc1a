package feature

// PresentationAction wraps a child feature's action with its presentation
// lifecycle: either an action delivered while the child is presented, or a
// dismissal of the child.
type PresentationAction[A any] struct {
	action    A
	presented bool
}

// Presented tags a child action as delivered while the child slot is active.
func Presented[A any](action A) PresentationAction[A] {
	return PresentationAction[A]{action: action, presented: true}
}

// Dismiss signals that the child should be torn down.
func Dismiss[A any]() PresentationAction[A] {
	return PresentationAction[A]{}
}

// Action returns the wrapped child action and whether this is a presented
// action rather than a dismissal.
func (p PresentationAction[A]) Action() (A, bool) {
	return p.action, p.presented
}

// Dismissal reports whether this wraps a dismissal.
func (p PresentationAction[A]) Dismissal() bool { return !p.presented }

// IfLet hosts an optional child feature inside a parent reducer.
//
// The slot accessor exposes the parent state's optional child field (nil means
// the child is absent). match extracts the child's wrapped action from a parent
// action when the parent action addresses this slot; wrap embeds a wrapped
// child action back into the parent's action type.
//
// Routing rules:
//   - a presented child action reduces the child only while the slot is
//     non-nil; when the slot is empty the action is dropped (never routed into
//     a stale reducer);
//   - a dismissal clears the slot;
//   - the base (parent) reducer always runs after the child, so it observes
//     delegate actions and may clear the slot itself;
//   - whenever the slot transitions to nil, every in-flight task the child
//     spawned (registered under token) is cancelled.
func IfLet[S, A, CS, CA any](
	base Reducer[S, A],
	slot func(*S) **CS,
	match func(A) (PresentationAction[CA], bool),
	wrap func(PresentationAction[CA]) A,
	child Reducer[CS, CA],
	token CancelID,
) Reducer[S, A] {
	return ReducerFunc[S, A](func(s *S, action A) Effect[A] {
		present := *slot(s) != nil

		var childEffect Effect[A]
		if pa, ok := match(action); ok {
			switch {
			case pa.Dismissal():
				*slot(s) = nil
			default:
				ca, _ := pa.Action()
				cs := *slot(s)
				if cs == nil {
					// Child already dismissed; drop the action.
					break
				}
				eff := child.Reduce(cs, ca)
				childEffect = Map(eff, func(a CA) A {
					return wrap(Presented(a))
				}).Cancellable(token)
			}
		}

		baseEffect := base.Reduce(s, action)

		var cancelEffect Effect[A]
		if present && *slot(s) == nil {
			cancelEffect = Cancel[A](token)
		}
		return Batch(childEffect, baseEffect, cancelEffect)
	})
}
