// Package effects runs the asynchronous side of the action pipeline.
//
// A Reactor answers every admitted request action with exactly one outcome
// action. A newer request for the same reactor supersedes the one in flight:
// the old call's context is cancelled and its outcome is never dispatched.
// An Observer performs an external side effect and has no way to dispatch.
package effects

import (
	"context"

	"github.com/dkeye/ChatSync/internal/app/action"
	"github.com/dkeye/ChatSync/internal/app/store"
	"github.com/dkeye/ChatSync/internal/domain"
)

// Reactor is a dispatching effect.
type Reactor struct {
	Name  string
	match func(action.Action) bool
	run   func(ctx context.Context, env env, a action.Action) action.Action
	// fail builds the outcome for a panicking run.
	fail func(domain.Error) action.Action
}

// Observer is a non-dispatching effect.
type Observer struct {
	Name  string
	match func(action.Action) bool
	run   func(ctx context.Context, a action.Action)
}

// env is what a reactor may read: the state snapshot taken when its request
// was admitted, and the store to wait on when that snapshot is not enough.
type env struct {
	snapshot store.State
	store    *store.Store
}

// SwitchMap builds a reactor for request type R. call's error is normalized
// into domain.Error and passed to fail.
func SwitchMap[R action.Request, T any](
	name string,
	call func(ctx context.Context, req R) (T, error),
	ok func(T) action.Action,
	fail func(domain.Error) action.Action,
) Reactor {
	return Reactor{
		Name:  name,
		match: is[R],
		fail:  fail,
		run: func(ctx context.Context, _ env, a action.Action) action.Action {
			res, err := call(ctx, a.(R))
			if err != nil {
				return fail(domain.ErrorFrom(err))
			}
			return ok(res)
		},
	}
}

// SwitchMapWithLatest is SwitchMap with a value selected from state. The
// selector is applied to the snapshot taken at admission; while it yields
// nothing the call waits for the state to provide a value.
func SwitchMapWithLatest[R action.Request, S, T any](
	name string,
	sel func(store.State) (S, bool),
	call func(ctx context.Context, req R, latest S) (T, error),
	ok func(T) action.Action,
	fail func(domain.Error) action.Action,
) Reactor {
	return Reactor{
		Name:  name,
		match: is[R],
		fail:  fail,
		run: func(ctx context.Context, e env, a action.Action) action.Action {
			latest, found := sel(e.snapshot)
			if !found {
				var err error
				if latest, err = store.WaitFor(ctx, e.store, sel); err != nil {
					return fail(domain.ErrorFrom(err))
				}
			}
			res, err := call(ctx, a.(R), latest)
			if err != nil {
				return fail(domain.ErrorFrom(err))
			}
			return ok(res)
		},
	}
}

// Tap builds an observer for actions of type A.
func Tap[A action.Action](name string, fn func(ctx context.Context, a A)) Observer {
	return Observer{
		Name:  name,
		match: is[A],
		run: func(ctx context.Context, a action.Action) {
			fn(ctx, a.(A))
		},
	}
}

func is[A action.Action](a action.Action) bool {
	_, ok := a.(A)
	return ok
}

// Matches reports whether the reactor admits a.
func (r Reactor) Matches(a action.Action) bool { return r.match != nil && r.match(a) }

// Matches reports whether the observer runs for a.
func (o Observer) Matches(a action.Action) bool { return o.match != nil && o.match(a) }
