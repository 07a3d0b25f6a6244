package effects

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/ChatSync/internal/app/action"
	"github.com/dkeye/ChatSync/internal/app/store"
	"github.com/dkeye/ChatSync/internal/domain"
)

// runner tracks the in-flight call of one reactor. gen and cancel are only
// touched inside the store's dispatch critical section.
type runner struct {
	Reactor
	gen    uint64
	cancel context.CancelFunc
}

type Engine struct {
	store     *store.Store
	reactors  []*runner
	observers []Observer

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(st *store.Store) *Engine {
	return &Engine{store: st}
}

// Register adds reactors. Call before Start.
func (e *Engine) Register(rs ...Reactor) {
	for _, r := range rs {
		e.reactors = append(e.reactors, &runner{Reactor: r})
	}
}

// Observe adds observers. Call before Start.
func (e *Engine) Observe(os ...Observer) {
	e.observers = append(e.observers, os...)
}

// Start attaches the engine to the store. Calls run under a context derived
// from ctx.
func (e *Engine) Start(ctx context.Context) {
	e.ctx, e.cancel = context.WithCancel(ctx)
	e.store.Use(e)
	log.Info().
		Str("module", "app.effects").
		Int("reactors", len(e.reactors)).
		Int("observers", len(e.observers)).
		Msg("effects engine started")
}

// Stop detaches from the store, cancels every in-flight call and waits for
// them. Nothing is dispatched after Stop returns.
func (e *Engine) Stop() {
	if e.cancel == nil {
		return
	}
	e.store.Remove(e)
	e.cancel()
	e.wg.Wait()
	log.Info().Str("module", "app.effects").Msg("effects engine stopped")
}

// Intercept implements store.Interceptor.
func (e *Engine) Intercept(snapshot store.State, a action.Action) {
	if e.ctx.Err() != nil {
		return
	}
	for _, r := range e.reactors {
		if r.Matches(a) {
			e.admit(r, snapshot, a)
		}
	}
	for _, o := range e.observers {
		if o.Matches(a) {
			e.observe(o, a)
		}
	}
}

func (e *Engine) admit(r *runner, snapshot store.State, a action.Action) {
	if r.cancel != nil {
		log.Debug().Str("module", "app.effects").Str("effect", r.Name).Msg("superseding in-flight call")
		r.cancel()
	}
	r.gen++
	gen := r.gen
	ctx, cancel := context.WithCancel(e.ctx)
	r.cancel = cancel

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer cancel()

		out := e.run(ctx, r, env{snapshot: snapshot, store: e.store}, a)
		delivered := e.store.DispatchIf(out, func() bool {
			if r.gen != gen || e.ctx.Err() != nil {
				return false
			}
			r.cancel = nil
			return true
		})
		if !delivered {
			log.Debug().
				Str("module", "app.effects").
				Str("effect", r.Name).
				Str("outcome", string(out.Type())).
				Msg("stale outcome dropped")
			return
		}
		if f, ok := out.(action.Failure); ok {
			log.Warn().
				Str("module", "app.effects").
				Str("effect", r.Name).
				Str("error", f.Err().Message).
				Msg("request failed")
		}
	}()
}

func (e *Engine) run(ctx context.Context, r *runner, en env, a action.Action) (out action.Action) {
	defer func() {
		if p := recover(); p != nil {
			log.Error().Str("module", "app.effects").Str("effect", r.Name).Interface("panic", p).Msg("effect panicked")
			out = r.fail(domain.Error{Message: fmt.Sprint(p)})
		}
	}()
	return r.run(ctx, en, a)
}

func (e *Engine) observe(o Observer, a action.Action) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer func() {
			if p := recover(); p != nil {
				log.Error().Str("module", "app.effects").Str("effect", o.Name).Interface("panic", p).Msg("observer panicked")
			}
		}()
		o.run(e.ctx, a)
	}()
}
