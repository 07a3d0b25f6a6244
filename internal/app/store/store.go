// Package store holds the client state container: the single place where
// state changes, always through a reducer in response to a dispatched action.
package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/ChatSync/internal/app/action"
)

// Dispatcher is the dispatch entry point handed to controllers and adapters.
type Dispatcher interface {
	Dispatch(action.Action)
}

// Interceptor sees every action right after the reducers ran, inside the
// dispatch critical section. Implementations must not block and must not
// call back into the Store.
type Interceptor interface {
	Intercept(State, action.Action)
}

type notice struct {
	action  action.Action
	state   State
	changed bool
	seq     uint64
	// target, when non-zero, restricts delivery to a single subscriber.
	target int
}

// A subscription only receives notices queued after it was registered.
type subscription[F any] struct {
	fn    F
	after uint64
}

// Store is created once at startup and closed at shutdown. Reductions are
// serialized; subscriber and action-listener callbacks are delivered by one
// goroutine in dispatch order.
type Store struct {
	mu           sync.Mutex
	state        State
	reduce       Reducer
	interceptors []Interceptor

	nextID    int
	seq       uint64
	subs      map[int]subscription[func(State)]
	listeners map[int]subscription[func(action.Action)]

	queue  []notice
	wake   chan struct{}
	done   chan struct{}
	closed bool
	wg     sync.WaitGroup
}

func New(initial State) *Store {
	return NewWithReducer(initial, Reduce)
}

func NewWithReducer(initial State, reduce Reducer) *Store {
	s := &Store{
		state:     initial,
		reduce:    reduce,
		subs:      make(map[int]subscription[func(State)]),
		listeners: make(map[int]subscription[func(action.Action)]),
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	s.wg.Add(1)
	go s.loop()
	s.Dispatch(action.Init{})
	return s
}

// Dispatch runs the reducers synchronously and queues notifications.
// It never fails; actions no reducer knows leave the state as is.
func (s *Store) Dispatch(a action.Action) {
	s.DispatchIf(a, nil)
}

// DispatchIf dispatches a only when ok, evaluated inside the dispatch
// critical section, reports true. A nil ok always dispatches.
func (s *Store) DispatchIf(a action.Action, ok func() bool) bool {
	if a == nil {
		log.Warn().Str("module", "app.store").Msg("nil action dropped")
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		log.Warn().Str("module", "app.store").Str("action", string(a.Type())).Msg("dispatch after close")
		return false
	}
	if ok != nil && !ok() {
		return false
	}

	prev := s.state
	next := s.reduce(prev, a)
	s.state = next
	changed := next != prev

	log.Debug().
		Str("module", "app.store").
		Str("action", string(a.Type())).
		Bool("changed", changed).
		Msg("dispatch")

	for _, i := range s.interceptors {
		i.Intercept(next, a)
	}
	s.enqueueLocked(notice{action: a, state: next, changed: changed})
	return true
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe delivers the current snapshot and then every changed snapshot
// until the returned func is called.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs[id] = subscription[func(State)]{fn: fn, after: s.seq}
	s.enqueueLocked(notice{state: s.state, changed: true, target: id})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// OnAction delivers every dispatched action, in order.
func (s *Store) OnAction(fn func(action.Action)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.listeners[id] = subscription[func(action.Action)]{fn: fn, after: s.seq}
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) Use(i Interceptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interceptors = append(s.interceptors, i)
}

// Remove detaches i. Once it returns, i is not running and will not be called.
func (s *Store) Remove(i Interceptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for n, cur := range s.interceptors {
		if cur == i {
			s.interceptors = append(s.interceptors[:n:n], s.interceptors[n+1:]...)
			return
		}
	}
}

// Close stops notification delivery. Pending notifications are dropped.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.done)
	s.mu.Unlock()
	s.wg.Wait()
	log.Info().Str("module", "app.store").Msg("store closed")
}

func (s *Store) enqueueLocked(n notice) {
	s.seq++
	n.seq = s.seq
	s.queue = append(s.queue, n)
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Store) loop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}
		for {
			s.mu.Lock()
			if s.closed || len(s.queue) == 0 {
				s.mu.Unlock()
				break
			}
			n := s.queue[0]
			s.queue[0] = notice{}
			s.queue = s.queue[1:]
			subs, listeners := s.recipientsLocked(n)
			s.mu.Unlock()

			for _, fn := range listeners {
				fn(n.action)
			}
			for _, fn := range subs {
				fn(n.state)
			}
		}
	}
}

func (s *Store) recipientsLocked(n notice) ([]func(State), []func(action.Action)) {
	var subs []func(State)
	var listeners []func(action.Action)
	if n.target != 0 {
		if sub, ok := s.subs[n.target]; ok {
			subs = append(subs, sub.fn)
		}
		return subs, nil
	}
	if n.action != nil {
		for _, l := range s.listeners {
			if n.seq > l.after {
				listeners = append(listeners, l.fn)
			}
		}
	}
	if n.changed {
		for _, sub := range s.subs {
			if n.seq > sub.after {
				subs = append(subs, sub.fn)
			}
		}
	}
	return subs, listeners
}

// WaitFor blocks until sel yields a value or ctx is done.
func WaitFor[V any](ctx context.Context, s *Store, sel func(State) (V, bool)) (V, error) {
	if v, ok := sel(s.State()); ok {
		return v, nil
	}
	ch := make(chan V, 1)
	unsubscribe := s.Subscribe(func(st State) {
		if v, ok := sel(st); ok {
			select {
			case ch <- v:
			default:
			}
		}
	})
	defer unsubscribe()

	select {
	case v := <-ch:
		return v, nil
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}
