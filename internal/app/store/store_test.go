package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/ChatSync/internal/app/action"
	"github.com/dkeye/ChatSync/internal/domain"
)

type recorder struct {
	mu      sync.Mutex
	actions []action.Type
	states  []State
}

func (r *recorder) onAction(a action.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, a.Type())
}

func (r *recorder) onState(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recorder) snapshot() ([]action.Type, []State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]action.Type(nil), r.actions...), append([]State(nil), r.states...)
}

func newStore(t *testing.T) *Store {
	t.Helper()
	s := New(InitialState())
	t.Cleanup(s.Close)
	return s
}

func TestStore_DispatchReducesSynchronously(t *testing.T) {
	s := newStore(t)
	s.Dispatch(action.GetCurrentUserSuccess{Payload: domain.User{ID: "u1"}})

	id, ok := CurrentUserID(s.State())
	require.True(t, ok)
	assert.Equal(t, domain.UserID("u1"), id)
	assert.Equal(t, "u1", string(CurrentUser(s.State()).ID))
}

func TestStore_ListenersSeeActionsInOrder(t *testing.T) {
	s := newStore(t)
	rec := &recorder{}
	s.OnAction(rec.onAction)

	s.Dispatch(action.GetUserByID{UserID: "u2"})
	s.Dispatch(action.GetUserByIDFailure{Error: domain.Error{Message: "x"}})
	s.Dispatch(action.Init{})

	require.Eventually(t, func() bool {
		got, _ := rec.snapshot()
		return len(got) == 3
	}, time.Second, 5*time.Millisecond)

	got, _ := rec.snapshot()
	assert.Equal(t, []action.Type{action.TypeGetUserByID, action.TypeGetUserByIDFailure, action.TypeInit}, got)
}

func TestStore_SubscribeGetsCurrentThenChanges(t *testing.T) {
	s := newStore(t)
	s.Dispatch(action.GetCurrentUserSuccess{Payload: domain.User{ID: "u1"}})

	rec := &recorder{}
	unsubscribe := s.Subscribe(rec.onState)

	// unknown action: no new snapshot
	s.Dispatch(action.Init{})
	s.Dispatch(action.GetRoom{CurrentUserID: "u1", UserID: "u2"})

	require.Eventually(t, func() bool {
		_, states := rec.snapshot()
		return len(states) == 2
	}, time.Second, 5*time.Millisecond)

	_, states := rec.snapshot()
	assert.Equal(t, domain.UserID("u1"), states[0].Auth.CurrentUser.ID)
	assert.False(t, states[0].Room.IsLoading)
	assert.True(t, states[1].Room.IsLoading)

	unsubscribe()
	s.Dispatch(action.GetRoomFailure{Error: domain.Error{Message: "gone"}})
	time.Sleep(20 * time.Millisecond)
	_, states = rec.snapshot()
	assert.Len(t, states, 2)
}

func TestStore_DispatchIf(t *testing.T) {
	s := newStore(t)

	ok := s.DispatchIf(action.GetCurrentUserSuccess{Payload: domain.User{ID: "u1"}}, func() bool { return false })
	assert.False(t, ok)
	assert.Nil(t, s.State().Auth.CurrentUser)

	ok = s.DispatchIf(action.GetCurrentUserSuccess{Payload: domain.User{ID: "u1"}}, func() bool { return true })
	assert.True(t, ok)
	assert.NotNil(t, s.State().Auth.CurrentUser)
}

type countingInterceptor struct {
	mu    sync.Mutex
	seen  []action.Type
	state []State
}

func (c *countingInterceptor) Intercept(s State, a action.Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = append(c.seen, a.Type())
	c.state = append(c.state, s)
}

func TestStore_InterceptorSeesReducedState(t *testing.T) {
	s := newStore(t)
	ic := &countingInterceptor{}
	s.Use(ic)

	s.Dispatch(action.GetCurrentUserSuccess{Payload: domain.User{ID: "u1"}})
	require.Len(t, ic.seen, 1)
	assert.Equal(t, domain.UserID("u1"), ic.state[0].Auth.CurrentUser.ID)

	s.Remove(ic)
	s.Dispatch(action.Init{})
	assert.Len(t, ic.seen, 1)
}

func TestStore_DispatchAfterCloseIsDropped(t *testing.T) {
	s := New(InitialState())
	s.Close()
	s.Dispatch(action.GetCurrentUserSuccess{Payload: domain.User{ID: "u1"}})
	assert.Nil(t, s.State().Auth.CurrentUser)
	s.Close()
}

func TestStore_NilActionIsDropped(t *testing.T) {
	s := newStore(t)
	rec := &recorder{}
	s.OnAction(rec.onAction)
	before := s.State()

	assert.NotPanics(t, func() { s.Dispatch(nil) })
	assert.False(t, s.DispatchIf(nil, nil))
	assert.Equal(t, before, s.State())

	s.Dispatch(action.GetCurrentUser{UserID: "u1"})
	require.Eventually(t, func() bool {
		actions, _ := rec.snapshot()
		return len(actions) == 1
	}, time.Second, 5*time.Millisecond)
	actions, _ := rec.snapshot()
	assert.Equal(t, []action.Type{action.TypeGetCurrentUser}, actions)
}

func TestWaitFor(t *testing.T) {
	s := newStore(t)

	go func() {
		time.Sleep(20 * time.Millisecond)
		s.Dispatch(action.GetCurrentUserSuccess{Payload: domain.User{ID: "u1"}})
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	id, err := WaitFor(ctx, s, CurrentUserID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("u1"), id)
}

func TestWaitFor_ContextDone(t *testing.T) {
	s := newStore(t)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := WaitFor(ctx, s, CurrentUserID)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
