package push

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/ChatSync/internal/app/action"
	"github.com/dkeye/ChatSync/internal/app/store"
	"github.com/dkeye/ChatSync/internal/backend"
	"github.com/dkeye/ChatSync/internal/domain"
)

type fakeStore struct {
	mu         sync.Mutex
	state      store.State
	dispatched []action.Action
}

func (f *fakeStore) Dispatch(a action.Action) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dispatched = append(f.dispatched, a)
}

func (f *fakeStore) State() store.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeStore) actions() []action.Action {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]action.Action(nil), f.dispatched...)
}

func loggedIn(id domain.UserID) store.State {
	return store.State{Auth: store.AuthState{CurrentUser: &domain.User{ID: id}}}
}

func TestFeed_Handle(t *testing.T) {
	room := &domain.RoomExtended{Room: domain.Room{ID: "r1"}}

	tests := []struct {
		name  string
		state store.State
		n     notice
		want  []action.Action
	}{
		{
			name:  "current user changed",
			state: loggedIn("u1"),
			n:     notice{Type: "user_changed", ID: "u1"},
			want:  []action.Action{action.GetCurrentUser{UserID: "u1"}},
		},
		{
			name:  "other user changed",
			state: loggedIn("u1"),
			n:     notice{Type: "user_changed", ID: "u2"},
		},
		{
			name: "viewed user changed",
			state: store.State{
				Auth: store.AuthState{CurrentUser: &domain.User{ID: "u1"}},
				User: store.UserState{Viewed: &domain.User{ID: "u2"}},
			},
			n:    notice{Type: "user_changed", ID: "u2"},
			want: []action.Action{action.GetUserByID{UserID: "u2"}},
		},
		{
			name: "current room changed",
			state: store.State{
				Auth: store.AuthState{CurrentUser: &domain.User{ID: "u1"}},
				Room: store.RoomState{Current: room},
			},
			n:    notice{Type: "room_changed", ID: "r1"},
			want: []action.Action{action.GetRoomByID{CurrentUserID: "u1", RoomID: "r1"}},
		},
		{
			name: "room opened with viewed user",
			state: store.State{
				Auth: store.AuthState{CurrentUser: &domain.User{ID: "u1"}},
				User: store.UserState{Viewed: &domain.User{ID: "u2"}},
			},
			n:    notice{Type: "room_changed", ID: "r2", ParticipantIDs: []domain.UserID{"u2", "u1"}},
			want: []action.Action{action.GetRoomByID{CurrentUserID: "u1", RoomID: "r2"}},
		},
		{
			name: "unrelated room",
			state: store.State{
				Auth: store.AuthState{CurrentUser: &domain.User{ID: "u1"}},
				Room: store.RoomState{Current: room},
			},
			n: notice{Type: "room_changed", ID: "r9", ParticipantIDs: []domain.UserID{"u3", "u4"}},
		},
		{
			name:  "logged out",
			state: store.InitialState(),
			n:     notice{Type: "room_changed", ID: "r1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &fakeStore{state: tt.state}
			NewFeed("", st).handle(tt.n)
			assert.Equal(t, tt.want, st.actions())
		})
	}
}

func TestFeed_RunReceivesNotices(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srvCtx, srvCancel := context.WithCancel(context.Background())
	defer srvCancel()
	hub := backend.NewHub(4096, time.Second)
	srv := httptest.NewServer(backend.SetupRouter(srvCtx, backend.Options{Mode: "test"}, backend.NewRegistry(), hub))
	defer srv.Close()

	st := &fakeStore{state: loggedIn("u1")}
	feed := NewFeed("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/ws", st)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- feed.Run(ctx) }()

	require.Eventually(t, func() bool { return hub.Len() == 1 }, 2*time.Second, 5*time.Millisecond)
	hub.Broadcast(backend.Notice{Type: backend.NoticeUserChanged, ID: "u1"})

	require.Eventually(t, func() bool { return len(st.actions()) == 1 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, action.GetCurrentUser{UserID: "u1"}, st.actions()[0])

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("feed did not stop")
	}
}

func TestFeed_RunStopsWhileRetrying(t *testing.T) {
	st := &fakeStore{}
	feed := NewFeed("ws://127.0.0.1:1/api/ws", st)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	assert.NoError(t, feed.Run(ctx))
	assert.Empty(t, st.actions())
}
