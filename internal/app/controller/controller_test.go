package controller

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/ChatSync/internal/adapters/ui"
	"github.com/dkeye/ChatSync/internal/app/action"
	"github.com/dkeye/ChatSync/internal/app/store"
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

type alerts struct{ msgs []string }

func (a *alerts) Alert(msg string) { a.msgs = append(a.msgs, msg) }

func TestSignupController_Submit(t *testing.T) {
	tests := []struct {
		name string
		form SignupForm
		ok   bool
	}{
		{"valid", SignupForm{Name: "alice", Email: "alice@example.com", Password: "password1"}, true},
		{"multi-byte name", SignupForm{Name: "Żółćżółćżółć", Email: "zolc@example.com", Password: "password1"}, true},
		{"missing name", SignupForm{Email: "alice@example.com", Password: "password1"}, false},
		{"short name", SignupForm{Name: "al", Email: "alice@example.com", Password: "password1"}, false},
		{"long name", SignupForm{Name: strings.Repeat("a", 21), Email: "alice@example.com", Password: "password1"}, false},
		{"bad email", SignupForm{Name: "alice", Email: "alice", Password: "password1"}, false},
		{"short password", SignupForm{Name: "alice", Email: "alice@example.com", Password: "pass"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, al := &fakeStore{}, &alerts{}
			c := NewSignupController(st, al)

			assert.Equal(t, tt.ok, c.Submit(tt.form))
			if tt.ok {
				assert.Empty(t, al.msgs)
				assert.Equal(t, []action.Action{action.Register{Name: tt.form.Name, Email: tt.form.Email, Password: tt.form.Password}}, st.actions())
				return
			}
			assert.Equal(t, []string{InvalidFormMsg}, al.msgs)
			assert.Empty(t, st.actions())
		})
	}
}

func newConsole(state store.State) (*Console, *fakeStore, *alerts, *ui.Router, *bytes.Buffer) {
	st, al, out := &fakeStore{state: state}, &alerts{}, &bytes.Buffer{}
	router := ui.NewRouter("/home")
	return NewConsole(st, NewSignupController(st, al), router, al, out), st, al, router, out
}

func TestConsole_Exec(t *testing.T) {
	signedIn := store.State{Auth: store.AuthState{CurrentUser: &domain.User{ID: "u1", Name: "alice"}}}
	name := "alice-2"

	tests := []struct {
		name  string
		state store.State
		line  string
		want  []action.Action
		alert string
	}{
		{"me", store.InitialState(), "me u1", []action.Action{action.GetCurrentUser{UserID: "u1"}}, ""},
		{"user", store.InitialState(), "user u2", []action.Action{action.GetUserByID{UserID: "u2"}}, ""},
		{"block", signedIn, "block u2", []action.Action{action.BlockUser{UserID: "u2"}}, ""},
		{"rename", signedIn, "rename alice-2", []action.Action{action.UpdateCurrentUser{UserID: "u1", Data: domain.UserUpdate{Name: &name}}}, ""},
		{"room", signedIn, "room u2", []action.Action{action.GetRoom{CurrentUserID: "u1", UserID: "u2"}}, ""},
		{"open", signedIn, "open r1", []action.Action{action.GetRoomByID{CurrentUserID: "u1", RoomID: "r1"}}, ""},
		{"chat", signedIn, "chat u2", []action.Action{action.CreateRoom{CurrentUserID: "u1", UserID: "u2"}}, ""},
		{"signup", store.InitialState(), "signup carol carol@example.com password1", []action.Action{action.Register{Name: "carol", Email: "carol@example.com", Password: "password1"}}, ""},
		{"signup missing args", store.InitialState(), "signup carol", nil, InvalidFormMsg},
		{"room signed out", store.InitialState(), "room u2", nil, NotSignedInMsg},
		{"unknown", signedIn, "dance u2", nil, UsageMsg},
		{"missing arg", signedIn, "chat", nil, UsageMsg},
		{"blank", signedIn, "   ", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, st, al, _, _ := newConsole(tt.state)
			require.NoError(t, c.Exec(tt.line))
			assert.Equal(t, tt.want, st.actions())
			if tt.alert == "" {
				assert.Empty(t, al.msgs)
			} else {
				assert.Equal(t, []string{tt.alert}, al.msgs)
			}
		})
	}
}

func TestConsole_Navigates(t *testing.T) {
	signedIn := store.State{Auth: store.AuthState{CurrentUser: &domain.User{ID: "u1"}}}
	c, _, _, router, _ := newConsole(signedIn)

	require.NoError(t, c.Exec("user u2"))
	assert.Equal(t, "/home/users/u2", router.Current())
	require.NoError(t, c.Exec("open r1"))
	assert.Equal(t, []string{"/home", "/home/users/u2", "/home/messages/r1"}, router.History())
}

func TestConsole_Back(t *testing.T) {
	c, st, al, router, out := newConsole(store.InitialState())

	require.NoError(t, c.Exec("back"))
	assert.Equal(t, []string{NoHistoryMsg}, al.msgs)

	require.NoError(t, c.Exec("user u2"))
	require.NoError(t, c.Exec("back"))
	assert.Equal(t, "/home", router.Current())
	assert.Equal(t, []string{"/home"}, router.History())
	assert.Contains(t, out.String(), "view: /home")
	assert.Len(t, al.msgs, 1)
	assert.Equal(t, []action.Action{action.GetUserByID{UserID: "u2"}}, st.actions())
}

func TestConsole_State(t *testing.T) {
	c, _, _, _, out := newConsole(store.State{
		Auth: store.AuthState{CurrentUser: &domain.User{ID: "u1", Name: "alice"}},
		Room: store.RoomState{
			Current: &domain.RoomExtended{
				Room:         domain.Room{ID: "r1"},
				Participants: []domain.User{{Name: "alice"}, {Name: "bobby"}},
			},
			Error: &domain.Error{Message: "boom"},
		},
	})
	require.NoError(t, c.Exec("state"))

	assert.Contains(t, out.String(), "alice (u1)")
	assert.Contains(t, out.String(), "r1 [alice, bobby]")
	assert.Contains(t, out.String(), "error:   boom")
}

func TestConsole_Run(t *testing.T) {
	c, st, _, _, _ := newConsole(store.InitialState())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := c.Run(ctx, strings.NewReader("me u1\nquit\nme u2\n"))
	require.NoError(t, err)
	assert.Equal(t, []action.Action{action.GetCurrentUser{UserID: "u1"}}, st.actions())
}
