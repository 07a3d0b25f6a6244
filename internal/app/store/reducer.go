package store

import (
	"github.com/dkeye/ChatSync/internal/app/action"
	"github.com/dkeye/ChatSync/internal/domain"
)

// Reducer maps (state, action) to the next state. It must be pure.
type Reducer func(State, action.Action) State

// Reduce is the root reducer: every slice sees every action.
func Reduce(s State, a action.Action) State {
	s.Auth = ReduceAuth(s.Auth, a)
	s.User = ReduceUser(s.User, a)
	s.Room = ReduceRoom(s.Room, a)
	return s
}

func ReduceAuth(s AuthState, a action.Action) AuthState {
	switch a := a.(type) {
	case action.Register:
		s.IsSubmitting = true
		s.Error = nil
	case action.RegisterSuccess:
		s.IsSubmitting = false
		s.CurrentUser = userPtr(a.Payload)
		s.Error = nil
	case action.RegisterFailure:
		s.IsSubmitting = false
		s.Error = errPtr(a.Error)

	case action.GetCurrentUser, action.UpdateCurrentUser, action.BlockUser:
		s.IsLoading = true
		s.Error = nil
	case action.GetCurrentUserSuccess:
		s = currentUserLoaded(s, a.Payload)
	case action.UpdateCurrentUserSuccess:
		s = currentUserLoaded(s, a.Payload)
	case action.BlockUserSuccess:
		s = currentUserLoaded(s, a.Payload)
	case action.GetCurrentUserFailure:
		s = currentUserFailed(s, a.Error)
	case action.UpdateCurrentUserFailure:
		s = currentUserFailed(s, a.Error)
	case action.BlockUserFailure:
		s = currentUserFailed(s, a.Error)
	}
	return s
}

func ReduceUser(s UserState, a action.Action) UserState {
	switch a := a.(type) {
	case action.GetUserByID:
		s.IsLoading = true
		s.Error = nil
	case action.GetUserByIDSuccess:
		s.IsLoading = false
		s.Viewed = userPtr(a.Payload)
		s.Error = nil
	case action.GetUserByIDFailure:
		s.IsLoading = false
		s.Error = errPtr(a.Error)
	}
	return s
}

func ReduceRoom(s RoomState, a action.Action) RoomState {
	switch a := a.(type) {
	case action.GetRoom, action.GetRoomByID, action.CreateRoom:
		s.IsLoading = true
		s.Error = nil
	case action.GetRoomSuccess:
		s = roomLoaded(s, a.Payload)
	case action.GetRoomByIDSuccess:
		s = roomLoaded(s, a.Payload)
	case action.CreateRoomSuccess:
		s = roomLoaded(s, a.Payload)
	case action.GetRoomFailure:
		s = roomFailed(s, a.Error)
	case action.GetRoomByIDFailure:
		s = roomFailed(s, a.Error)
	case action.CreateRoomFailure:
		s = roomFailed(s, a.Error)
	}
	return s
}

func currentUserLoaded(s AuthState, u domain.User) AuthState {
	s.IsLoading = false
	s.CurrentUser = userPtr(u)
	s.Error = nil
	return s
}

// A failure never clears the last good payload.
func currentUserFailed(s AuthState, err domain.Error) AuthState {
	s.IsLoading = false
	s.Error = errPtr(err)
	return s
}

func roomLoaded(s RoomState, r domain.RoomExtended) RoomState {
	s.IsLoading = false
	s.Current = &r
	s.Error = nil
	return s
}

func roomFailed(s RoomState, err domain.Error) RoomState {
	s.IsLoading = false
	s.Error = errPtr(err)
	return s
}

func userPtr(u domain.User) *domain.User { return &u }

func errPtr(e domain.Error) *domain.Error { return &e }
