package store

import "github.com/dkeye/ChatSync/internal/domain"

// State is the whole client state tree. It is a comparable value: payloads
// are held by pointer and replaced, never mutated, so == tells whether a
// reducer changed anything.
type State struct {
	Auth AuthState
	User UserState
	Room RoomState
}

type AuthState struct {
	CurrentUser  *domain.User
	IsSubmitting bool
	IsLoading    bool
	Error        *domain.Error
}

type UserState struct {
	Viewed    *domain.User
	IsLoading bool
	Error     *domain.Error
}

type RoomState struct {
	Current   *domain.RoomExtended
	IsLoading bool
	Error     *domain.Error
}

func InitialState() State { return State{} }
