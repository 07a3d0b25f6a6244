package action

import "github.com/dkeye/ChatSync/internal/domain"

const (
	TypeGetCurrentUser        Type = "[User] Get Current User"
	TypeGetCurrentUserSuccess Type = "[User] Get Current User Success"
	TypeGetCurrentUserFailure Type = "[User] Get Current User Failure"

	TypeUpdateCurrentUser        Type = "[User] Update Current User"
	TypeUpdateCurrentUserSuccess Type = "[User] Update Current User Success"
	TypeUpdateCurrentUserFailure Type = "[User] Update Current User Failure"

	TypeGetUserByID        Type = "[User] Get User By Id"
	TypeGetUserByIDSuccess Type = "[User] Get User By Id Success"
	TypeGetUserByIDFailure Type = "[User] Get User By Id Failure"

	TypeBlockUser        Type = "[User] Block User"
	TypeBlockUserSuccess Type = "[User] Block User Success"
	TypeBlockUserFailure Type = "[User] Block User Failure"
)

// Get current user

type GetCurrentUser struct {
	req
	UserID domain.UserID
}

type GetCurrentUserSuccess struct {
	kind
	Payload domain.User
}

type GetCurrentUserFailure struct {
	kind
	Error domain.Error
}

func (GetCurrentUser) Type() Type        { return TypeGetCurrentUser }
func (GetCurrentUserSuccess) Type() Type { return TypeGetCurrentUserSuccess }
func (GetCurrentUserFailure) Type() Type { return TypeGetCurrentUserFailure }

func (a GetCurrentUserFailure) Err() domain.Error { return a.Error }

// Update current user

type UpdateCurrentUser struct {
	req
	UserID domain.UserID
	Data   domain.UserUpdate
}

type UpdateCurrentUserSuccess struct {
	kind
	Payload domain.User
}

type UpdateCurrentUserFailure struct {
	kind
	Error domain.Error
}

func (UpdateCurrentUser) Type() Type        { return TypeUpdateCurrentUser }
func (UpdateCurrentUserSuccess) Type() Type { return TypeUpdateCurrentUserSuccess }
func (UpdateCurrentUserFailure) Type() Type { return TypeUpdateCurrentUserFailure }

func (a UpdateCurrentUserFailure) Err() domain.Error { return a.Error }

// Get user by id

type GetUserByID struct {
	req
	UserID domain.UserID
}

type GetUserByIDSuccess struct {
	kind
	Payload domain.User
}

type GetUserByIDFailure struct {
	kind
	Error domain.Error
}

func (GetUserByID) Type() Type        { return TypeGetUserByID }
func (GetUserByIDSuccess) Type() Type { return TypeGetUserByIDSuccess }
func (GetUserByIDFailure) Type() Type { return TypeGetUserByIDFailure }

func (a GetUserByIDFailure) Err() domain.Error { return a.Error }

// Block user. The acting user is taken from state, not from the request.

type BlockUser struct {
	req
	UserID domain.UserID
}

type BlockUserSuccess struct {
	kind
	Payload domain.User
}

type BlockUserFailure struct {
	kind
	Error domain.Error
}

func (BlockUser) Type() Type        { return TypeBlockUser }
func (BlockUserSuccess) Type() Type { return TypeBlockUserSuccess }
func (BlockUserFailure) Type() Type { return TypeBlockUserFailure }

func (a BlockUserFailure) Err() domain.Error { return a.Error }
