package action

import "github.com/dkeye/ChatSync/internal/domain"

const (
	TypeGetRoom        Type = "[Room] Get Room"
	TypeGetRoomSuccess Type = "[Room] Get Room Success"
	TypeGetRoomFailure Type = "[Room] Get Room Failure"

	TypeGetRoomByID        Type = "[Room] Get Room By Id"
	TypeGetRoomByIDSuccess Type = "[Room] Get Room By Id Success"
	TypeGetRoomByIDFailure Type = "[Room] Get Room By Id Failure"

	TypeCreateRoom        Type = "[Room] Create Room"
	TypeCreateRoomSuccess Type = "[Room] Create Room Success"
	TypeCreateRoomFailure Type = "[Room] Create Room Failure"
)

// Get room between the current user and another user

type GetRoom struct {
	req
	CurrentUserID domain.UserID
	UserID        domain.UserID
}

type GetRoomSuccess struct {
	kind
	Payload domain.RoomExtended
}

type GetRoomFailure struct {
	kind
	Error domain.Error
}

func (GetRoom) Type() Type        { return TypeGetRoom }
func (GetRoomSuccess) Type() Type { return TypeGetRoomSuccess }
func (GetRoomFailure) Type() Type { return TypeGetRoomFailure }

func (a GetRoomFailure) Err() domain.Error { return a.Error }

// Get room by id

type GetRoomByID struct {
	req
	CurrentUserID domain.UserID
	RoomID        domain.RoomID
}

type GetRoomByIDSuccess struct {
	kind
	Payload domain.RoomExtended
}

type GetRoomByIDFailure struct {
	kind
	Error domain.Error
}

func (GetRoomByID) Type() Type        { return TypeGetRoomByID }
func (GetRoomByIDSuccess) Type() Type { return TypeGetRoomByIDSuccess }
func (GetRoomByIDFailure) Type() Type { return TypeGetRoomByIDFailure }

func (a GetRoomByIDFailure) Err() domain.Error { return a.Error }

// Create room

type CreateRoom struct {
	req
	CurrentUserID domain.UserID
	UserID        domain.UserID
}

type CreateRoomSuccess struct {
	kind
	Payload domain.RoomExtended
}

type CreateRoomFailure struct {
	kind
	Error domain.Error
}

func (CreateRoom) Type() Type        { return TypeCreateRoom }
func (CreateRoomSuccess) Type() Type { return TypeCreateRoomSuccess }
func (CreateRoomFailure) Type() Type { return TypeCreateRoomFailure }

func (a CreateRoomFailure) Err() domain.Error { return a.Error }
