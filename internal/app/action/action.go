// Package action is the closed catalog of intents and outcomes the store
// understands. Every use case has a request, a success and a failure variant,
// each with its own globally unique Type.
package action

import "github.com/dkeye/ChatSync/internal/domain"

type Type string

// Action is sealed: only types declared in this package implement it.
type Action interface {
	Type() Type
	sealed()
}

// Request is an intent that an effect answers with exactly one outcome.
type Request interface {
	Action
	request()
}

// Failure is an outcome carrying a normalized error.
type Failure interface {
	Action
	Err() domain.Error
}

type kind struct{}

func (kind) sealed() {}

type req struct{ kind }

func (req) request() {}

// Init is dispatched once when a store is created. No reducer handles it.
type Init struct{ kind }

const TypeInit Type = "@store/init"

func (Init) Type() Type { return TypeInit }

// All returns one zero value of every action variant.
func All() []Action {
	return []Action{
		Init{},

		Register{}, RegisterSuccess{}, RegisterFailure{},

		GetCurrentUser{}, GetCurrentUserSuccess{}, GetCurrentUserFailure{},
		UpdateCurrentUser{}, UpdateCurrentUserSuccess{}, UpdateCurrentUserFailure{},
		GetUserByID{}, GetUserByIDSuccess{}, GetUserByIDFailure{},
		BlockUser{}, BlockUserSuccess{}, BlockUserFailure{},

		GetRoom{}, GetRoomSuccess{}, GetRoomFailure{},
		GetRoomByID{}, GetRoomByIDSuccess{}, GetRoomByIDFailure{},
		CreateRoom{}, CreateRoomSuccess{}, CreateRoomFailure{},
	}
}
