package orch

import (
	"context"

	"github.com/dkeye/ChatSync/internal/app/action"
	"github.com/dkeye/ChatSync/internal/app/effects"
	"github.com/dkeye/ChatSync/internal/domain"
)

func (o *Orchestrator) roomReactors() []effects.Reactor {
	return []effects.Reactor{
		effects.SwitchMap(
			"getRoom",
			func(ctx context.Context, req action.GetRoom) (domain.RoomExtended, error) {
				return o.Rooms.GetRoom(ctx, req.CurrentUserID, req.UserID)
			},
			func(r domain.RoomExtended) action.Action { return action.GetRoomSuccess{Payload: r} },
			func(err domain.Error) action.Action { return action.GetRoomFailure{Error: err} },
		),
		effects.SwitchMap(
			"getRoomById",
			func(ctx context.Context, req action.GetRoomByID) (domain.RoomExtended, error) {
				return o.Rooms.GetRoomByID(ctx, req.CurrentUserID, req.RoomID)
			},
			func(r domain.RoomExtended) action.Action { return action.GetRoomByIDSuccess{Payload: r} },
			func(err domain.Error) action.Action { return action.GetRoomByIDFailure{Error: err} },
		),
		effects.SwitchMap(
			"createRoom",
			func(ctx context.Context, req action.CreateRoom) (domain.RoomExtended, error) {
				return o.Rooms.CreateRoom(ctx, req.CurrentUserID, req.UserID)
			},
			func(r domain.RoomExtended) action.Action { return action.CreateRoomSuccess{Payload: r} },
			func(err domain.Error) action.Action { return action.CreateRoomFailure{Error: err} },
		),
	}
}
