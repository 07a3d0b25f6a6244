package core

import (
	"context"

	"github.com/dkeye/ChatSync/internal/domain"
)

// RoomService is the remote room API.
type RoomService interface {
	// GetRoom finds the direct room between currentUserID and userID.
	GetRoom(ctx context.Context, currentUserID, userID domain.UserID) (domain.RoomExtended, error)
	GetRoomByID(ctx context.Context, currentUserID domain.UserID, roomID domain.RoomID) (domain.RoomExtended, error)
	CreateRoom(ctx context.Context, currentUserID, userID domain.UserID) (domain.RoomExtended, error)
}
