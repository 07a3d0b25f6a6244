package api

import (
	"context"
	"net/http"

	"github.com/dkeye/ChatSync/internal/domain"
)

type RoomService struct{ c *Client }

func NewRoomService(c *Client) *RoomService { return &RoomService{c: c} }

func (s *RoomService) GetRoom(ctx context.Context, currentUserID, userID domain.UserID) (domain.RoomExtended, error) {
	var r domain.RoomExtended
	err := s.c.do(ctx, http.MethodGet, "/api/rooms", nil, &r, map[string]string{
		"currentUserId": string(currentUserID),
		"userId":        string(userID),
	})
	return r, err
}

func (s *RoomService) GetRoomByID(ctx context.Context, currentUserID domain.UserID, roomID domain.RoomID) (domain.RoomExtended, error) {
	var r domain.RoomExtended
	err := s.c.do(ctx, http.MethodGet, "/api/rooms/"+string(roomID), nil, &r, map[string]string{
		"currentUserId": string(currentUserID),
	})
	return r, err
}

func (s *RoomService) CreateRoom(ctx context.Context, currentUserID, userID domain.UserID) (domain.RoomExtended, error) {
	var r domain.RoomExtended
	err := s.c.do(ctx, http.MethodPost, "/api/rooms", map[string]domain.UserID{
		"currentUserId": currentUserID,
		"userId":        userID,
	}, &r, nil)
	return r, err
}
