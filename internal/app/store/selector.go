package store

import "github.com/dkeye/ChatSync/internal/domain"

// Selector is a pure read-only view over State.
type Selector[V any] func(State) V

func CurrentUser(s State) *domain.User { return s.Auth.CurrentUser }

// CurrentUserID reports false until a current user has been loaded.
func CurrentUserID(s State) (domain.UserID, bool) {
	if s.Auth.CurrentUser == nil || s.Auth.CurrentUser.ID == "" {
		return "", false
	}
	return s.Auth.CurrentUser.ID, true
}

func ViewedUser(s State) *domain.User { return s.User.Viewed }

func CurrentRoom(s State) *domain.RoomExtended { return s.Room.Current }

func CurrentRoomID(s State) (domain.RoomID, bool) {
	if s.Room.Current == nil {
		return "", false
	}
	return s.Room.Current.ID, true
}

func AuthError(s State) *domain.Error { return s.Auth.Error }
func UserError(s State) *domain.Error { return s.User.Error }
func RoomError(s State) *domain.Error { return s.Room.Error }

// IsLoading reports whether any slice has a request in flight.
func IsLoading(s State) bool {
	return s.Auth.IsSubmitting || s.Auth.IsLoading || s.User.IsLoading || s.Room.IsLoading
}
