// Package core declares the ports the client state layer talks through.
// Implementations live in internal/adapters.
package core

import (
	"context"

	"github.com/dkeye/ChatSync/internal/domain"
)

// UserService is the remote user API. One call per use case; no retry, no cache.
type UserService interface {
	GetUser(ctx context.Context, id domain.UserID) (domain.User, error)
	UpdateUser(ctx context.Context, id domain.UserID, data domain.UserUpdate) (domain.User, error)
	// BlockUser returns the acting user with userID on its block list.
	BlockUser(ctx context.Context, currentUserID, userID domain.UserID) (domain.User, error)
}

// AuthService is the remote sign-up API.
type AuthService interface {
	Register(ctx context.Context, reg domain.Registration) (domain.User, error)
}
