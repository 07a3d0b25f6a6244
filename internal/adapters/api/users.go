package api

import (
	"context"
	"net/http"

	"github.com/dkeye/ChatSync/internal/domain"
)

type UserService struct{ c *Client }

func NewUserService(c *Client) *UserService { return &UserService{c: c} }

func (s *UserService) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	var u domain.User
	err := s.c.do(ctx, http.MethodGet, "/api/users/"+string(id), nil, &u, nil)
	return u, err
}

func (s *UserService) UpdateUser(ctx context.Context, id domain.UserID, data domain.UserUpdate) (domain.User, error) {
	var u domain.User
	err := s.c.do(ctx, http.MethodPatch, "/api/users/"+string(id), data, &u, nil)
	return u, err
}

func (s *UserService) BlockUser(ctx context.Context, currentUserID, userID domain.UserID) (domain.User, error) {
	var u domain.User
	body := map[string]domain.UserID{"userId": userID}
	err := s.c.do(ctx, http.MethodPost, "/api/users/"+string(currentUserID)+"/block", body, &u, nil)
	return u, err
}

type AuthService struct{ c *Client }

func NewAuthService(c *Client) *AuthService { return &AuthService{c: c} }

func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	var u domain.User
	err := s.c.do(ctx, http.MethodPost, "/api/auth/register", reg, &u, nil)
	return u, err
}
