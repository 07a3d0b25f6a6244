// Package domain contains entities without transport or state logic, just data
package domain

import (
	"errors"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MinUserNameLen = 5
	MaxUserNameLen = 20
	MaxAboutLen    = 280
)

var (
	ErrUserNameTooLong  = errors.New("user name too long")
	ErrUserNameTooShort = errors.New("user name too short")
	ErrAboutTooLong     = errors.New("about too long")
	ErrBlockSelf        = errors.New("cannot block yourself")
)

type UserID string

type User struct {
	ID        UserID    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	About     string    `json:"about,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Blocked   []UserID  `json:"blocked,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserUpdate is a partial profile change; nil fields are left untouched.
type UserUpdate struct {
	Name      *string `json:"name,omitempty"`
	About     *string `json:"about,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// Registration is the sign-up input.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewUser is a tiny helper to avoid ad-hoc struct literals in adapters.
func NewUser(name, email string) (*User, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return &User{
		ID:        UserID(uuid.NewString()),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Apply returns a copy of u with the non-nil fields of upd applied.
func (u User) Apply(upd UserUpdate) (User, error) {
	if upd.Name != nil {
		if err := checkName(*upd.Name); err != nil {
			return u, err
		}
		u.Name = *upd.Name
	}
	if upd.About != nil {
		if utf8.RuneCountInString(*upd.About) > MaxAboutLen {
			return u, ErrAboutTooLong
		}
		u.About = *upd.About
	}
	if upd.AvatarURL != nil {
		u.AvatarURL = *upd.AvatarURL
	}
	return u, nil
}

// Block returns a copy of u with id on its block list.
func (u User) Block(id UserID) (User, error) {
	if id == u.ID {
		return u, ErrBlockSelf
	}
	if u.HasBlocked(id) {
		return u, nil
	}
	u.Blocked = append(slices.Clone(u.Blocked), id)
	return u, nil
}

func (u User) HasBlocked(id UserID) bool {
	return slices.Contains(u.Blocked, id)
}

// Lengths count characters, not bytes.
func checkName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < MinUserNameLen {
		return ErrUserNameTooShort
	}
	if n > MaxUserNameLen {
		return ErrUserNameTooLong
	}
	return nil
}
