// Package backend is the in-memory development server the client talks to in
// local runs and adapter tests.
package backend

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/dkeye/ChatSync/internal/domain"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrRoomNotFound = errors.New("room not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrNotMember    = errors.New("not a participant of this room")
	ErrSameUser     = errors.New("cannot open a room with yourself")
	ErrBlocked      = errors.New("user is blocked")
)

type account struct {
	user     domain.User
	password []byte
}

type Registry struct {
	mu     sync.RWMutex
	users  map[domain.UserID]*account
	emails map[string]domain.UserID
	rooms  map[domain.RoomID]*domain.Room
	cost   int
}

func NewRegistry() *Registry {
	return NewRegistryWithCost(bcrypt.DefaultCost)
}

// NewRegistryWithCost sets the bcrypt cost used for new passwords.
func NewRegistryWithCost(cost int) *Registry {
	return &Registry{
		users:  make(map[domain.UserID]*account),
		emails: make(map[string]domain.UserID),
		rooms:  make(map[domain.RoomID]*domain.Room),
		cost:   cost,
	}
}

func (r *Registry) Register(reg domain.Registration) (domain.User, error) {
	u, err := domain.NewUser(reg.Name, reg.Email)
	if err != nil {
		return domain.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), r.cost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	email := strings.ToLower(reg.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.emails[email]; ok {
		return domain.User{}, ErrEmailTaken
	}
	r.users[u.ID] = &account{user: *u, password: hash}
	r.emails[email] = u.ID
	log.Info().Str("module", "backend.registry").Str("user", string(u.ID)).Msg("registered user")
	return *u, nil
}

func (r *Registry) User(id domain.UserID) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.users[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return acc.user, nil
}

func (r *Registry) UpdateUser(id domain.UserID, upd domain.UserUpdate) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.users[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	u, err := acc.user.Apply(upd)
	if err != nil {
		return domain.User{}, err
	}
	acc.user = u
	log.Info().Str("module", "backend.registry").Str("user", string(id)).Msg("updated user")
	return u, nil
}

// Block puts userID on currentUserID's block list and returns the acting user.
func (r *Registry) Block(currentUserID, userID domain.UserID) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.users[currentUserID]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	if _, ok := r.users[userID]; !ok {
		return domain.User{}, ErrUserNotFound
	}
	u, err := acc.user.Block(userID)
	if err != nil {
		return domain.User{}, err
	}
	acc.user = u
	log.Info().Str("module", "backend.registry").Str("user", string(currentUserID)).Str("blocked", string(userID)).Msg("blocked user")
	return u, nil
}

// RoomBetween returns the direct room of the two users.
func (r *Registry) RoomBetween(currentUserID, userID domain.UserID) (domain.RoomExtended, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.findLocked(currentUserID, userID)
	if !ok {
		return domain.RoomExtended{}, ErrRoomNotFound
	}
	return r.extendLocked(room), nil
}

func (r *Registry) RoomByID(currentUserID domain.UserID, id domain.RoomID) (domain.RoomExtended, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[id]
	if !ok {
		return domain.RoomExtended{}, ErrRoomNotFound
	}
	if !room.Has(currentUserID) {
		return domain.RoomExtended{}, ErrNotMember
	}
	return r.extendLocked(room), nil
}

// CreateRoom returns the direct room of the two users, creating it when
// missing. created is false when the room already existed.
func (r *Registry) CreateRoom(currentUserID, userID domain.UserID) (room domain.RoomExtended, created bool, err error) {
	if currentUserID == userID {
		return domain.RoomExtended{}, false, ErrSameUser
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	me, ok := r.users[currentUserID]
	if !ok {
		return domain.RoomExtended{}, false, ErrUserNotFound
	}
	other, ok := r.users[userID]
	if !ok {
		return domain.RoomExtended{}, false, ErrUserNotFound
	}
	if me.user.HasBlocked(userID) || other.user.HasBlocked(currentUserID) {
		return domain.RoomExtended{}, false, ErrBlocked
	}
	if existing, ok := r.findLocked(currentUserID, userID); ok {
		return r.extendLocked(existing), false, nil
	}

	now := time.Now().UTC()
	nr := &domain.Room{
		ID:             domain.RoomID(uuid.NewString()),
		ParticipantIDs: []domain.UserID{currentUserID, userID},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	r.rooms[nr.ID] = nr
	log.Info().Str("module", "backend.registry").Str("room", string(nr.ID)).Msg("created room")
	return r.extendLocked(nr), true, nil
}

func (r *Registry) findLocked(a, b domain.UserID) (*domain.Room, bool) {
	for _, room := range r.rooms {
		if room.Between(a, b) {
			return room, true
		}
	}
	return nil, false
}

func (r *Registry) extendLocked(room *domain.Room) domain.RoomExtended {
	out := domain.RoomExtended{
		Room:         *room,
		Participants: make([]domain.User, 0, len(room.ParticipantIDs)),
	}
	out.ParticipantIDs = slices.Clone(room.ParticipantIDs)
	for _, id := range room.ParticipantIDs {
		if acc, ok := r.users[id]; ok {
			out.Participants = append(out.Participants, acc.user)
		}
	}
	return out
}
