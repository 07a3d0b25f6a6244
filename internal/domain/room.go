package domain

import (
	"slices"
	"time"
)

type RoomID string

type Room struct {
	ID             RoomID    `json:"id"`
	ParticipantIDs []UserID  `json:"participantIds"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// RoomExtended is a Room with its participants resolved to profiles.
type RoomExtended struct {
	Room
	Participants []User `json:"participants"`
}

func (r Room) Has(id UserID) bool {
	return slices.Contains(r.ParticipantIDs, id)
}

// Between reports whether r is the direct room of exactly a and b.
func (r Room) Between(a, b UserID) bool {
	return len(r.ParticipantIDs) == 2 && r.Has(a) && r.Has(b)
}
