// Package push keeps client state in line with the server: it listens for
// change notices on the backend websocket and dispatches refetch requests.
package push

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/ChatSync/internal/app/action"
	"github.com/dkeye/ChatSync/internal/app/store"
	"github.com/dkeye/ChatSync/internal/domain"
)

const (
	baseDelay = 100 * time.Millisecond
	maxDelay  = 5 * time.Second
)

type Store interface {
	store.Dispatcher
	State() store.State
}

type notice struct {
	Type           string          `json:"type"`
	ID             string          `json:"id"`
	ParticipantIDs []domain.UserID `json:"participantIds"`
}

type Feed struct {
	url   string
	store Store
}

func NewFeed(url string, st Store) *Feed {
	return &Feed{url: url, store: st}
}

// Run reconnects with exponential backoff until ctx is done.
func (f *Feed) Run(ctx context.Context) error {
	delay := baseDelay
	for {
		connected, err := f.session(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if connected {
			delay = baseDelay
		}
		log.Warn().Str("module", "adapters.push").Err(err).Dur("retry_in", delay).Msg("push feed disconnected")

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
		delay = min(delay*2, maxDelay)
	}
}

func (f *Feed) session(ctx context.Context) (connected bool, err error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, f.url, nil)
	if err != nil {
		return false, err
	}
	log.Info().Str("module", "adapters.push").Str("url", f.url).Msg("push feed connected")

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer func() {
		stop()
		_ = conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return true, err
		}
		var n notice
		if err := json.Unmarshal(data, &n); err != nil {
			log.Warn().Str("module", "adapters.push").Err(err).Msg("bad notice")
			continue
		}
		f.handle(n)
	}
}

func (f *Feed) handle(n notice) {
	st := f.store.State()
	me, loggedIn := store.CurrentUserID(st)

	switch n.Type {
	case "user_changed":
		id := domain.UserID(n.ID)
		if loggedIn && id == me {
			f.store.Dispatch(action.GetCurrentUser{UserID: id})
		}
		if v := store.ViewedUser(st); v != nil && v.ID == id {
			f.store.Dispatch(action.GetUserByID{UserID: id})
		}
	case "room_changed":
		if !loggedIn {
			return
		}
		id := domain.RoomID(n.ID)
		if cur, ok := store.CurrentRoomID(st); ok && cur == id {
			f.store.Dispatch(action.GetRoomByID{CurrentUserID: me, RoomID: id})
			return
		}
		// A room just opened with us while we look at its other participant.
		if v := store.ViewedUser(st); v != nil && store.CurrentRoom(st) == nil &&
			slices.Contains(n.ParticipantIDs, me) && slices.Contains(n.ParticipantIDs, v.ID) {
			f.store.Dispatch(action.GetRoomByID{CurrentUserID: me, RoomID: id})
		}
	default:
		log.Debug().Str("module", "adapters.push").Str("type", n.Type).Msg("unknown notice")
	}
}
