package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/ChatSync/internal/domain"
)

var ErrBackpressure = errors.New("backpressure")

type NoticeType string

const (
	NoticeUserChanged NoticeType = "user_changed"
	NoticeRoomChanged NoticeType = "room_changed"
)

// Notice tells clients that a resource changed on the server. Clients refetch
// what they hold; the notice itself carries no payload.
type Notice struct {
	Type           NoticeType      `json:"type"`
	ID             string          `json:"id"`
	ParticipantIDs []domain.UserID `json:"participantIds,omitempty"`
}

const writeWait = 5 * time.Second

type hubConn struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *hubConn) TrySend(b []byte) error {
	select {
	case c.send <- b:
		return nil
	default:
		return ErrBackpressure
	}
}

func (c *hubConn) Close() {
	c.once.Do(func() {
		close(c.send)
		_ = c.conn.Close()
	})
}

// Hub fans notices out to every connected websocket client.
type Hub struct {
	mu         sync.RWMutex
	conns      map[string]*hubConn
	readLimit  int64
	pingPeriod time.Duration
}

func NewHub(readLimit int64, pingPeriod time.Duration) *Hub {
	if pingPeriod <= 0 {
		pingPeriod = 54 * time.Second
	}
	return &Hub{
		conns:      make(map[string]*hubConn),
		readLimit:  readLimit,
		pingPeriod: pingPeriod,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Serve upgrades the request and keeps the connection registered until the
// peer goes away or ctx is done.
func (h *Hub) Serve(ctx context.Context, c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Str("module", "backend.hub").Err(err).Msg("ws upgrade failed")
		return
	}
	conn := &hubConn{
		id:   uuid.NewString(),
		conn: ws,
		send: make(chan []byte, 32),
	}
	h.add(conn)

	ctx, cancel := context.WithCancel(ctx)
	go h.writePump(ctx, conn)
	go h.readPump(cancel, conn)
}

func (h *Hub) Broadcast(n Notice) {
	b, err := json.Marshal(n)
	if err != nil {
		log.Error().Str("module", "backend.hub").Err(err).Msg("marshal notice")
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, c := range h.conns {
		if err := c.TrySend(b); err != nil {
			log.Warn().Str("module", "backend.hub").Str("conn", id).Err(err).Msg("notice dropped")
		}
	}
	log.Debug().Str("module", "backend.hub").Str("type", string(n.Type)).Str("id", n.ID).Int("conns", len(h.conns)).Msg("broadcast")
}

// Len is the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

func (h *Hub) add(c *hubConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c.id] = c
	log.Info().Str("module", "backend.hub").Str("conn", c.id).Msg("client connected")
}

func (h *Hub) remove(c *hubConn) {
	h.mu.Lock()
	delete(h.conns, c.id)
	h.mu.Unlock()
	c.Close()
	log.Info().Str("module", "backend.hub").Str("conn", c.id).Msg("client disconnected")
}

func (h *Hub) writePump(ctx context.Context, c *hubConn) {
	ticker := time.NewTicker(h.pingPeriod)
	defer ticker.Stop()
	defer h.remove(c)
	for {
		select {
		case <-ctx.Done():
			return
		case data, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Debug().Str("module", "backend.hub").Str("conn", c.id).Err(err).Msg("write failed")
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// readPump only drains control frames; clients never send notices.
func (h *Hub) readPump(cancel context.CancelFunc, c *hubConn) {
	defer cancel()
	c.conn.SetReadLimit(h.readLimit)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
