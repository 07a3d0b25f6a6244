package backend

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/ChatSync/internal/domain"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type blockRequest struct {
	UserID domain.UserID `json:"userId" binding:"required"`
}

type createRoomRequest struct {
	CurrentUserID domain.UserID `json:"currentUserId" binding:"required"`
	UserID        domain.UserID `json:"userId" binding:"required"`
}

type handlers struct {
	reg *Registry
	hub *Hub
}

func (h *handlers) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration"})
		return
	}
	u, err := h.reg.Register(domain.Registration{Name: req.Name, Email: req.Email, Password: req.Password})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *handlers) getUser(c *gin.Context) {
	u, err := h.reg.User(domain.UserID(c.Param("id")))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *handlers) updateUser(c *gin.Context) {
	var upd domain.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update"})
		return
	}
	u, err := h.reg.UpdateUser(domain.UserID(c.Param("id")), upd)
	if err != nil {
		fail(c, err)
		return
	}
	h.hub.Broadcast(Notice{Type: NoticeUserChanged, ID: string(u.ID)})
	c.JSON(http.StatusOK, u)
}

func (h *handlers) blockUser(c *gin.Context) {
	var req blockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing userId"})
		return
	}
	u, err := h.reg.Block(domain.UserID(c.Param("id")), req.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	h.hub.Broadcast(Notice{Type: NoticeUserChanged, ID: string(u.ID)})
	c.JSON(http.StatusOK, u)
}

func (h *handlers) getRoom(c *gin.Context) {
	current, other := domain.UserID(c.Query("currentUserId")), domain.UserID(c.Query("userId"))
	if current == "" || other == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currentUserId and userId are required"})
		return
	}
	room, err := h.reg.RoomBetween(current, other)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *handlers) getRoomByID(c *gin.Context) {
	room, err := h.reg.RoomByID(domain.UserID(c.Query("currentUserId")), domain.RoomID(c.Param("id")))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *handlers) createRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currentUserId and userId are required"})
		return
	}
	room, created, err := h.reg.CreateRoom(req.CurrentUserID, req.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, room)
		return
	}
	h.hub.Broadcast(Notice{Type: NoticeRoomChanged, ID: string(room.ID), ParticipantIDs: room.ParticipantIDs})
	c.JSON(http.StatusCreated, room)
}

func fail(c *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		log.Error().Str("module", "backend.http").Str("path", c.FullPath()).Err(err).Msg("request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, ErrNotMember), errors.Is(err, ErrBlocked):
		return http.StatusForbidden
	case errors.Is(err, ErrSameUser),
		errors.Is(err, domain.ErrBlockSelf),
		errors.Is(err, domain.ErrUserNameTooShort),
		errors.Is(err, domain.ErrUserNameTooLong),
		errors.Is(err, domain.ErrAboutTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
