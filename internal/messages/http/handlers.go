package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/creatorpro/backend/internal/auth"
	"github.com/creatorpro/backend/internal/messages/domain"
)

type Store interface {
	List(ctx context.Context, userID int) ([]domain.Message, error)
	Create(ctx context.Context, m domain.NewMessage) (*domain.Message, error)
	MarkRead(ctx context.Context, id, userID int) (*domain.Message, error)
}

type Handler struct {
	store Store
	log   *zap.Logger
}

func New(store Store, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.POST("/:id/read", h.markRead)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		h.log.Error("list messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type createReq struct {
	RecipientID int    `json:"recipientId"`
	Content     string `json:"content"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || req.RecipientID <= 0 || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipientId and content are required"})
		return
	}

	m, err := h.store.Create(c.Request.Context(), domain.NewMessage{
		SenderID:    auth.UserID(c),
		RecipientID: req.RecipientID,
		Content:     req.Content,
	})
	if err != nil {
		h.log.Error("create message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *Handler) markRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	m, err := h.store.MarkRead(c.Request.Context(), id, auth.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
			return
		}
		h.log.Error("mark message read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update message"})
		return
	}
	c.JSON(http.StatusOK, m)
}
