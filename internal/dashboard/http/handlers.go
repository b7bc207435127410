package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/creatorpro/backend/internal/auth"
	"github.com/creatorpro/backend/internal/dashboard/repository"
)

type Store interface {
	Get(ctx context.Context, userID int) (*repository.Stats, error)
}

type Handler struct {
	store Store
	log   *zap.Logger
}

func New(store Store, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) stats(c *gin.Context) {
	userID := auth.UserID(c)

	stats, err := h.store.Get(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("failed to load dashboard stats", zap.Int("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/stats", h.stats)
}
