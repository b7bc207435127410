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
	"github.com/creatorpro/backend/internal/files/domain"
)

type Store interface {
	List(ctx context.Context, userID int) ([]domain.File, error)
	Create(ctx context.Context, f domain.NewFile) (*domain.File, error)
	Delete(ctx context.Context, id, userID int) error
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
	rg.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		h.log.Error("list files", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch files"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type createReq struct {
	Name      string  `json:"name"`
	Path      string  `json:"path"`
	Type      *string `json:"type"`
	Size      *int    `json:"size"`
	ProjectID *int    `json:"projectId"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Path) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and path are required"})
		return
	}

	f, err := h.store.Create(c.Request.Context(), domain.NewFile{
		Name:      strings.TrimSpace(req.Name),
		Path:      strings.TrimSpace(req.Path),
		Type:      req.Type,
		Size:      req.Size,
		ProjectID: req.ProjectID,
		UserID:    auth.UserID(c),
	})
	if err != nil {
		h.log.Error("create file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create file"})
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.store.Delete(c.Request.Context(), id, auth.UserID(c)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		h.log.Error("delete file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
