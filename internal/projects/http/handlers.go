package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/creatorpro/backend/internal/auth"
	"github.com/creatorpro/backend/internal/projects/domain"
)

type createReq struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	ClientID    *int       `json:"clientId"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	Progress    *int       `json:"progress"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || len(strings.TrimSpace(req.Name)) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project name must be at least 3 characters"})
		return
	}
	if req.Status == "" {
		req.Status = "active"
	}

	progress := 0
	if req.Progress != nil {
		progress = clampProgress(*req.Progress)
	}

	p, err := h.store.Create(c.Request.Context(), domain.NewProject{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ClientID:    req.ClientID,
		Status:      req.Status,
		DueDate:     req.DueDate,
		Progress:    progress,
		UserID:      auth.UserID(c),
	})
	if err != nil {
		h.log.Error("create project", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		h.log.Error("list projects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch projects"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := h.store.GetByID(c.Request.Context(), id, auth.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		h.log.Error("get project", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch project"})
		return
	}
	c.JSON(http.StatusOK, p)
}

type updateReq struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	ClientID    *int       `json:"clientId"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	Progress    *int       `json:"progress"`
}

func (h *Handler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.Name != nil && len(strings.TrimSpace(*req.Name)) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project name must be at least 3 characters"})
		return
	}
	if req.Progress != nil {
		clamped := clampProgress(*req.Progress)
		req.Progress = &clamped
	}

	p, err := h.store.Update(c.Request.Context(), id, auth.UserID(c), domain.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
		ClientID:    req.ClientID,
		Status:      req.Status,
		DueDate:     req.DueDate,
		Progress:    req.Progress,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		h.log.Error("update project", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id, auth.UserID(c)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		h.log.Error("delete project", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
