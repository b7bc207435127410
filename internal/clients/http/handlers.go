package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/creatorpro/backend/internal/auth"
	"github.com/creatorpro/backend/internal/clients/domain"
)

type createReq struct {
	Name    string  `json:"name"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Status  string  `json:"status"`
	Notes   *string `json:"notes"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || len(strings.TrimSpace(req.Name)) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client name must be at least 2 characters"})
		return
	}
	if req.Status == "" {
		req.Status = "active"
	}

	cl, err := h.store.Create(c.Request.Context(), domain.NewClient{
		Name:    strings.TrimSpace(req.Name),
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Status:  req.Status,
		Notes:   req.Notes,
		UserID:  auth.UserID(c),
	})
	if err != nil {
		h.log.Error("create client", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create client"})
		return
	}
	c.JSON(http.StatusCreated, cl)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		h.log.Error("list clients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch clients"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	cl, err := h.store.GetByID(c.Request.Context(), id, auth.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		h.log.Error("get client", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch client"})
		return
	}
	c.JSON(http.StatusOK, cl)
}

type updateReq struct {
	Name    *string `json:"name"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Status  *string `json:"status"`
	Notes   *string `json:"notes"`
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
	if req.Name != nil && len(strings.TrimSpace(*req.Name)) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client name must be at least 2 characters"})
		return
	}

	cl, err := h.store.Update(c.Request.Context(), id, auth.UserID(c), domain.ClientPatch{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Status:  req.Status,
		Notes:   req.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		h.log.Error("update client", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update client"})
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id, auth.UserID(c)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		h.log.Error("delete client", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete client"})
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
