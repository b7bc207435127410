package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/creatorpro/backend/internal/auth"
	"github.com/creatorpro/backend/internal/timetracking/domain"
)

type createReq struct {
	ProjectID   *int       `json:"projectId"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Duration    *int       `json:"duration"`
	Billable    *bool      `json:"billable"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || req.StartTime == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startTime is required"})
		return
	}

	// Derive the duration in minutes when an end time is supplied without
	// an explicit duration.
	duration := req.Duration
	if duration == nil && req.EndTime != nil {
		d := domain.DeriveDuration(*req.StartTime, *req.EndTime)
		duration = &d
	}

	billable := true
	if req.Billable != nil {
		billable = *req.Billable
	}

	e, err := h.store.Create(c.Request.Context(), domain.NewTimeEntry{
		ProjectID:   req.ProjectID,
		Description: req.Description,
		StartTime:   *req.StartTime,
		EndTime:     req.EndTime,
		Duration:    duration,
		Billable:    billable,
		UserID:      auth.UserID(c),
	})
	if err != nil {
		h.log.Error("create time entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create time entry"})
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		h.log.Error("list time entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch time entries"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	e, err := h.store.GetByID(c.Request.Context(), id, auth.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "time entry not found"})
			return
		}
		h.log.Error("get time entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch time entry"})
		return
	}
	c.JSON(http.StatusOK, e)
}

type updateReq struct {
	ProjectID   *int       `json:"projectId"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Duration    *int       `json:"duration"`
	Billable    *bool      `json:"billable"`
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

	// Stopping a running entry sends endTime alone; derive the duration
	// against the stored start when none was given.
	duration := req.Duration
	if duration == nil && req.EndTime != nil {
		start := req.StartTime
		if start == nil {
			existing, err := h.store.GetByID(c.Request.Context(), id, auth.UserID(c))
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": "time entry not found"})
					return
				}
				h.log.Error("get time entry", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update time entry"})
				return
			}
			start = &existing.StartTime
		}
		d := domain.DeriveDuration(*start, *req.EndTime)
		duration = &d
	}

	e, err := h.store.Update(c.Request.Context(), id, auth.UserID(c), domain.TimeEntryPatch{
		ProjectID:   req.ProjectID,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Duration:    duration,
		Billable:    req.Billable,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "time entry not found"})
			return
		}
		h.log.Error("update time entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update time entry"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id, auth.UserID(c)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "time entry not found"})
			return
		}
		h.log.Error("delete time entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete time entry"})
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
