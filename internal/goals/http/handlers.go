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
	"github.com/creatorpro/backend/internal/goals/domain"
)

type createGoalReq struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	Status      string     `json:"status"`
	Progress    *int       `json:"progress"`
	Category    *string    `json:"category"`
}

func (h *Handler) createGoal(c *gin.Context) {
	var req createGoalReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	if req.Status == "" {
		req.Status = "active"
	}

	progress := 0
	if req.Progress != nil {
		progress = clampProgress(*req.Progress)
	}

	g, err := h.goals.Create(c.Request.Context(), domain.NewGoal{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Deadline:    req.Deadline,
		Status:      req.Status,
		Progress:    progress,
		Category:    req.Category,
		UserID:      auth.UserID(c),
	})
	if err != nil {
		h.log.Error("create goal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create goal"})
		return
	}
	c.JSON(http.StatusCreated, g)
}

func (h *Handler) listGoals(c *gin.Context) {
	items, err := h.goals.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		h.log.Error("list goals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch goals"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getGoal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	g, err := h.goals.GetByID(c.Request.Context(), id, auth.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		h.log.Error("get goal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch goal"})
		return
	}
	c.JSON(http.StatusOK, g)
}

type updateGoalReq struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	Status      *string    `json:"status"`
	Progress    *int       `json:"progress"`
	Category    *string    `json:"category"`
}

func (h *Handler) updateGoal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.Progress != nil {
		clamped := clampProgress(*req.Progress)
		req.Progress = &clamped
	}

	g, err := h.goals.Update(c.Request.Context(), id, auth.UserID(c), domain.GoalPatch{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Status:      req.Status,
		Progress:    req.Progress,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		h.log.Error("update goal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update goal"})
		return
	}
	c.JSON(http.StatusOK, g)
}

func (h *Handler) deleteGoal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.goals.Delete(c.Request.Context(), id, auth.UserID(c)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		h.log.Error("delete goal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete goal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) listMilestones(c *gin.Context) {
	goalID, err := strconv.Atoi(c.Query("goalId"))
	if err != nil || goalID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "goalId query parameter is required"})
		return
	}

	items, err := h.milestones.ListByGoal(c.Request.Context(), goalID, auth.UserID(c))
	if err != nil {
		h.log.Error("list milestones", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch milestones"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type createMilestoneReq struct {
	GoalID int    `json:"goalId"`
	Title  string `json:"title"`
}

func (h *Handler) createMilestone(c *gin.Context) {
	var req createMilestoneReq
	if err := c.ShouldBindJSON(&req); err != nil || req.GoalID <= 0 || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "goalId and title are required"})
		return
	}

	m, err := h.milestones.Create(c.Request.Context(), domain.NewMilestone{
		GoalID: req.GoalID,
		Title:  strings.TrimSpace(req.Title),
	}, auth.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		h.log.Error("create milestone", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create milestone"})
		return
	}
	c.JSON(http.StatusCreated, m)
}

type updateMilestoneReq struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (h *Handler) updateMilestone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateMilestoneReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	m, err := h.milestones.Update(c.Request.Context(), id, auth.UserID(c), domain.MilestonePatch{
		Title:     req.Title,
		Completed: req.Completed,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMilestoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "milestone not found"})
			return
		}
		h.log.Error("update milestone", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update milestone"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) deleteMilestone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.milestones.Delete(c.Request.Context(), id, auth.UserID(c)); err != nil {
		if errors.Is(err, domain.ErrMilestoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "milestone not found"})
			return
		}
		h.log.Error("delete milestone", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete milestone"})
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
