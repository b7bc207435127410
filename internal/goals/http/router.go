package http

import "github.com/gin-gonic/gin"

// Register attaches goal routes on goals and milestone routes on milestones.
func (h *Handler) Register(goals, milestones *gin.RouterGroup) {
	goals.POST("", h.createGoal)
	goals.GET("", h.listGoals)
	goals.GET("/:id", h.getGoal)
	goals.PATCH("/:id", h.updateGoal)
	goals.DELETE("/:id", h.deleteGoal)

	milestones.GET("", h.listMilestones)
	milestones.POST("", h.createMilestone)
	milestones.PATCH("/:id", h.updateMilestone)
	milestones.DELETE("/:id", h.deleteMilestone)
}
