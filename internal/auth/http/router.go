package http

import "github.com/gin-gonic/gin"

// Register attaches the session endpoints. Login and register are public;
// the rest require an authenticated session.
func (h *Handler) Register(public, protected *gin.RouterGroup) {
	public.POST("/register", h.register)
	public.POST("/login", h.login)

	protected.POST("/logout", h.logout)
	protected.GET("/user", h.currentUser)
	protected.PATCH("/user", h.updateProfile)
}
