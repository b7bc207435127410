package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/creatorpro/backend/internal/auth"
	"github.com/creatorpro/backend/internal/auth/domain"
	"github.com/creatorpro/backend/internal/auth/service"
	"github.com/creatorpro/backend/internal/auth/session"
)

type registerReq struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
}

func (r *registerReq) validate() string {
	if len(strings.TrimSpace(r.Username)) < 3 {
		return "username must be at least 3 characters"
	}
	if len(r.Password) < 8 {
		return "password must be at least 8 characters"
	}
	return ""
}

func (h *Handler) register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	user, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}

	if !h.establishSession(c, user.ID) {
		return
	}
	c.JSON(http.StatusCreated, user)
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	user, err := h.svc.Login(c.Request.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	if !h.establishSession(c, user.ID) {
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) logout(c *gin.Context) {
	if token := auth.SessionToken(c); token != "" {
		_ = h.sessions.Destroy(c.Request.Context(), token)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) currentUser(c *gin.Context) {
	user, err := h.svc.CurrentUser(c.Request.Context(), auth.UserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, user)
}

type profileReq struct {
	FullName *string        `json:"fullName"`
	Email    *string        `json:"email"`
	Settings map[string]any `json:"settings"`
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req profileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	user, err := h.svc.UpdateProfile(c.Request.Context(), auth.UserID(c), domain.ProfilePatch{
		FullName: req.FullName,
		Email:    req.Email,
		Settings: req.Settings,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// establishSession creates a session row and sets the cookie; on failure it
// writes a 500 and reports false.
func (h *Handler) establishSession(c *gin.Context, userID int) bool {
	token, err := h.sessions.Create(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return false
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, int(h.sessions.TTL().Seconds()), "/", "", h.secureCookie, true)
	return true
}
