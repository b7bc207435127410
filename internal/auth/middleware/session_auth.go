package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creatorpro/backend/internal/auth"
	"github.com/creatorpro/backend/internal/auth/session"
)

// RequireSession validates the session cookie and puts the user id in the
// gin context. Requests without a valid session are rejected with 401
// before any data access happens.
func RequireSession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		userID, err := store.Get(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		// Sliding expiry; a failed renewal is not worth failing the request.
		_ = store.Renew(c.Request.Context(), token)

		c.Set(auth.CtxUserID, userID)
		c.Set(auth.CtxSessionToken, token)
		c.Next()
	}
}
