package auth

import "github.com/gin-gonic/gin"

const (
	// CtxUserID is the gin context key holding the authenticated user id.
	CtxUserID = "user_id"
	// CtxSessionToken holds the raw session token for the request.
	CtxSessionToken = "session_token"
)

// UserID extracts the authenticated user id from the gin context.
// It is set by middleware.RequireSession; zero means unauthenticated.
func UserID(c *gin.Context) int {
	return c.GetInt(CtxUserID)
}

// SessionToken returns the session token bound to the request, if any.
func SessionToken(c *gin.Context) string {
	return c.GetString(CtxSessionToken)
}
