package http

import (
	"github.com/creatorpro/backend/internal/auth/service"
	"github.com/creatorpro/backend/internal/auth/session"
)

// Handler bundles the dependencies for the session endpoints.
type Handler struct {
	svc          *service.AuthService
	sessions     session.Store
	secureCookie bool
}

func New(svc *service.AuthService, sessions session.Store, secureCookie bool) *Handler {
	return &Handler{svc: svc, sessions: sessions, secureCookie: secureCookie}
}
