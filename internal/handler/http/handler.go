package http

import (
	"context"
	"time"

	"github.com/gorilla/sessions"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/view"
)

// SessionStore is the session backend used by the handlers.
type SessionStore interface {
	sessions.Store
	// Renew drops the stored session and clears its id so the next save
	// issues a fresh one.
	Renew(ctx context.Context, session *sessions.Session) error
}

// HealthChecker reports whether the backing storage is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	sessions SessionStore
	view     *view.Renderer
	health   HealthChecker

	cookieName     string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessionStore SessionStore, renderer *view.Renderer, health HealthChecker, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessionStore,
		view:           renderer,
		health:         health,
		cookieName:     cfg.App.SessionCookieName,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
