// Package httpapi exposes the auth and notes services over REST.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/retronotes/retronotes/internal/logging"
	"github.com/retronotes/retronotes/internal/metrics"
	"github.com/retronotes/retronotes/internal/server/config"
	"github.com/retronotes/retronotes/internal/server/notes"
	"github.com/retronotes/retronotes/internal/server/users"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	echo      *echo.Echo
	addr      string
	logger    logging.Logger
	users     *users.Service
	notes     *notes.Service
	jwtSecret []byte
}

func NewServer(cfg *config.Config, l logging.Logger, us *users.Service, ns *notes.Service, m *metrics.Metrics) *Server {
	s := &Server{
		echo:      echo.New(),
		addr:      cfg.EndpointAddrHTTP,
		logger:    l.With("module", "http_server"),
		users:     us,
		notes:     ns,
		jwtSecret: []byte(cfg.SecretKey),
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(s.requestLogger())
	e.Use(m.Middleware())
	e.Use(echomw.Recover())

	e.GET("/healthz", s.health)

	api := e.Group("/api")

	limiter := newVisitorLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)
	authGroup := api.Group("/auth", s.rateLimit(limiter))
	authGroup.GET("/check-username", s.checkUsername)
	authGroup.POST("/register", s.register)
	authGroup.POST("/login", s.login)

	notesGroup := api.Group("/notes", s.requireAuth())
	notesGroup.GET("", s.listNotes)
	notesGroup.POST("", s.createNote)
	notesGroup.DELETE("/:id", s.deleteNote)

	return s
}

// Run starts the HTTP server and blocks until it stops. When ctx is
// cancelled the server drains in-flight requests before returning.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
