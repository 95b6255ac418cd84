package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/retronotes/retronotes/internal/server/auth"
)

// userIDContextKey is where requireAuth stores the authenticated user id.
const userIDContextKey = "userID"

// ownerID returns the user id placed into the context by requireAuth.
// Handlers behind the auth middleware can rely on it being set; an empty
// value is caught by the services' own validation.
func ownerID(c echo.Context) string {
	id, _ := c.Get(userIDContextKey).(string)
	return id
}

// requireAuth verifies the Bearer token and derives the owner identity from
// it. The notes endpoints never accept a caller-supplied owner id.
func (s *Server) requireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Missing or invalid token"})
			}

			userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Missing or invalid token"})
			}

			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}

// rateLimit rejects callers that exceed the per-IP budget on the auth
// endpoints, slowing down credential stuffing and bulk registration.
func (s *Server) rateLimit(limiter *visitorLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, messageResponse{Message: "Too many requests"})
			}
			return next(c)
		}
	}
}

// requestLogger logs one line per handled request.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			s.logger.Info(c.Request().Context(), "request",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)

			return err
		}
	}
}
