package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retronotes/retronotes/internal/common"
)

type messageResponse struct {
	Message string `json:"message"`
}

// writeError maps a service error to its HTTP status. Validation, conflict,
// auth and not-found errors carry user-facing messages; anything else is
// logged and answered with a generic 500 so no internal detail leaks.
func (s *Server) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	case errors.Is(err, common.ErrConflict):
		return c.JSON(http.StatusConflict, messageResponse{Message: err.Error()})
	case errors.Is(err, common.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: err.Error()})
	case errors.Is(err, common.ErrNotFound):
		return c.JSON(http.StatusNotFound, messageResponse{Message: err.Error()})
	default:
		s.logger.Error(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err.Error(),
		)
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Something went wrong"})
	}
}
