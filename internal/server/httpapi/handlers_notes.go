package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *Server) listNotes(c echo.Context) error {
	list, err := s.notes.List(c.Request().Context(), ownerID(c))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, list)
}

func (s *Server) createNote(c echo.Context) error {
	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	note, err := s.notes.Create(c.Request().Context(), ownerID(c), req.Title, req.Content)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, note)
}

func (s *Server) deleteNote(c echo.Context) error {
	err := s.notes.Delete(c.Request().Context(), ownerID(c), c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Deleted"})
}
