package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retronotes/retronotes/internal/server/users"
)

type registerRequest struct {
	FullName        string `json:"fullName"`
	DOB             string `json:"dob"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type authResponse struct {
	User  *users.PublicUser `json:"user"`
	Token string            `json:"token"`
}

type availabilityResponse struct {
	Available bool `json:"available"`
}

func (s *Server) checkUsername(c echo.Context) error {
	available, err := s.users.CheckUsername(c.Request().Context(), c.QueryParam("username"))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, availabilityResponse{Available: available})
}

func (s *Server) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	result, err := s.users.Register(c.Request().Context(), users.RegisterInput{
		FullName:        req.FullName,
		DOB:             req.DOB,
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return s.writeError(c, err)
	}

	s.logger.Info(c.Request().Context(), "user registered", "username", result.User.Username)
	return c.JSON(http.StatusCreated, authResponse{User: result.User, Token: result.Token})
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	result, err := s.users.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, authResponse{User: result.User, Token: result.Token})
}
