package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkravets/folio/internal/server/services"
)

// tokenResponse is the login payload. TokenType is always "bearer".
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *Server) register(c echo.Context) error {
	var in services.RegisterInput
	if err := bindJSON(c, &in); err != nil {
		return err
	}

	user, err := s.users.Register(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

func (s *Server) login(c echo.Context) error {
	var in services.LoginInput
	if err := bindJSON(c, &in); err != nil {
		return err
	}

	token, err := s.users.Login(c.Request().Context(), in.Username, in.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) me(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c))
}

func (s *Server) updateMe(c echo.Context) error {
	var in services.UserUpdateInput
	if err := bindJSON(c, &in); err != nil {
		return err
	}

	user, err := s.users.UpdateProfile(c.Request().Context(), currentUser(c).ID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) changePassword(c echo.Context) error {
	var in services.PasswordChangeInput
	if err := bindJSON(c, &in); err != nil {
		return err
	}

	if err := s.users.ChangePassword(c.Request().Context(), currentUser(c).ID, in); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) deleteMe(c echo.Context) error {
	if err := s.users.Delete(c.Request().Context(), currentUser(c).ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
