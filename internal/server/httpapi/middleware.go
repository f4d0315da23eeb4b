package httpapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dkravets/folio/internal/common"
	"github.com/dkravets/folio/internal/server/models"
)

const currentUserKey = "currentUser"

// requireAuth resolves the bearer token and stores the account on the
// request context. Missing, malformed, expired and dangling tokens all fail
// with the same 401 so the response does not leak which check tripped.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return common.ErrorUnauthorized
		}

		user, err := s.users.ResolveToken(c.Request().Context(), token)
		if err != nil {
			return err
		}

		c.Set(currentUserKey, user)
		return next(c)
	}
}

// currentUser returns the account stored by requireAuth.
func currentUser(c echo.Context) *models.User {
	user, _ := c.Get(currentUserKey).(*models.User)
	return user
}
