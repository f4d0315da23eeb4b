package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dkravets/folio/internal/common"
)

// errorBody is the uniform error payload. Field is present only for
// validation and conflict errors.
type errorBody struct {
	Detail string `json:"detail"`
	Field  string `json:"field,omitempty"`
}

// handleError maps service errors to HTTP responses. Anything unrecognized
// is logged and reported as a generic 500 so internals never leak to
// clients.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		verr     *common.ValidationError
		conflict *common.ConflictError
		httpErr  *echo.HTTPError
	)

	switch {
	case errors.As(err, &verr):
		_ = c.JSON(http.StatusBadRequest, errorBody{Detail: verr.Reason, Field: verr.Field})

	case errors.As(err, &conflict):
		_ = c.JSON(http.StatusConflict, errorBody{Detail: conflict.Error(), Field: conflict.Field})

	case errors.Is(err, common.ErrorNotFound):
		_ = c.JSON(http.StatusNotFound, errorBody{Detail: "not found"})

	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrMissingSubject):
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		_ = c.JSON(http.StatusUnauthorized, errorBody{Detail: "could not validate credentials"})

	case errors.As(err, &httpErr):
		detail := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			detail = msg
		}
		_ = c.JSON(httpErr.Code, errorBody{Detail: detail})

	default:
		s.logger.Error(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		_ = c.JSON(http.StatusInternalServerError, errorBody{Detail: "internal server error"})
	}
}

// bindJSON decodes the request body, reporting malformed JSON as a
// validation failure on the body itself.
func bindJSON(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return common.NewValidationError("body", "malformed request body")
	}
	return nil
}

// pathID parses a numeric path parameter. Non-numeric ids cannot name an
// existing resource, so they surface as 404 rather than 400.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, common.ErrorNotFound
	}
	return id, nil
}
