package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"gogomedia/internal/auth"
	apperrors "gogomedia/internal/errors"
	"gogomedia/internal/model"
)

// Context keys shared with the router middleware.
const (
	ClaimsContextKey = "claims"
	UserContextKey   = "owner"
	ErrorContextKey  = "error"
)

// RespondError writes err as a failed envelope with its mapped status.
// Internal errors are kept on the context for the request logger.
func RespondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Set(ErrorContextKey, err)
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToEnvelope())
}

func respondOK(c echo.Context, status int, env apperrors.Envelope) error {
	env.Success = true
	return c.JSON(status, env)
}

func readBody(c echo.Context) ([]byte, error) {
	if c.Request().Body == nil {
		return nil, nil
	}
	return io.ReadAll(c.Request().Body)
}

// Owner returns the user resolved for the :username path segment.
func Owner(c echo.Context) *model.User {
	user, _ := c.Get(UserContextKey).(*model.User)
	return user
}

// Caller returns the verified token claims, or nil when none were presented.
func Caller(c echo.Context) *auth.Claims {
	claims, _ := c.Get(ClaimsContextKey).(*auth.Claims)
	return claims
}
