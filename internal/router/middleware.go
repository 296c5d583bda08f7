package router

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"gogomedia/internal/auth"
	"gogomedia/internal/config"
	apperrors "gogomedia/internal/errors"
	"gogomedia/internal/handler"
	"gogomedia/internal/service"
)

// requireToken verifies the Authorization header through AuthService so
// revoked tokens are refused. Skipped entirely when login is disabled.
func requireToken(cfg *config.Config, authService service.AuthService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		Skipper: func(echo.Context) bool {
			return cfg.LoginDisabled
		},
		ContextKey:  handler.ClaimsContextKey,
		TokenLookup: auth.TokenLookup(),
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return authService.Authenticate(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, apperrors.Envelope{Message: tokenErrorMessage(c, err)})
		},
	})
}

func tokenErrorMessage(c echo.Context, err error) string {
	switch {
	case c.Request().Header.Get(echo.HeaderAuthorization) == "":
		return apperrors.MsgMissingToken
	case errors.Is(err, auth.ErrTokenExpired):
		return apperrors.MsgExpiredToken
	default:
		return apperrors.MsgInvalidToken
	}
}

// requireUser resolves :username through gate and stores the owner for
// the handlers.
func requireUser(gate *auth.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := gate.Authorize(c.Request().Context(), handler.Caller(c), c.Param("username"))
			if err != nil {
				return handler.RespondError(c, err)
			}
			c.Set(handler.UserContextKey, user)
			return next(c)
		}
	}
}
