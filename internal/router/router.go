package router

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"gogomedia/internal/auth"
	"gogomedia/internal/config"
	apperrors "gogomedia/internal/errors"
	"gogomedia/internal/handler"
	"gogomedia/internal/service"
	"gogomedia/internal/validation"
)

const msgRateLimited = "Too many login attempts. Please try again later."

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log zerolog.Logger,
	authService service.AuthService,
	gate *auth.Gate,
	authHandler *handler.AuthHandler,
	mediaHandler *handler.MediaHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())

	e.Validator = validation.NewValidator()

	e.GET("/", handler.Index)
	e.GET("/healthz", handler.Healthz)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login, loginRateLimiter(cfg))
	e.GET("/logout", authHandler.Logout)
	e.POST("/logout", authHandler.Logout)

	// Per-user routes: verify the token, then check it names :username
	user := e.Group("/user/:username", requireToken(cfg, authService), requireUser(gate))
	user.PUT("/media", mediaHandler.Upsert)
	user.GET("/media", mediaHandler.List)
	user.DELETE("/media", mediaHandler.Remove)
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Status >= http.StatusInternalServerError {
				event = log.Error()
				if err, ok := c.Get(handler.ErrorContextKey).(error); ok {
					event = event.Err(err)
				}
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

func loginRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(cfg.LoginRateLimit),
				Burst:     cfg.LoginBurst,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, apperrors.Envelope{Message: msgRateLimited})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, apperrors.Envelope{Message: msgRateLimited})
		},
	})
}
