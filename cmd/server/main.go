package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"gogomedia/docs"
	"gogomedia/internal/auth"
	"gogomedia/internal/cache"
	"gogomedia/internal/config"
	"gogomedia/internal/db"
	"gogomedia/internal/handler"
	"gogomedia/internal/logger"
	"gogomedia/internal/repository"
	"gogomedia/internal/router"
	"gogomedia/internal/service"
)

// @title GoGoMedia API
// @version 1.0
// @description Personal media tracking: register, log in and keep a list of films, audio and literature.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" or "JWT" followed by a space and the auth_token.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if cfg.AutoMigrate {
		err = db.AutoMigrate(gormDB)
	} else {
		err = db.Migrate(ctx, gormDB, cfg.DBDriver)
	}
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		// the service still runs, but logouts are not remembered
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	mediaRepo := repository.NewMediaRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, log)
	mediaService := service.NewMediaService(userService, mediaRepo, log)
	gate := auth.NewGate(userService, cfg.LoginDisabled)

	e := echo.New()
	e.HideBanner = true
	router.Register(
		e,
		cfg,
		log,
		authService,
		gate,
		handler.NewAuthHandler(authService),
		handler.NewMediaHandler(mediaService),
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	if cfg.LoginDisabled {
		log.Warn().Msg("login disabled, per-user routes are open")
	}

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info().Str("addr", addr).Str("swagger", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html").Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
