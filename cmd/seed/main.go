package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"gogomedia/internal/auth"
	"gogomedia/internal/cache"
	"gogomedia/internal/config"
	"gogomedia/internal/db"
	apperrors "gogomedia/internal/errors"
	"gogomedia/internal/logger"
	"gogomedia/internal/repository"
	"gogomedia/internal/service"
	"gogomedia/internal/validation"
)

// SeedUser is one entry of the seed file.
type SeedUser struct {
	Username string            `json:"username"`
	Password string            `json:"password"`
	Media    []json.RawMessage `json:"media"`
}

type seedResult struct {
	created  int
	existing int
	media    int
}

func main() {
	file := flag.String("file", "cmd/seed/seed.example.json", "path to the seed JSON file")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	log.Info().Str("file", *file).Msg("starting seed")

	users, err := readSeedFile(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed file")
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	userRepo := repository.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo, cacheClient)
	authService := service.NewAuthService(userRepo, auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL), auth.NewTokenStore(cacheClient), log)
	mediaService := service.NewMediaService(userService, repository.NewMediaRepository(gormDB), log)

	ctx := context.Background()
	res, err := seed(ctx, log, authService, mediaService, users)
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}

	all, err := userService.ListUsers(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list users")
	}
	log.Info().
		Int("users_created", res.created).
		Int("users_existing", res.existing).
		Int("media_upserted", res.media).
		Int("users_total", len(all)).
		Msg("seed completed")
}

func readSeedFile(path string) ([]SeedUser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var users []SeedUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return users, nil
}

// seed registers each user unless the name is taken and upserts their
// media. Items go through request validation so the file uses the same
// shape as the PUT body.
func seed(ctx context.Context, log zerolog.Logger, authService service.AuthService, mediaService service.MediaService, users []SeedUser) (seedResult, error) {
	var res seedResult
	for _, u := range users {
		_, _, err := authService.Register(ctx, u.Username, u.Password)
		switch {
		case err == nil:
			res.created++
		case errors.Is(err, apperrors.ErrDuplicateUsername):
			res.existing++
		default:
			return res, fmt.Errorf("register %s: %w", u.Username, err)
		}

		for i, raw := range u.Media {
			name, patch, err := validation.ParseUpsertBody(raw)
			if err != nil {
				log.Warn().Err(err).Str("username", u.Username).Int("index", i).Msg("skipping media item")
				continue
			}
			if _, err := mediaService.Upsert(ctx, u.Username, name, patch); err != nil {
				return res, fmt.Errorf("upsert %s/%s: %w", u.Username, name, err)
			}
			res.media++
		}
	}
	return res, nil
}
