package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogomedia/internal/auth"
	"gogomedia/internal/dbtest"
	"gogomedia/internal/model"
	"gogomedia/internal/repository"
	"gogomedia/internal/service"
)

func TestReadSeedFile(t *testing.T) {
	users, err := readSeedFile("seed.example.json")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Len(t, users[1].Media, 2)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"username":"x"}`), 0o600))
	_, err = readSeedFile(bad)
	assert.Error(t, err)
}

func TestSeedIsRepeatable(t *testing.T) {
	ctx := context.Background()
	gormDB := dbtest.New(t)
	userRepo := repository.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo, nil)
	authService := service.NewAuthService(userRepo, auth.NewJWTService("seed", time.Hour), auth.NewTokenStore(nil), zerolog.Nop())
	mediaService := service.NewMediaService(userService, repository.NewMediaRepository(gormDB), zerolog.Nop())

	users := []SeedUser{{
		Username: "alice",
		Password: "P@ssw0rd",
		Media: []json.RawMessage{
			json.RawMessage(`{"name": "Dune", "medium": "literature"}`),
			json.RawMessage(`{"name": "Broken", "medium": "vinyl"}`),
		},
	}}

	res, err := seed(ctx, zerolog.Nop(), authService, mediaService, users)
	require.NoError(t, err)
	assert.Equal(t, seedResult{created: 1, media: 1}, res)

	res, err = seed(ctx, zerolog.Nop(), authService, mediaService, users)
	require.NoError(t, err)
	assert.Equal(t, seedResult{existing: 1, media: 1}, res)

	list, err := mediaService.GetFiltered(ctx, "alice", model.MediaFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.MediumLiterature, list[0].Medium)
}
