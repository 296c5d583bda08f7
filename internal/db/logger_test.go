package db

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gogomedia/internal/model"
)

func TestGormLoggerSkipsRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	gormDB, err := Open(DriverSQLite, "file:gorm_logger?mode=memory&cache=shared", zerolog.New(&buf))
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	require.NoError(t, AutoMigrate(gormDB))
	buf.Reset()

	var user model.User
	err = gormDB.Where("username = ?", "nobody").First(&user).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	err = gormDB.Exec("SELECT * FROM no_such_table").Error
	assert.Error(t, err)
	assert.Contains(t, buf.String(), `"component":"gorm"`)
	assert.Contains(t, buf.String(), "no_such_table")
	assert.NotContains(t, buf.String(), "\x1b[")
}
