package db

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations
var migrations embed.FS

var gooseDialects = map[string]string{
	DriverMySQL:    "mysql",
	DriverPostgres: "postgres",
	DriverSQLite:   "sqlite3",
}

// Migrate applies the embedded SQL migrations for driver with goose.
func Migrate(ctx context.Context, db *gorm.DB, driver string) error {
	dialect, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("unsupported db driver %q", driver)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "migrations/"+driver); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
