package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// zerologWriter feeds gorm's logger into the process logger.
type zerologWriter struct {
	log zerolog.Logger
}

func (w zerologWriter) Printf(format string, args ...interface{}) {
	w.log.Warn().Msgf(format, args...)
}

// newGormLogger reports failed and slow queries. gorm.ErrRecordNotFound is
// an expected outcome of lookups and is not logged.
func newGormLogger(log zerolog.Logger) logger.Interface {
	return logger.New(zerologWriter{log: log.With().Str("component", "gorm").Logger()}, logger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
