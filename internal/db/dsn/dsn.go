// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/linkshelf/linkshelf/internal/config"
)

// Create builds the Data Source Name for the configured gorm engine.
// The same string is used by the gorm driver and the session storage.
func Create(cfg *config.Config) string {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return mysql(&cfg.DB)
	case config.EnginePostgres:
		return postgres(&cfg.DB)
	default:
		return cfg.DB.Path
	}
}

func mysql(db *config.DB) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
	)

	// parseTime is required for time.Time columns
	extras := db.Extras
	if !strings.Contains(extras, "parseTime") {
		extras = strings.TrimPrefix(extras+"&parseTime=true", "&")
	}

	return out + "?" + extras
}

// postgres returns a connection URI, understood by both pgx and gorm.
func postgres(db *config.DB) string {
	out := fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
	)

	if db.Extras != "" {
		out += "?" + db.Extras
	}

	return out
}
