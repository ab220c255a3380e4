package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/config"
	"github.com/linkshelf/linkshelf/internal/db/controller/credentials"
)

// seed stores Admin.InitialPassword when no admin credentials exist yet.
// Existing credentials are never overwritten.
func seed(cfg *config.Config, db *gorm.DB) error {
	if cfg.Admin.InitialPassword == "" {
		return nil
	}

	exists, err := credentials.Exists(db)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	log.Info().Msg("seeding admin credentials from config")

	return credentials.Set(db, cfg.Admin.InitialPassword)
}
