// Package appearance provides the middleware that resolves the page
// background for every request.
package appearance

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/db/controller/appearance"
	"github.com/linkshelf/linkshelf/internal/web/handler"
)

// New returns the middleware. A non-empty fixed url is used for every
// visitor instead of the stored setting.
func New(db *gorm.DB, fixed string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/static") {
			return c.Next()
		}

		if fixed != "" {
			c.Locals(handler.LocalsBackground, fixed)
			return c.Next()
		}

		s, err := appearance.Load(db.WithContext(c.UserContext()))
		if err != nil {
			// the page still renders, just without background
			log.Warn().Err(err).Msg("failed to load appearance settings")
			return c.Next()
		}

		if s.BackgroundImage != "" {
			c.Locals(handler.LocalsBackground, s.BackgroundImage)
		}

		return c.Next()
	}
}
