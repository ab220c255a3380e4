package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/linkshelf/linkshelf/internal/auth"
	"github.com/linkshelf/linkshelf/internal/config"
)

// Page returns data extended by the values every page template needs:
// site title, background image, admin state and flash messages passed
// through the query string.
func Page(c *fiber.Ctx, cfg *config.Config, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}

	data["Title"] = cfg.Title
	data["Background"] = c.Locals(LocalsBackground)
	data["IsAdmin"] = auth.FromContext(c) != nil

	if _, ok := data["message"]; !ok && c.Query("message") != "" {
		data["message"] = c.Query("message")
	}
	if _, ok := data["error"]; !ok && c.Query("error") != "" {
		data["error"] = c.Query("error")
	}

	return data
}

// Redirect sends the client to target with an optional flash message and
// error appended to the query string.
func Redirect(c *fiber.Ctx, target, message, errMsg string) error {
	u, err := url.Parse(target)
	if err != nil {
		return c.Redirect(target)
	}

	q := u.Query()
	if message != "" {
		q.Set("message", message)
	}
	if errMsg != "" {
		q.Set("error", errMsg)
	}
	u.RawQuery = q.Encode()

	return c.Redirect(u.String())
}
