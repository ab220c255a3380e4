package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/linkshelf/linkshelf/internal/auth"
)

// AdminOnly answers 401 unless the request carries an admin session.
// Mutating admin routes check it themselves in addition to the session
// middleware.
func AdminOnly(c *fiber.Ctx) error {
	if auth.FromContext(c) == nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	return c.Next()
}

// Confirmed reports whether a destructive form was confirmed.
func Confirmed(c *fiber.Ctx) bool {
	return c.FormValue("confirm") == FormConfirmYes
}

// RenderConfirm shows the confirmation page for a destructive action.
// Submitting it repeats the POST to action with confirm=yes.
func RenderConfirm(c *fiber.Ctx, data fiber.Map, question, name, action, cancel string) error {
	data["Question"] = question
	data["Name"] = name
	data["Action"] = action
	data["Cancel"] = cancel

	return c.Render(ConfirmTemplateName, data, BaseLayout)
}
