// Package auth provides the admin session middleware for the web application.
//
// The middleware guards every route below /admin. It performs the following tasks:
//   - Resumes the session named by the adminSession cookie and extends it
//   - Re-issues the cookie so its lifetime follows the session row
//   - Adds the *auth.Session to fiber.Locals for handlers and templates
//   - Redirects requests without a valid session to the login page
//   - Allows public access to login and logout pages without redirect loops
//
// Usage:
//
//	app.Use(handler.AdminPath, authmiddleware.New(authService))
package auth
