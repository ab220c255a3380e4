// Package auth implements the admin login and the admin session.
//
// There is a single admin identity, guarded by the password stored in the
// admin credentials document. A successful login creates a session: a
// random token kept in the adminSession cookie and mirrored in the
// admin_sessions table with an expiry time.
//
// # Session lifecycle
//
//   - Login verifies the password and creates a session valid for one TTL.
//   - Resume looks the token up and, if still valid, pushes its expiry to
//     now + TTL (sliding expiration).
//   - Logout deletes every session row carrying the token.
//
// The authenticated state of a request is an explicit *Session stored in
// fiber.Locals, see FromContext. Handlers never consult a global flag.
//
// Passwords are compared as plaintext unless the stored value is an
// argon2id hash, see package credentials.
//
// Example usage:
//
//	svc := auth.NewService(db, time.Hour)
//	sess, err := svc.Login(ctx, c.FormValue("password"))
//	if err == nil {
//	    auth.SetCookie(c, sess)
//	}
package auth
