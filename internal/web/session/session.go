// Package session keeps the per-visitor page state of the public listing:
// which folders are open and which password gates were passed.
package session

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	// CookieName is the name of the visitor session cookie.
	CookieName = "linkshelf_visitor"

	stateKey = "view"
)

// Store is the global visitor session store instance.
var Store *session.Store //nolint:gochecknoglobals

// Init initializes the session store with the provided storage backend.
// A nil storage keeps sessions in memory.
func Init(storage fiber.Storage, expiration time.Duration) {
	Store = session.New(session.Config{
		Storage:        storage,
		Expiration:     expiration,
		KeyLookup:      "cookie:" + CookieName,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Load returns the view state of the visitor.
func Load(c *fiber.Ctx) (*ViewState, *session.Session, error) {
	sess, err := Store.Get(c)
	if err != nil {
		return nil, nil, err
	}

	state := NewViewState()

	raw, ok := sess.Get(stateKey).(string)
	if ok && raw != "" {
		if err = json.Unmarshal([]byte(raw), state); err != nil {
			// corrupt state starts over closed and locked
			state = NewViewState()
		}
	}

	return state, sess, nil
}

// Save writes state back into the visitor session.
func Save(sess *session.Session, state *ViewState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}

	sess.Set(stateKey, string(raw))

	return sess.Save()
}
