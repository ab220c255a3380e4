package config

import (
	"time"

	"github.com/linkshelf/linkshelf/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime        time.Duration // admin session lifetime, extended on every admin request
	VisitorExpiryTime time.Duration // lifetime of the visitor page state (open folders, unlocks)
}

// Admin settings.
type Admin struct {
	// InitialPassword seeds the admin credentials when none exist yet.
	// Stored as given: plaintext unless it is an argon2id hash.
	InitialPassword string
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Admin     Admin
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic         bool    // enable static file browsing (for development purposes only)
	DisableRecover       bool    // disable recover middleware
	EnableProxyHeader    bool    // trust X-Forwarded-Proto when deciding on Secure cookies
	Port                 int     // listening port for the webserver
	ShutDownTime         int     // wait time for shutdown
	URL                  string  // base url for the webserver
	FixedBackgroundImage string  // overrides the stored background image for every visitor
	Session              Session // session settings
}
