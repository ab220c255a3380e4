// Package daemon assembles the database, the visitor session storage and
// the web service into the running process.
package daemon

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/auth"
	"github.com/linkshelf/linkshelf/internal/config"
	"github.com/linkshelf/linkshelf/internal/db"
	"github.com/linkshelf/linkshelf/internal/db/dsn"
	"github.com/linkshelf/linkshelf/internal/web"
	"github.com/linkshelf/linkshelf/internal/web/session"
)

const (
	// sessionTable belongs to the gofiber storage drivers, which create and
	// check their own k/v/e schema. It must not name a gorm model table.
	sessionTable      = "fiber_visitor_sessions"
	sessionGCInterval = 10 * time.Minute
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
	gcDone     chan struct{}
}

// Start runs the web service until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	err := d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))

	if d.gcDone != nil {
		close(d.gcDone)
	}

	return err
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	if err = seed(cfg, gdb); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin credentials")
	}

	svc := auth.NewService(gdb, cfg.Webserver.Session.ExpiryTime)
	if n, err := svc.PurgeExpired(context.Background()); err != nil {
		log.Warn().Err(err).Msg("failed to purge expired admin sessions")
	} else if n > 0 {
		log.Info().Int64("count", n).Msg("purged expired admin sessions")
	}

	d := &Daemon{cfg: cfg}

	session.Init(d.sessionStorage(gdb), cfg.Webserver.Session.VisitorExpiryTime)

	d.webService = web.New(cfg, gdb)

	return d
}

// sessionStorage returns the visitor session backend matching the
// database engine.
func (d *Daemon) sessionStorage(gdb *gorm.DB) fiber.Storage {
	switch d.cfg.DB.GormEngine {
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(d.cfg),
			Table:         sessionTable,
			GCInterval:    sessionGCInterval,
		})
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Create(d.cfg),
			Table:         sessionTable,
			GCInterval:    sessionGCInterval,
		})
	default:
		storage := session.NewGormStorage(gdb)
		d.gcDone = make(chan struct{})
		go storage.RunGC(sessionGCInterval, d.gcDone)

		return storage
	}
}
