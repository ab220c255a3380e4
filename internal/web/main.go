package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/linkshelf/linkshelf/internal/auth"
	"github.com/linkshelf/linkshelf/internal/config"
	"github.com/linkshelf/linkshelf/internal/db/models"
	"github.com/linkshelf/linkshelf/internal/directory"
	fiberlogger "github.com/linkshelf/linkshelf/internal/logger/adapter/fiber"
	"github.com/linkshelf/linkshelf/internal/web/handler"
	adminappearance "github.com/linkshelf/linkshelf/internal/web/handler/admin/appearance"
	adminlink "github.com/linkshelf/linkshelf/internal/web/handler/admin/link"
	adminsuggestion "github.com/linkshelf/linkshelf/internal/web/handler/admin/suggestion"
	"github.com/linkshelf/linkshelf/internal/web/handler/dashboard"
	"github.com/linkshelf/linkshelf/internal/web/handler/listing"
	"github.com/linkshelf/linkshelf/internal/web/handler/login"
	"github.com/linkshelf/linkshelf/internal/web/handler/logout"
	"github.com/linkshelf/linkshelf/internal/web/handler/suggest"
	appearancemw "github.com/linkshelf/linkshelf/internal/web/middleware/appearance"
	authmw "github.com/linkshelf/linkshelf/internal/web/middleware/auth"
)

const (
	// CheckAlivePath answers 200 while the service accepts traffic.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus registry.
	MetricsPath = "/metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	authService  *auth.Service
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	s.alive.Store(true)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown blocks until SIGINT or SIGTERM and then stops the server.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// CheckAlive answers 200 until shutdown begins, 503 afterwards.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

// newTemplateEngine returns the html engine over the embedded templates,
// or over the working tree in dev mode.
func newTemplateEngine(cfg *config.Config) *html.Engine {
	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	engine := html.NewFileSystem(httpFS, ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		engine = html.New("./internal/web/templates", ".gohtml")
		engine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	engine.AddFunc("str", models.StringValue)
	engine.AddFunc("displayURL", directory.DisplayURL)
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})

	return engine
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	fiberCfg := fiber.Config{
		ReadBufferSize: 8192,
		AppName:        "LinkShelf",
		CaseSensitive:  true,
		Prefork:        false,
		Immutable:      true,
		Views:          newTemplateEngine(cfg),
	}

	// without proxy headers X-Forwarded-* is ignored, also for the Secure cookie flag
	if cfg.Webserver.EnableProxyHeader {
		fiberCfg.ProxyHeader = fiber.HeaderXForwardedFor
	} else {
		fiberCfg.EnableTrustedProxyCheck = true
	}

	app := fiber.New(fiberCfg)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	authService := auth.NewService(db, cfg.Webserver.Session.ExpiryTime)

	service := &Service{
		cfg:         cfg,
		App:         app,
		db:          db,
		authService: authService,
	}

	app.Get(CheckAlivePath, service.CheckAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(appearancemw.New(db, cfg.Webserver.FixedBackgroundImage))
	app.Use(handler.AdminPath, authmw.New(authService))

	mustInit(listing.Handler.Init(app, cfg, db))
	mustInit(suggest.Handler.Init(app, cfg, db))
	mustInit(login.Handler.Init(app, cfg, db, authService))
	logout.Handler.Init(app, cfg, authService)
	mustInit(dashboard.Handler.Init(app, cfg, db))
	adminlink.Handler.Init(app, cfg, db, &dashboard.Handler)
	adminsuggestion.Handler.Init(app, cfg, db)
	adminappearance.Handler.Init(app, cfg, db, &dashboard.Handler)

	return service
}

func mustInit(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init handler")
	}
}
