package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/madrasah/internal/app/controllers"
	appMigrations "github.com/yigit/madrasah/internal/app/migrations"
	appRepos "github.com/yigit/madrasah/internal/app/repositories"
	"github.com/yigit/madrasah/internal/app/repositories/memory"
	appRoutes "github.com/yigit/madrasah/internal/app/routes"
	appServices "github.com/yigit/madrasah/internal/app/services"
	"github.com/yigit/madrasah/internal/config"
	"github.com/yigit/madrasah/internal/db"
	appMiddleware "github.com/yigit/madrasah/internal/middleware"
	pkgAuth "github.com/yigit/madrasah/internal/pkg/auth"
	"github.com/yigit/madrasah/internal/pkg/helpers"
	"github.com/yigit/madrasah/internal/pkg/logger"
	"github.com/yigit/madrasah/internal/pkg/metrics"
	"github.com/yigit/madrasah/internal/pkg/session"
	"github.com/yigit/madrasah/internal/seed"
)

// TokenIssuer is the issuer claim of session cookies
const TokenIssuer = "madrasah"

// Database is the storage selected by database.driver
type Database struct {
	Repos    *appRepos.Repositories
	postgres *db.PostgresDB
}

// Close releases the connection pool, if any
func (d *Database) Close() {
	if d != nil && d.postgres != nil {
		d.postgres.Close()
	}
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Sessions    *session.Manager
	Cookie      appMiddleware.SessionCookie
	Metrics     *metrics.Metrics // nil when disabled
	RateLimiter *appMiddleware.RateLimiter
	Controllers appRoutes.Controllers
	Logger      zerolog.Logger
}

// Close releases the session store
func (d *Dependencies) Close() error {
	if d == nil || d.Sessions == nil {
		return nil
	}
	return d.Sessions.Close()
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  prettyLog,
		Service: "madrasah-api",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured storage, runs migrations and seeds default data.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Database, error) {
	database := &Database{}

	switch cfg.Database.Driver {
	case config.DriverMemory:
		lgr.Warn().Msg("Using in-memory storage; data is lost on restart")
		database.Repos = memory.NewRepositories()

	default:
		lgr.Info().Msg("Establishing database connection...")
		pg, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")

		if cfg.Database.AutoMigrate {
			lgr.Info().Msg("Running database migrations...")
			if err := appMigrations.NewMigrator(pg.SQL, lgr).Up(ctx); err != nil {
				lgr.Error().Err(err).Msg("Database migration error")
				pg.Close()
				return nil, fmt.Errorf("database migrations failed: %w", err)
			}
			lgr.Info().Msg("Database migrations successfully applied.")
		}

		database.postgres = pg
		database.Repos = appRepos.NewRepositories(pg.SQL)
	}

	if cfg.Seed.Enabled {
		opts := seed.Options{
			AdminUsername: cfg.Seed.AdminUsername,
			AdminPassword: cfg.Seed.AdminPassword,
			SampleNews:    cfg.Seed.SampleNews,
		}
		hasher := pkgAuth.NewPasswordHasher(cfg.Auth.BcryptCost)
		if err := seed.CreateDefaultData(ctx, database.Repos, hasher, opts, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// SetupSessionStore creates the configured session store.
func SetupSessionStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (session.Store, error) {
	if cfg.Session.Store != config.SessionStoreRedis {
		lgr.Info().Msg("Using in-memory session store")
		return session.NewMemoryStore(), nil
	}

	store, err := session.NewRedisStore(ctx, session.RedisOptions{
		Addr:      cfg.Session.RedisAddr,
		Password:  cfg.Session.RedisPassword,
		DB:        cfg.Session.RedisDB,
		KeyPrefix: cfg.Session.KeyPrefix,
	})
	if err != nil {
		lgr.Error().Err(err).Str("addr", cfg.Session.RedisAddr).Msg("Failed to connect to redis")
		return nil, err
	}
	lgr.Info().Str("addr", cfg.Session.RedisAddr).Msg("Using redis session store")
	return store, nil
}

// BuildDependencies initializes services, the session manager and controllers.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, store session.Store, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Repos: repos, Logger: lgr}

	deps.Services = appServices.NewServices(repos, appServices.Options{
		BcryptCost:        cfg.Auth.BcryptCost,
		AllowRegistration: cfg.Auth.AllowRegistration,
	}, lgr)

	ttl := helpers.ParseDuration(cfg.Session.TTL, 24*time.Hour)
	deps.Sessions = session.NewManager(store, pkgAuth.NewTokenSigner(cfg.Session.Secret, TokenIssuer), ttl)
	deps.Cookie = appMiddleware.SessionCookie{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.Secure,
		TTL:    ttl,
	}

	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.New()
	}
	if cfg.RateLimit.Enabled {
		deps.RateLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	deps.Controllers = appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(deps.Services.Auth, deps.Sessions, deps.Cookie, deps.Metrics, lgr),
		Contact:      appControllers.NewContactController(deps.Services.Contact, deps.Metrics),
		News:         appControllers.NewNewsController(deps.Services.News),
		Registration: appControllers.NewRegistrationController(deps.Services.Registration, deps.Metrics),
		Alumni:       appControllers.NewAlumniController(deps.Services.Alumni, deps.Metrics),
		Event:        appControllers.NewEventController(deps.Services.Event),
		Health:       appControllers.NewHealthController(),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Recovery(lgr),
	)
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware(cfg.Metrics.Path))
		router.GET(cfg.Metrics.Path, gin.WrapH(deps.Metrics.Handler()))
	}
	router.Use(
		appMiddleware.RequestTimeout(helpers.ParseDuration(cfg.Server.RequestTimeout, 0)),
		appMiddleware.Sessions(deps.Sessions, deps.Cookie),
	)

	appRoutes.SetupRouter(router, deps.Controllers, deps.RateLimiter)

	router.NoRoute(appMiddleware.NoRoute())
	router.NoMethod(appMiddleware.NoMethod())

	return router
}
