package bootstrap

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/finadvise/auth-service/internal/application/auth"
	"github.com/finadvise/auth-service/internal/audit"
	"github.com/finadvise/auth-service/internal/config"
	"github.com/finadvise/auth-service/internal/domain"
	"github.com/finadvise/auth-service/internal/infrastructure/db/postgres"
	"github.com/finadvise/auth-service/internal/infrastructure/memory"
	"github.com/finadvise/auth-service/internal/infrastructure/redis"
	"github.com/finadvise/auth-service/internal/infrastructure/security"
	"github.com/finadvise/auth-service/internal/logger"
	"github.com/finadvise/auth-service/internal/transport/http/handlers"
	"github.com/finadvise/auth-service/internal/transport/http/middleware"
	"github.com/finadvise/auth-service/internal/transport/http/response"
	"github.com/finadvise/auth-service/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing.
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)
	NewDB      func(dsn string) (*sql.DB, error)
	NewRedis   func(cfg *config.Config) *redis.Client
	NewRouter  func(router.Deps) (http.Handler, error)
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	var cleanupFns []func()

	// 1) security primitives; the signing secret lives here and is never logged
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	// 2) credential store: Postgres when configured, seeded memory otherwise.
	// Constructed once and passed by reference; nothing reads a global handle.
	var userRepo auth.UserRepo
	var sqlDB *sql.DB

	if cfg.DBAddr != "" {
		db, err := deps.NewDB(cfg.DBAddr)
		if err != nil {
			return nil, nil, err
		}
		sqlDB = db
		cleanupFns = append(cleanupFns, func() { _ = db.Close() })

		pgRepo := postgres.NewUserRepo(db)
		if cfg.Env == "dev" {
			postgres.SeedUsers(context.Background(), pgRepo, hasher, logger.Logger)
		}
		userRepo = pgRepo
	} else {
		logger.Logger.Info().Msg("DB_ADDR not set; using seeded in-memory store")
		memRepo := memory.NewUserRepo()
		memory.SeedUsers(context.Background(), memRepo, hasher, logger.Logger)
		userRepo = memRepo
	}

	// 3) redis (optional, best-effort)
	var limiter *redis.FixedWindowLimiter
	if cfg.RedisAddr != "" && deps.NewRedis != nil {
		c := deps.NewRedis(cfg)
		if err := c.Ping(context.Background()); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; login rate limit disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			limiter = redis.NewFixedWindowLimiter(c)
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	// 4) service
	authSvc := auth.NewService(userRepo, hasher, signer, auth.Config{
		AccessTTL: cfg.AccessTokenTTL,
	})

	// 5) handlers + middleware
	aud := audit.New(logger.Logger)

	authH := handlers.NewAuthHandler(authSvc, aud)
	protectedH := handlers.NewProtectedHandler(authSvc)
	healthH := handlers.NewHealthHandler(sqlDB)

	authMW := middleware.Auth(signer, response.WriteError)
	requireRoles := func(required domain.RoleSet) func(http.Handler) http.Handler {
		return middleware.RequireRoles(required, aud, response.WriteError)
	}

	var rlLogin func(http.Handler) http.Handler
	if limiter != nil {
		rlLogin = middleware.RateLimitFixedWindow(limiter, middleware.FixedWindowConfig{
			RouteKey: "auth.login",
			Limit:    cfg.LoginRateLimit,
			Window:   cfg.LoginRateWindow,
		}, response.WriteError)
	}

	// 6) router
	mux, err := deps.NewRouter(router.Deps{
		Health:       healthH,
		Auth:         authH,
		Protected:    protectedH,
		RequestIDMW:  middleware.RequestID,
		AuthMW:       authMW,
		RequireRoles: requireRoles,
		RLLogin:      rlLogin,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 7) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB:      config.NewDB,
		NewRedis: func(cfg *config.Config) *redis.Client {
			return redis.New(redis.Options{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
				DB:       cfg.RedisDB,
			})
		},
		NewRouter: router.New,
	}
}

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
