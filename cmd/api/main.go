// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carterperez-dev/estateease-api/internal/admin"
	"github.com/carterperez-dev/estateease-api/internal/agreement"
	"github.com/carterperez-dev/estateease-api/internal/announcement"
	"github.com/carterperez-dev/estateease-api/internal/apartment"
	"github.com/carterperez-dev/estateease-api/internal/auth"
	"github.com/carterperez-dev/estateease-api/internal/config"
	"github.com/carterperez-dev/estateease-api/internal/core"
	"github.com/carterperez-dev/estateease-api/internal/coupon"
	"github.com/carterperez-dev/estateease-api/internal/health"
	"github.com/carterperez-dev/estateease-api/internal/metrics"
	"github.com/carterperez-dev/estateease-api/internal/middleware"
	"github.com/carterperez-dev/estateease-api/internal/payment"
	"github.com/carterperez-dev/estateease-api/internal/server"
	"github.com/carterperez-dev/estateease-api/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"name", cfg.Database.Name,
		"max_pool_size", cfg.Database.MaxPoolSize,
		"transactions", cfg.Database.Transactions,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redis != nil {
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Otel.ServiceName)
	}

	var jwtManager *auth.JWTManager
	if cfg.JWT.Enabled {
		jwtManager, err = auth.NewVerifier(cfg.JWT)
		if err != nil {
			return err
		}
		logger.Info("JWT verifier initialized",
			"algorithm", "ES256",
			"key_id", jwtManager.KeyID(),
		)
	}

	var tx core.Transactor = core.NoTx{}
	if cfg.Database.Transactions {
		tx = db
	}

	apartmentSvc := apartment.NewService(apartment.NewRepository(db.DB))

	userSvc := user.NewService(user.NewRepository(db.DB), m)

	agreementSvc := agreement.NewService(agreement.ServiceConfig{
		Repo: agreement.NewRepository(db.DB),
		Policy: agreement.ClaimsPolicy{
			Fallback: agreement.StoredRolePolicy{Roles: userSvc},
		},
		Roles:      userSvc,
		Transactor: tx,
		Metrics:    m,
	})

	paymentSvc := payment.NewService(
		payment.NewRepository(db.DB),
		payment.NewStripeGateway(cfg.Payment.SecretKey),
		cfg.Payment.Currency,
		m,
	)

	couponSvc := coupon.NewService(coupon.NewRepository(db.DB), m)

	checkers := []health.NamedChecker{{Name: "database", Checker: db}}
	if redis != nil {
		checkers = append(checkers, health.NamedChecker{Name: "redis", Checker: redis})
	}
	healthHandler := health.NewHandler(checkers...)

	adminCfg := admin.HandlerConfig{
		DBStats: func() core.PoolStats { return db.Stats(cfg.Database.MaxPoolSize) },
		DBPing:  db.Ping,
	}
	if redis != nil {
		adminCfg.RedisStats = redis.PoolStats
		adminCfg.RedisPing = redis.Ping
	}

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	if m != nil {
		router.Use(m.Middleware)
	}
	if cfg.RateLimit.Enabled {
		router.Use(
			middleware.NewRateLimiter(redis.ClientOrNil(), middleware.RateLimitConfig{
				Limit: middleware.PerWindow(
					cfg.RateLimit.Requests,
					cfg.RateLimit.Window,
					cfg.RateLimit.Burst,
				),
				FailOpen:   true,
				BypassFunc: middleware.BypassOperational,
			}).Handler,
		)
	}
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))
	if jwtManager != nil {
		router.Use(middleware.OptionalAuth(jwtManager))
	}

	healthHandler.RegisterRoutes(router)
	if m != nil {
		router.Method(http.MethodGet, cfg.Metrics.Path, m.Handler())
	}
	if jwtManager != nil {
		router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())
	}

	apartment.NewHandler(apartmentSvc).RegisterRoutes(router)
	agreement.NewHandler(agreementSvc).RegisterRoutes(router)
	payment.NewHandler(paymentSvc).RegisterRoutes(router)
	coupon.NewHandler(couponSvc).RegisterRoutes(router)
	user.NewHandler(userSvc).RegisterRoutes(router)
	announcement.NewHandler(announcement.NewRepository(db.DB)).RegisterRoutes(router)
	admin.NewHandler(adminCfg).RegisterRoutes(router)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
