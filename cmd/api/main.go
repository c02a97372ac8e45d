package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/campusconnect/campus-service/internal/api/http"
	"github.com/campusconnect/campus-service/internal/api/http/handlers"
	"github.com/campusconnect/campus-service/internal/auth"
	"github.com/campusconnect/campus-service/internal/config"
	"github.com/campusconnect/campus-service/internal/events"
	"github.com/campusconnect/campus-service/internal/observability"
	"github.com/campusconnect/campus-service/internal/persistence"
	"github.com/campusconnect/campus-service/internal/repository"
	"github.com/campusconnect/campus-service/internal/service"
	"github.com/campusconnect/campus-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	accountRepo := repository.NewAccountRepository(pool)
	academicsRepo := repository.NewAcademicsRepository(pool)
	financeRepo := repository.NewFinanceRepository(pool)
	hostelRepo := repository.NewHostelRepository(pool)
	libraryRepo := repository.NewLibraryRepository(pool)
	hrRepo := repository.NewHRRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	limiter := auth.NewLoginLimiter(redis.Client, logger, cfg.RateLimit.LoginAttempts, cfg.RateLimit.LoginWindowSecond)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		AccountRepo: accountRepo,
		Limiter:     limiter,
		Dispatcher:  dispatcher,
	})
	auditService := service.NewAuditService(dispatcher, logger)
	worker.StartAuditWorker(auditService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager())

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Academics:      handlers.NewAcademicsHandler(service.NewAcademicsService(academicsRepo)),
		Finance:        handlers.NewFinanceHandler(service.NewFinanceService(financeRepo)),
		Hostel:         handlers.NewHostelHandler(service.NewHostelService(hostelRepo)),
		Library:        handlers.NewLibraryHandler(service.NewLibraryService(libraryRepo)),
		HR:             handlers.NewHRHandler(service.NewHRService(hrRepo)),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
