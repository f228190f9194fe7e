package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"accountservice/internal/cache"
	"accountservice/internal/config"
	"accountservice/internal/data"
	"accountservice/internal/db"
	"accountservice/internal/events"
	"accountservice/internal/handler"
	"accountservice/internal/logging"
	"accountservice/internal/middleware"
	"accountservice/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	logger := logging.New(zapLogger)

	cfg, err := config.New()
	if err != nil {
		logger.Fatal(ctx, "cannot create config", zap.Error(err))
	}

	database, err := db.New(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot create db", zap.Error(err))
	}
	defer database.Close()

	redisConn := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})
	identityCache := cache.NewIdentityCache(redisConn, cfg.IdentityCacheTTL)

	publisher := events.NewPublisher(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
	defer func() { _ = publisher.Close() }()

	accountRepo := data.NewAccountRepository(database)
	enrollmentRepo := data.NewEnrollmentRepository(database)
	assignmentRepo := data.NewAssignmentRepository(database)
	notificationRepo := data.NewNotificationRepository(database)

	lifecycleService := service.NewLifecycleService(
		accountRepo,
		enrollmentRepo,
		assignmentRepo,
		notificationRepo,
		publisher,
		identityCache,
	)
	ackService := service.NewAckService(notificationRepo)

	h := handler.New(lifecycleService, ackService)
	identityMiddleware := middleware.NewIdentityMiddleware(accountRepo, identityCache)

	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(middleware.NewTimeoutMiddleware(cfg.RequestTimeout))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, 1<<20)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	h.RegisterRoutes(r, identityMiddleware)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	logger.Info(ctx, "Starting HTTP server...", zap.Int("port", cfg.HTTPPort))
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "failed to serve", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "shutdown failed", zap.Error(err))
	}
	logger.Info(ctx, "Server Stopped")
}
