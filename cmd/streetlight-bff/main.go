package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/schooldevops/openapi-hub/internal/bff/handler"
	"github.com/schooldevops/openapi-hub/internal/bff/kafka"
	bffService "github.com/schooldevops/openapi-hub/internal/bff/service"
	"github.com/schooldevops/openapi-hub/internal/bff/store"
	"github.com/schooldevops/openapi-hub/internal/config"
	"github.com/schooldevops/openapi-hub/internal/infrastructure/security"
	"github.com/schooldevops/openapi-hub/internal/utils/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()
	log = log.With(zap.String("service", "streetlight-bff"))

	passwordHasher, err := security.NewArgon2idPasswordHasher(security.DefaultArgon2idParams())
	if err != nil {
		log.Fatal("Failed to initialize password hasher", zap.Error(err))
	}

	tokenManager, err := security.NewTokenManager(cfg.JWT)
	if err != nil {
		log.Fatal("Failed to initialize token manager", zap.Error(err))
	}

	memStore := store.NewMemoryStore()

	var scheduleStore store.ScheduleStore
	redisClient, err := store.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, keeping schedules in memory", zap.Error(err))
		scheduleStore = store.NewMemoryScheduleStore()
	} else {
		defer redisClient.Close()
		scheduleStore = store.NewRedisScheduleStore(redisClient)
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	authService := bffService.NewAuthService(memStore, passwordHasher, tokenManager, log)
	registrationService := bffService.NewRegistrationService(memStore, passwordHasher, log)
	streetlightService := bffService.NewStreetlightService(producer, scheduleStore, cfg.Kafka.TopicPrefix, log)
	specService := bffService.NewSpecService(memStore, log)

	router := handler.NewRouter(handler.RouterDeps{
		AuthService:         authService,
		RegistrationService: registrationService,
		StreetlightService:  streetlightService,
		SpecService:         specService,
		Logger:              log,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped")
}
