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

	"github.com/schooldevops/openapi-hub/internal/config"
	httpHandler "github.com/schooldevops/openapi-hub/internal/handler/http"
	"github.com/schooldevops/openapi-hub/internal/infrastructure/database"
	"github.com/schooldevops/openapi-hub/internal/infrastructure/database/postgres"
	"github.com/schooldevops/openapi-hub/internal/infrastructure/security"
	"github.com/schooldevops/openapi-hub/internal/service"
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
	log = log.With(zap.String("service", "api-hub"))

	if cfg.Database.AutoMigrate {
		log.Info("Running database migrations")
		if err := database.RunMigrations(cfg.Database, "migrations", log); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	dbPool, err := postgres.NewDBPool(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize PostgreSQL connection pool", zap.Error(err))
	}
	defer dbPool.Close()

	userRepo := database.NewPgxUserRepository(dbPool)
	projectRepo := database.NewPgxProjectRepository(dbPool)
	memberRepo := database.NewPgxProjectMemberRepository(dbPool)
	credentialRepo := database.NewPgxProjectCredentialRepository(dbPool)
	specRepo := database.NewPgxAPISpecRepository(dbPool)

	passwordHasher, err := security.NewArgon2idPasswordHasher(security.DefaultArgon2idParams())
	if err != nil {
		log.Fatal("Failed to initialize password hasher", zap.Error(err))
	}

	userService := service.NewUserService(userRepo, passwordHasher, log)
	projectService := service.NewProjectService(projectRepo, log)
	memberService := service.NewProjectMemberService(memberRepo, log)
	credentialService := service.NewProjectCredentialService(credentialRepo, log)
	specService := service.NewAPISpecService(specRepo, log)

	router := httpHandler.NewRouter(httpHandler.RouterDeps{
		UserService:       userService,
		ProjectService:    projectService,
		MemberService:     memberService,
		CredentialService: credentialService,
		SpecService:       specService,
		Logger:            log,
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
