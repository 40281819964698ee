package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"contactbook/docs"
	"contactbook/internal/auth"
	"contactbook/internal/cache"
	"contactbook/internal/config"
	"contactbook/internal/db"
	"contactbook/internal/handler"
	"contactbook/internal/logger"
	"contactbook/internal/repository"
	"contactbook/internal/router"
	"contactbook/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Contact Book API
// @version 1.0
// @description Address book API with JWT authentication, user management and contacts.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	gormDB, err := db.Open(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("database init")
	}
	if cfg.DB.Reset {
		log.Warn().Msg("RESET_DB=true detected, dropping all tables")
	}
	if err := db.Migrate(gormDB, cfg.DB.Reset); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer cacheClient.Close()
	if !cacheClient.Enabled() {
		log.Info().Msg("cache disabled")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	// Initialize auth components
	hasher := auth.NewBcryptHasher(auth.DefaultBcryptCost)
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	// Initialize services
	userService := service.NewUserService(userRepo, hasher, cacheClient)
	contactService := service.NewContactService(contactRepo, cacheClient)
	authService := service.NewAuthService(userRepo, hasher, log)
	sessions := service.NewSessionIssuer(jwtService)

	// Initialize handlers
	handlers := router.Handlers{
		Auth: handler.NewAuthHandler(authService, sessions, userService, handler.CookieConfig{
			Name:   cfg.JWT.CookieName,
			TTL:    jwtService.Expiry(),
			Secure: cfg.IsProduction(),
		}),
		Users:    handler.NewUserHandler(userService),
		Contacts: handler.NewContactHandler(contactService),
		Health: handler.NewHealthHandler(map[string]handler.Check{
			"database": func(ctx context.Context) error { return db.Ping(ctx, gormDB) },
			"cache":    cacheClient.Ping,
		}),
	}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}

	e := echo.New()
	router.Register(e, router.Options{
		Log:   log,
		Guard: auth.NewGuard(jwtService),
	}, handlers)

	log.Info().Str("url", swaggerURL(cfg)).Msg("swagger documentation available")

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("shutdown complete")
}

// swaggerURL returns the address of the swagger UI. SWAGGER_HOST may already include a scheme.
func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
