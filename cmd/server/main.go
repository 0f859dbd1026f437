package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gatherly/api/internal/config"
	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/handler"
	"github.com/gatherly/api/internal/middleware"
	"github.com/gatherly/api/internal/repository"
	"github.com/gatherly/api/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	rsvpRepo := repository.NewRSVPRepository(db)

	// Initialize services
	tokenService := service.NewTokenService(service.TokenServiceConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Duration: cfg.TokenDuration(),
	})
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo)
	rsvpService := service.NewRSVPService(rsvpRepo, eventRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	eventHandler := handler.NewEventHandler(eventService)
	rsvpHandler := handler.NewRSVPHandler(rsvpService)
	healthHandler := handler.NewHealthHandler(db)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Auth endpoints (public)
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)

	// Route guards
	authMiddleware := middleware.Auth(tokenService)
	adminMiddleware := middleware.AdminOnly(tokenService)

	// User directory endpoints
	mux.HandleFunc("GET /v1/users", userHandler.List)
	mux.Handle("GET /v1/users/{userId}", authMiddleware(http.HandlerFunc(userHandler.Get)))
	mux.Handle("PATCH /v1/profile", authMiddleware(http.HandlerFunc(userHandler.UpdateProfile)))

	// Event directory endpoints
	mux.HandleFunc("GET /v1/events", eventHandler.List)
	mux.HandleFunc("GET /v1/events/{eventId}", eventHandler.Get)
	mux.Handle("PATCH /v1/events/{eventId}", adminMiddleware(http.HandlerFunc(eventHandler.Update)))

	// Attendance endpoints
	mux.Handle("POST /v1/events/{eventId}/rsvp", authMiddleware(http.HandlerFunc(rsvpHandler.Add)))
	mux.Handle("DELETE /v1/events/{eventId}/rsvp", authMiddleware(http.HandlerFunc(rsvpHandler.Cancel)))
	mux.HandleFunc("GET /v1/events/{eventId}/attendees", rsvpHandler.Attendees)

	// Apply global middleware
	wrapped := middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
