package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"chatbuilder/backend/internal/api"
	"chatbuilder/backend/internal/auth"
	"chatbuilder/backend/internal/billing"
	"chatbuilder/backend/internal/config"
	"chatbuilder/backend/internal/database"
	"chatbuilder/backend/internal/llm"
	"chatbuilder/backend/internal/model"
	"chatbuilder/backend/internal/repository"
	"chatbuilder/backend/internal/service"
	"chatbuilder/backend/internal/session"
)

const (
	shutdownTimeout = 15 * time.Second
	limiterIdleTTL  = 10 * time.Minute
)

// App holds the wired application.
type App struct {
	DB       *sql.DB
	Server   *http.Server
	Sessions *session.Manager
	Limiter  *api.RateLimiter
}

// NewApp opens the database and wires every component from cfg.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.")

	provider, err := llm.NewProvider(cfg.CompletionProvider, cfg.AnthropicURL, cfg.AnthropicAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIAPIKey)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	dispatcher := llm.NewDispatcher(provider, cfg.CompletionMaxTokens, cfg.SystemPrompt)

	chatRepo := repository.NewSQLiteChatRepository(db)
	profileRepo := repository.NewSQLiteProfileRepository(db)

	sessions := session.NewManager(dispatcher, cfg.SessionIdleTTL,
		session.WithObserver(service.NewHistoryRecorder(chatRepo)),
		session.WithTimeout(cfg.CompletionTimeout),
	)

	modelService := service.NewModelService(cfg.DefaultEnabledModels...)
	settingsService := service.NewSettingsService(profileRepo, modelService, defaultSettings(cfg))
	chatService := service.NewChatService(chatRepo, sessions, settingsService)
	billingService := service.NewBillingService(billing.NewClient(cfg.BillingURL, cfg.BillingAPIKey), cfg.SiteURL)

	limiter := api.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	router := api.NewRouter(api.Handlers{
		Chats:   api.NewChatHandler(chatService),
		Models:  api.NewModelHandler(modelService, settingsService),
		Billing: api.NewBillingHandler(billingService),
	}, auth.NewClient(cfg.AuthURL, cfg.AuthAnonKey), limiter)

	port := cfg.AppPort
	if port == 0 {
		port = 8000
	}
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Message routes wait for the completion.
		IdleTimeout:       120 * time.Second,
	}

	return &App{DB: db, Server: server, Sessions: sessions, Limiter: limiter}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to start application", "error", err)
		return 1
	}
	defer func() {
		if err := app.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go app.Sessions.Run(ctx)
	go app.sweepLimiters(ctx)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", app.Server.Addr)
		serverErr <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
		return 0
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	code := 0
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		code = 1
	}
	// Turns run detached from their requests; their replies must reach the
	// database before the deferred close.
	if err := app.Sessions.Drain(shutdownCtx); err != nil {
		slog.Warn("Cancelled completions still in flight at shutdown", "error", err)
	}
	return code
}

func (a *App) sweepLimiters(ctx context.Context) {
	ticker := time.NewTicker(limiterIdleTTL)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := a.Limiter.Sweep(limiterIdleTTL); n > 0 {
				slog.Debug("Removed idle rate limiters", "count", n)
			}
		}
	}
}

func defaultSettings(cfg *config.Config) model.ModelSettings {
	settings := model.ModelSettings{EnabledModels: cfg.DefaultEnabledModels}
	if cfg.DefaultSelectedModel != "" {
		selected := cfg.DefaultSelectedModel
		settings.SelectedModel = &selected
	}
	return settings
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
