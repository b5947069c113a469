package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"
	ytfetcherroot "github.com/whitefall/ytfetcher"
	"github.com/whitefall/ytfetcher/internal/config"
	"github.com/whitefall/ytfetcher/internal/handler"
	"github.com/whitefall/ytfetcher/internal/middleware"
	"github.com/whitefall/ytfetcher/internal/repository"
	"github.com/whitefall/ytfetcher/internal/server"
	"github.com/whitefall/ytfetcher/internal/service"
	"github.com/whitefall/ytfetcher/internal/storage"
	"github.com/whitefall/ytfetcher/internal/telegram"
	"github.com/whitefall/ytfetcher/internal/worker"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// .env is optional; real deployments pass the environment directly
	godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Storage root for finished downloads
	store, err := storage.New(cfg.DownloadRoot)
	if err != nil {
		slog.Error("failed to prepare download root", "error", err)
		os.Exit(1)
	}

	// History ledger is optional: no DATABASE_URL, no /history
	var history *repository.Downloads
	if cfg.HistoryEnabled() {
		dbPool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		migrationsFS, err := fs.Sub(ytfetcherroot.MigrationsFS, "migrations")
		if err != nil {
			slog.Error("failed to load embedded migrations", "error", err)
			os.Exit(1)
		}
		if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		history = repository.NewDownloads(dbPool)
	} else {
		slog.Warn("DATABASE_URL not set, download history disabled")
	}

	// Worker pool for the blocking extraction runs
	pool := worker.NewPool(cfg.DownloadWorkers)
	defer pool.Close()

	// Initialize services
	pending := service.NewPendingStore()
	downloadService := service.NewDownloadService(cfg, store, pool)
	linkService := service.NewLinkService(cfg.PublicBaseURL)
	previewService := service.NewPreviewService()

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.RateLimit(),
		),
	}
	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	// Initialize telegram logger
	tgLogger := telegram.NewTelegramLogger(b, cfg)

	// Initialize handler
	h := handler.New(handler.Deps{
		Bot:       b,
		Cfg:       cfg,
		Pending:   pending,
		Downloads: downloadService,
		Links:     linkService,
		Preview:   previewService,
		History:   history,
		TgLogger:  tgLogger,
	})

	// Register command and callback handlers
	h.Register()

	// Default text handler: everything that is not a command goes to link capture
	b.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil {
			return
		}
		if len(update.Message.Text) > 0 && update.Message.Text[0] == '/' {
			return
		}
		h.HandleLink(ctx, b, update)
	})

	// Liveness endpoint
	health := server.NewHealth(cfg.Port)
	go health.Start()

	// Start bot
	slog.Info("starting bot", "download_root", store.Root(), "base_url", cfg.PublicBaseURL)
	b.Start(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := health.Shutdown(shutdownCtx); err != nil {
		slog.Error("health listener shutdown", "error", err)
	}

	slog.Info("bot stopped gracefully")
}
