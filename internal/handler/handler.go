package handler

import (
	"github.com/go-telegram/bot"
	"github.com/whitefall/ytfetcher/internal/config"
	"github.com/whitefall/ytfetcher/internal/repository"
	"github.com/whitefall/ytfetcher/internal/service"
	"github.com/whitefall/ytfetcher/internal/telegram"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot       *bot.Bot
	cfg       *config.Config
	pending   *service.PendingStore
	downloads *service.DownloadService
	links     *service.LinkService
	preview   *service.PreviewService
	history   *repository.Downloads
	tgLogger  *telegram.TelegramLogger
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot       *bot.Bot
	Cfg       *config.Config
	Pending   *service.PendingStore
	Downloads *service.DownloadService
	Links     *service.LinkService
	Preview   *service.PreviewService
	History   *repository.Downloads
	TgLogger  *telegram.TelegramLogger
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:       deps.Bot,
		cfg:       deps.Cfg,
		pending:   deps.Pending,
		downloads: deps.Downloads,
		links:     deps.Links,
		preview:   deps.Preview,
		history:   deps.History,
		tgLogger:  deps.TgLogger,
	}
}
