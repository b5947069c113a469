package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/whitefall/ytfetcher/internal/telegram"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	_, err := telegram.Send(ctx, b, update.Message.Chat.ID,
		"Привет! Отправьте ссылку на видео, и я предложу варианты скачивания.")
	if err != nil {
		slog.Error("send start reply", "error", err)
	}
}
