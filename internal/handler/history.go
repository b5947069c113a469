package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/whitefall/ytfetcher/internal/config"
	tg "github.com/whitefall/ytfetcher/internal/telegram"
)

func (h *Handler) handleHistory(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	if !h.history.Enabled() {
		if _, err := tg.Send(ctx, b, chatID, "История загрузок не ведётся на этом сервере."); err != nil {
			slog.Error("send history reply", "error", err, "chat_id", chatID)
		}
		return
	}

	downloads, err := h.history.ListByChat(ctx, chatID, config.HistoryPageSize)
	if err != nil {
		slog.Error("list history", "error", err, "chat_id", chatID)
		if _, err := tg.Send(ctx, b, chatID, "Произошла ошибка. Попробуйте позже."); err != nil {
			slog.Error("send history reply", "error", err, "chat_id", chatID)
		}
		return
	}

	if len(downloads) == 0 {
		if _, err := tg.Send(ctx, b, chatID, "Вы пока ничего не скачивали."); err != nil {
			slog.Error("send history reply", "error", err, "chat_id", chatID)
		}
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📥 Последние загрузки (%d):\n\n", len(downloads)))
	for _, d := range downloads {
		sb.WriteString(fmt.Sprintf("• %s — %s, %s\n%s\n\n",
			d.FileName,
			tg.HumanSize(d.SizeBytes),
			d.CreatedAt.Format("02.01.2006 15:04"),
			h.links.Publish(d.FileName),
		))
	}

	if _, err := tg.Send(ctx, b, chatID, sb.String()); err != nil {
		slog.Error("send history", "error", err, "chat_id", chatID)
	}
}
