package handler

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	tg "github.com/whitefall/ytfetcher/internal/telegram"
)

var urlRe = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://\S+`)

// ExtractURL returns the first scheme-prefixed token in text.
func ExtractURL(text string) (string, bool) {
	url := urlRe.FindString(text)
	return url, url != ""
}

// HandleLink is the default text handler: it captures the first URL in the
// message, stores it as the chat's pending link and offers the quality
// buttons. Exported because main wires it as the bot's fallback text route.
func (h *Handler) HandleLink(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	url, ok := ExtractURL(update.Message.Text)
	if !ok {
		if _, err := tg.Send(ctx, b, chatID, "Не нашёл ссылку. Отправьте полную URL."); err != nil {
			slog.Error("send no-url reply", "error", err, "chat_id", chatID)
		}
		return
	}

	h.pending.Set(chatID, url)

	prompt := "Выберите качество загрузки:"
	if title, err := h.preview.PageTitle(ctx, url); err == nil && title != "" {
		prompt = fmt.Sprintf("Выберите качество загрузки:\n«%s»", title)
	}

	keyboard := tg.InlineKeyboard(h.qualityRow())
	if _, err := tg.SendWithKeyboard(ctx, b, chatID, prompt, keyboard); err != nil {
		slog.Error("send quality prompt", "error", err, "chat_id", chatID)
	}
}
