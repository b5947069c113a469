package handler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/whitefall/ytfetcher/internal/domain"
	tg "github.com/whitefall/ytfetcher/internal/telegram"
)

func (h *Handler) qualityRow() []models.InlineKeyboardButton {
	row := make([]models.InlineKeyboardButton, 0, len(domain.Choices))
	for _, choice := range domain.Choices {
		row = append(row, tg.InlineButton(choice.Label(), CallbackQualityPrefix+string(choice)))
	}
	return row
}

func (h *Handler) handleQuality(ctx context.Context, b *bot.Bot, update *models.Update) {
	query := update.CallbackQuery
	if query == nil {
		return
	}

	// Acknowledge right away or the client shows a spinner until timeout.
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: query.ID})

	msg := query.Message.Message
	if msg == nil {
		return
	}
	chatID := msg.Chat.ID

	choice := domain.QualityChoice(strings.TrimPrefix(query.Data, CallbackQualityPrefix))
	if !choice.Valid() {
		// Unreachable with the fixed button set, kept for replayed callbacks.
		tg.EditText(ctx, b, chatID, msg.ID, "Неизвестный вариант качества.", nil)
		return
	}

	url, ok := h.pending.Get(chatID)
	if !ok {
		tg.EditText(ctx, b, chatID, msg.ID, "Сначала отправьте ссылку на видео.", nil)
		return
	}
	// From here on the pending link is consumed, success or not.
	defer h.pending.Clear(chatID)

	tg.ClearKeyboard(ctx, b, chatID, msg.ID)

	status, err := tg.Send(ctx, b, chatID, "Скачиваю, пожалуйста подождите…")
	if err != nil {
		slog.Error("send status message", "error", err, "chat_id", chatID)
		return
	}

	result, err := h.downloads.Download(ctx, url, choice)
	if err != nil {
		slog.Error("download failed", "error", err, "url", url, "choice", choice)
		h.tgLogger.LogDownloadError(err, url)
		text := "Произошла ошибка. Попробуйте позже."
		if domain.IsExtractionError(err) || errors.Is(err, domain.ErrEmptyOutput) {
			text = "Не удалось скачать видео. Попробуйте другую ссылку."
		}
		tg.EditText(ctx, b, chatID, status.ID, text, nil)
		return
	}

	h.replyWithResult(ctx, b, chatID, status.ID, url, choice, result)
}

func (h *Handler) replyWithResult(ctx context.Context, b *bot.Bot, chatID int64, statusID int, url string, choice domain.QualityChoice, result *domain.DownloadResult) {
	var size int64
	if fi, err := os.Stat(result.FilePath); err == nil {
		size = fi.Size()
	}

	title := result.Info.Title
	if title == "" {
		title = "Файл"
	}

	fileName := filepath.Base(result.FilePath)
	link := h.links.Publish(fileName)

	text := "Готово!\n" +
		"Название: " + title + "\n" +
		"Размер: " + tg.HumanSize(size) + "\n" +
		"Нажмите кнопку ниже, чтобы скачать."

	keyboard := tg.InlineKeyboard(tg.ButtonRow(tg.URLButton("⬇️ Скачать файл", link)))
	if err := tg.EditText(ctx, b, chatID, statusID, text, keyboard); err != nil {
		// Telegram rejects some URLs in buttons; fall back to plain text.
		slog.Warn("failed to attach link button, falling back to plain text", "error", err)
		tg.EditText(ctx, b, chatID, statusID, text+"\nПрямая ссылка: "+link, nil)
	}

	if err := h.history.Record(ctx, domain.Download{
		ChatID:    chatID,
		URL:       url,
		Quality:   choice,
		FileName:  fileName,
		SizeBytes: size,
	}); err != nil {
		slog.Error("record download history", "error", err, "chat_id", chatID)
	}
}
