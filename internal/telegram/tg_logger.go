package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/whitefall/ytfetcher/internal/config"
)

// TelegramLogger forwards failure reports to an operator chat when
// LOG_TELEGRAM_CHAT_ID is configured. A zero chat ID disables it.
type TelegramLogger struct {
	bot *bot.Bot
	cfg *config.Config
}

func NewTelegramLogger(b *bot.Bot, cfg *config.Config) *TelegramLogger {
	return &TelegramLogger{bot: b, cfg: cfg}
}

// LogDownloadError reports a failed download with the offending URL.
func (l *TelegramLogger) LogDownloadError(err error, url string) {
	msg := fmt.Sprintf("❌ *Download failed*\n\n*URL:* %s\n*Error:* `%s`\n*Time:* %s",
		url, err.Error(), time.Now().Format("2006-01-02 15:04:05"))
	l.log(msg)
}

func (l *TelegramLogger) log(message string) {
	if l.cfg.LogTelegramChatID == 0 {
		return
	}

	if len([]rune(message)) > MaxMessageLen {
		message = string([]rune(message)[:MaxMessageLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := l.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    l.cfg.LogTelegramChatID,
		Text:      message,
		ParseMode: "Markdown",
	})
	if err != nil {
		slog.Error("failed to send telegram log", "error", err)
	}
}
