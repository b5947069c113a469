package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/whitefall/ytfetcher/internal/config"
)

const rateWindowLen = time.Minute

type rateWindow struct {
	start time.Time
	count int
}

type rateLimiter struct {
	mu        sync.Mutex
	windows   map[int64]*rateWindow
	lastSweep time.Time
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{
		windows:   make(map[int64]*rateWindow),
		lastSweep: time.Now(),
	}
}

// hit counts one message for the chat and returns the total within the
// current window. Expired windows are swept at most once per window length
// so the map does not grow with every chat ever seen.
func (l *rateLimiter) hit(chatID int64, now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > rateWindowLen {
		l.sweepLocked(now)
	}

	w, ok := l.windows[chatID]
	if !ok || now.Sub(w.start) > rateWindowLen {
		w = &rateWindow{start: now}
		l.windows[chatID] = w
	}
	w.count++
	return w.count
}

func (l *rateLimiter) sweepLocked(now time.Time) {
	for id, w := range l.windows {
		if now.Sub(w.start) > rateWindowLen {
			delete(l.windows, id)
		}
	}
	l.lastSweep = now
}

// RateLimit returns middleware that enforces a per-chat message limit over a
// one-minute window. Callback queries are never limited: a pressed button
// must always be acknowledged.
func RateLimit() bot.Middleware {
	limiter := newRateLimiter()

	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message == nil {
				next(ctx, b, update)
				return
			}

			chatID := update.Message.Chat.ID
			count := limiter.hit(chatID, time.Now())

			if count > config.RateLimitPerMinute {
				slog.Debug("rate limited", "chat_id", chatID, "count", count)
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: chatID,
					Text:   "⏳ Слишком много запросов. Подождите немного.",
				})
				return
			}

			next(ctx, b, update)
		}
	}
}
