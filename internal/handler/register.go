package handler

import (
	"github.com/go-telegram/bot"
)

// CallbackQualityPrefix prefixes the callback data of the quality buttons.
const CallbackQualityPrefix = "quality_"

// Register registers all command and callback handlers on the bot instance.
// The default text handler (link capture) is registered in main.
func (h *Handler) Register() {
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/history", bot.MatchTypePrefix, h.handleHistory)

	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, CallbackQualityPrefix, bot.MatchTypePrefix, h.handleQuality)
}
