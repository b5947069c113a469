package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken      string `env:"BOT_TOKEN,required"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL,required"`

	// Storage
	DownloadRoot string `env:"DOWNLOAD_ROOT" envDefault:"/srv/ytfetcher/downloads"`
	TempRoot     string `env:"TEMP_ROOT"`

	// History (optional; empty disables the /history command)
	DatabaseURL string `env:"DATABASE_URL"`

	// Extraction
	YtdlpPath       string `env:"YTDLP_PATH" envDefault:"yt-dlp"`
	DownloadWorkers int    `env:"DOWNLOAD_WORKERS" envDefault:"3"`

	// Server
	Port int `env:"PORT" envDefault:"3000"`

	// Telegram logging
	LogTelegramChatID int64 `env:"LOG_TELEGRAM_CHAT_ID"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}
