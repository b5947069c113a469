package config

import (
	"os"
	"testing"
)

func TestLoadRequiresTokenAndBaseURL(t *testing.T) {
	// t.Setenv registers the restore; the vars must be truly unset because
	// `required` accepts an empty-but-set variable.
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("PUBLIC_BASE_URL", "")
	os.Unsetenv("BOT_TOKEN")
	os.Unsetenv("PUBLIC_BASE_URL")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without BOT_TOKEN and PUBLIC_BASE_URL")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("PUBLIC_BASE_URL", "http://x.com")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DownloadRoot != "/srv/ytfetcher/downloads" {
		t.Errorf("DownloadRoot = %q", cfg.DownloadRoot)
	}
	if cfg.YtdlpPath != "yt-dlp" {
		t.Errorf("YtdlpPath = %q", cfg.YtdlpPath)
	}
	if cfg.DownloadWorkers != 3 {
		t.Errorf("DownloadWorkers = %d", cfg.DownloadWorkers)
	}
	if cfg.HistoryEnabled() {
		t.Error("history should be disabled without DATABASE_URL")
	}
}
