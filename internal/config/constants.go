package config

import "time"

const (
	// Page preview fetch timeout
	PreviewTimeout = 5 * time.Second

	// Rate limits (messages per minute, per chat)
	RateLimitPerMinute = 10

	// History page size for /history
	HistoryPageSize = 10

	// Fallback extensions per media kind
	DefaultVideoExt = ".mp4"
	DefaultAudioExt = ".mp3"

	// Audio re-encode bitrate passed to yt-dlp
	AudioBitrate = "192K"
)
