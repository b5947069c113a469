package domain

import "time"

// QualityChoice is one of the three fixed download presets offered to the user.
type QualityChoice string

const (
	QualityMedium QualityChoice = "medium"
	QualityHigh   QualityChoice = "high"
	QualityAudio  QualityChoice = "audio"
)

// Choices lists every preset in button order.
var Choices = []QualityChoice{QualityMedium, QualityHigh, QualityAudio}

// Label returns the human-readable button text for the preset.
func (q QualityChoice) Label() string {
	switch q {
	case QualityMedium:
		return "🎬 Среднее"
	case QualityHigh:
		return "🎞️ Высокое"
	case QualityAudio:
		return "🎧 Аудио"
	}
	return string(q)
}

// Valid reports whether q is one of the known presets.
func (q QualityChoice) Valid() bool {
	switch q {
	case QualityMedium, QualityHigh, QualityAudio:
		return true
	}
	return false
}

// MediaKind distinguishes audio-only results from video ones.
type MediaKind string

const (
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
)

// Kind maps a preset to the kind of media it produces.
func (q QualityChoice) Kind() MediaKind {
	if q == QualityAudio {
		return MediaAudio
	}
	return MediaVideo
}

// MediaInfo is the subset of the extraction tool's metadata the bot uses.
type MediaInfo struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Uploader string  `json:"uploader"`
	Duration float64 `json:"duration"`
	Ext      string  `json:"ext"`
}

// DownloadResult describes a finished download moved into the storage root.
type DownloadResult struct {
	FilePath string
	Info     MediaInfo
	Kind     MediaKind
}

// Download is one row of the history ledger.
type Download struct {
	ID        int64
	ChatID    int64
	URL       string
	Quality   QualityChoice
	FileName  string
	SizeBytes int64
	CreatedAt time.Time
}
