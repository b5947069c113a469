package storage

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/whitefall/ytfetcher/internal/domain"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	unsafeRe     = regexp.MustCompile(`[^\p{L}\p{N}_.-]`)
	underscoreRe = regexp.MustCompile(`_+`)
)

// Sanitize maps arbitrary text to a safe file name base: whitespace and
// unsafe characters become single underscores, length is capped at maxLen
// runes, leading/trailing underscores and dots are stripped. Non-Latin
// letters are preserved. Returns "" for empty or whitespace-only input.
func Sanitize(title string, maxLen int) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	title = whitespaceRe.ReplaceAllString(title, "_")
	title = unsafeRe.ReplaceAllString(title, "_")
	title = underscoreRe.ReplaceAllString(title, "_")
	if runes := []rune(title); len(runes) > maxLen {
		title = string(runes[:maxLen])
	}
	return strings.Trim(title, "_.")
}

// BuildFilename produces the stored file name: sanitized title (or the media
// kind when the title is empty), an 8-hex random suffix and the extension.
// Uniqueness is probabilistic; collisions on disk are not checked.
func BuildFilename(info domain.MediaInfo, kind domain.MediaKind, ext string) string {
	base := Sanitize(info.Title, maxBaseLen)
	if base == "" {
		base = string(kind)
	}
	u := uuid.New()
	return base + "_" + hex.EncodeToString(u[:])[:8] + ext
}

const maxBaseLen = 80
