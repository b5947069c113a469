package storage

import (
	"regexp"
	"strings"
	"testing"

	"github.com/whitefall/ytfetcher/internal/domain"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"plain", "hello", "hello"},
		{"spaces collapse", "a  b\tc", "a_b_c"},
		{"unsafe chars", "a/b:c*d", "a_b_c_d"},
		{"underscore runs collapse", "a___b", "a_b"},
		{"leading trailing stripped", "_.a._", "a"},
		{"unicode preserved", "Ünïçødé/Clip: #1", "Ünïçødé_Clip_1"},
		{"cyrillic preserved", "Видео про котов", "Видео_про_котов"},
		{"dots and hyphens kept", "a-b.c", "a-b.c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input, maxBaseLen); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeTruncates(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := Sanitize(long, maxBaseLen)
	if len([]rune(got)) != maxBaseLen {
		t.Fatalf("len = %d, want %d", len([]rune(got)), maxBaseLen)
	}
}

func TestSanitizeProperties(t *testing.T) {
	safe := regexp.MustCompile(`^[\p{L}\p{N}_.-]*$`)
	inputs := []string{
		"Some Video (Official) [HD]",
		"a/b\\c|d<e>f",
		"заголовок с пробелами и знаками?!",
		"🎬 emoji title 🎬",
		"  mixed\t\nwhitespace  run  ",
	}
	for _, in := range inputs {
		got := Sanitize(in, maxBaseLen)
		if !safe.MatchString(got) {
			t.Errorf("Sanitize(%q) = %q contains unsafe characters", in, got)
		}
		if strings.Contains(got, "__") {
			t.Errorf("Sanitize(%q) = %q has consecutive underscores", in, got)
		}
		if strings.HasPrefix(got, "_") || strings.HasSuffix(got, "_") ||
			strings.HasPrefix(got, ".") || strings.HasSuffix(got, ".") {
			t.Errorf("Sanitize(%q) = %q has leading/trailing _ or .", in, got)
		}
	}
}

func TestBuildFilename(t *testing.T) {
	re := regexp.MustCompile(`^My_Clip_[0-9a-f]{8}\.mp4$`)
	name := BuildFilename(domain.MediaInfo{Title: "My Clip"}, domain.MediaVideo, ".mp4")
	if !re.MatchString(name) {
		t.Errorf("BuildFilename = %q, want match %q", name, re)
	}
}

func TestBuildFilenameFallsBackToKind(t *testing.T) {
	re := regexp.MustCompile(`^audio_[0-9a-f]{8}\.mp3$`)
	name := BuildFilename(domain.MediaInfo{}, domain.MediaAudio, ".mp3")
	if !re.MatchString(name) {
		t.Errorf("BuildFilename = %q, want match %q", name, re)
	}
}

func TestBuildFilenameUnique(t *testing.T) {
	info := domain.MediaInfo{Title: "same"}
	a := BuildFilename(info, domain.MediaVideo, ".mp4")
	b := BuildFilename(info, domain.MediaVideo, ".mp4")
	if a == b {
		t.Errorf("two filenames for the same title collided: %q", a)
	}
}
