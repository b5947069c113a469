package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/whitefall/ytfetcher/internal/config"
	"github.com/whitefall/ytfetcher/internal/domain"
	"github.com/whitefall/ytfetcher/internal/storage"
	"github.com/whitefall/ytfetcher/internal/worker"
)

var ytdlpErrorRe = regexp.MustCompile(`(?i)ERROR[:\s]+(.+?)(?:\n|$)`)

// DownloadService orchestrates one download: a scoped temp dir, a yt-dlp run
// dispatched to the worker pool, and the move of the produced file into
// permanent storage.
type DownloadService struct {
	cfg   *config.Config
	store *storage.Store
	pool  *worker.Pool
}

func NewDownloadService(cfg *config.Config, store *storage.Store, pool *worker.Pool) *DownloadService {
	return &DownloadService{cfg: cfg, store: store, pool: pool}
}

// Download runs the extraction job for url with the chosen preset and returns
// the stored file. The blocking run happens on a pool worker; the calling
// handler goroutine waits without starving other chats.
func (s *DownloadService) Download(ctx context.Context, url string, choice domain.QualityChoice) (*domain.DownloadResult, error) {
	var result *domain.DownloadResult
	err := s.pool.Do(ctx, func() error {
		r, err := s.run(ctx, url, choice)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *DownloadService) run(ctx context.Context, url string, choice domain.QualityChoice) (*domain.DownloadResult, error) {
	tempDir, err := os.MkdirTemp(s.cfg.TempRoot, "ytfetcher-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	info, err := s.runYtdlp(ctx, url, choice, tempDir)
	if err != nil {
		return nil, err
	}

	produced, ok, err := storage.NewestFile(tempDir)
	if err != nil {
		return nil, fmt.Errorf("scan temp dir: %w", err)
	}
	if !ok {
		return nil, domain.ErrEmptyOutput
	}

	kind := choice.Kind()
	ext := filepath.Ext(produced)
	if ext == "" {
		ext = config.DefaultVideoExt
		if kind == domain.MediaAudio {
			ext = config.DefaultAudioExt
		}
	}

	name := storage.BuildFilename(info, kind, ext)
	stored, err := s.store.MoveIn(produced, name)
	if err != nil {
		return nil, err
	}

	return &domain.DownloadResult{FilePath: stored, Info: info, Kind: kind}, nil
}

// runYtdlp invokes the yt-dlp binary, writing output files into dir and the
// selected metadata fields as one JSON line to stdout.
func (s *DownloadService) runYtdlp(ctx context.Context, url string, choice domain.QualityChoice, dir string) (domain.MediaInfo, error) {
	args := append(ytdlpArgs(choice, dir), url)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.cfg.YtdlpPath, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := "download failed"
			if m := ytdlpErrorRe.FindStringSubmatch(stderr.String()); len(m) > 1 {
				msg = strings.TrimSpace(m[1])
			}
			return domain.MediaInfo{}, &domain.ExtractionError{Message: msg}
		}
		return domain.MediaInfo{}, fmt.Errorf("run yt-dlp: %w", err)
	}

	return parseInfo(&stdout), nil
}

// parseInfo decodes the last JSON line printed by yt-dlp. Metadata is
// best-effort: a parse failure only costs the title in the reply.
func parseInfo(out *bytes.Buffer) domain.MediaInfo {
	var last string
	scanner := bufio.NewScanner(out)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			last = line
		}
	}

	var info domain.MediaInfo
	if last == "" {
		return info
	}
	if err := json.Unmarshal([]byte(last), &info); err != nil {
		slog.Warn("parse yt-dlp metadata", "error", err)
	}
	return info
}

// ytdlpArgs maps a quality preset to the yt-dlp invocation. medium caps video
// height at 720p with progressively looser fallbacks, high takes the best
// available streams, audio extracts best audio and re-encodes to 192 kbps mp3.
func ytdlpArgs(choice domain.QualityChoice, dir string) []string {
	args := []string{
		"--no-playlist",
		"--no-warnings",
		"--quiet",
		"--no-simulate",
		"--print", "%(.{id,title,uploader,duration,ext})j",
		"-o", filepath.Join(dir, "%(id)s.%(ext)s"),
	}
	switch choice {
	case domain.QualityMedium:
		args = append(args,
			"-f", "bv*[height<=720]+ba/b[height<=720]/best[height<=720]",
			"--merge-output-format", "mp4",
		)
	case domain.QualityHigh:
		args = append(args,
			"-f", "bv*+ba/best",
			"--merge-output-format", "mp4",
		)
	case domain.QualityAudio:
		args = append(args,
			"-f", "bestaudio/best",
			"-x",
			"--audio-format", "mp3",
			"--audio-quality", config.AudioBitrate,
		)
	}
	return args
}
