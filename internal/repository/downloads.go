package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/whitefall/ytfetcher/internal/domain"
)

// Downloads is the history ledger backing the /history command. A nil
// *Downloads is valid and means history is disabled (no DATABASE_URL).
type Downloads struct {
	db *pgxpool.Pool
}

func NewDownloads(db *pgxpool.Pool) *Downloads {
	return &Downloads{db: db}
}

func (r *Downloads) Enabled() bool {
	return r != nil && r.db != nil
}

// Record inserts one finished download.
func (r *Downloads) Record(ctx context.Context, d domain.Download) error {
	if !r.Enabled() {
		return nil
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO downloads (chat_id, url, quality, file_name, size_bytes)
		 VALUES ($1, $2, $3, $4, $5)`,
		d.ChatID, d.URL, string(d.Quality), d.FileName, d.SizeBytes,
	)
	if err != nil {
		return fmt.Errorf("insert download: %w", err)
	}
	return nil
}

// ListByChat returns the chat's most recent downloads, newest first.
func (r *Downloads) ListByChat(ctx context.Context, chatID int64, limit int) ([]domain.Download, error) {
	if !r.Enabled() {
		return nil, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, chat_id, url, quality, file_name, size_bytes, created_at
		 FROM downloads
		 WHERE chat_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		chatID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list downloads: %w", err)
	}
	defer rows.Close()

	var out []domain.Download
	for rows.Next() {
		var d domain.Download
		var quality string
		if err := rows.Scan(&d.ID, &d.ChatID, &d.URL, &quality, &d.FileName, &d.SizeBytes, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan download: %w", err)
		}
		d.Quality = domain.QualityChoice(quality)
		out = append(out, d)
	}
	return out, rows.Err()
}
