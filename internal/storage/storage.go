package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store is the permanent storage root finished downloads are moved into.
// Files are only ever added, never modified or deleted by the bot.
type Store struct {
	root string
}

func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create download root: %w", err)
	}
	return &Store{root: root}, nil
}

func (s *Store) Root() string {
	return s.root
}

// MoveIn relocates src into the storage root under name and returns the
// final path. Rename is tried first; when the temp dir lives on another
// filesystem it falls back to copy-and-remove.
func (s *Store) MoveIn(src, name string) (string, error) {
	dst := filepath.Join(s.root, name)
	if err := os.Rename(src, dst); err == nil {
		return dst, nil
	}
	if err := copyFile(src, dst); err != nil {
		return "", fmt.Errorf("move into storage: %w", err)
	}
	os.Remove(src)
	return dst, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}

// NewestFile returns the most recently modified regular file in dir.
// The extraction job may leave intermediate artifacts behind; the newest
// entry is taken as the final product. ok is false for an empty dir.
func NewestFile(dir string) (path string, ok bool, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false, err
	}
	var newest string
	var newestMod int64
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); newest == "" || mod >= newestMod {
			newest = filepath.Join(dir, e.Name())
			newestMod = mod
		}
	}
	if newest == "" {
		return "", false, nil
	}
	return newest, true, nil
}
