package strbuf

import (
	"fmt"
	"os"

	"github.com/strkit/strkit/internal/mmfile"
)

// ReadFile returns a buffer holding the whole file, sized exactly to its
// content. Missing files surface the wrapped os error, so callers can test
// with errors.Is(err, fs.ErrNotExist).
func ReadFile(path string) (*Buffer, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("strbuf: read %s: %w", path, err)
	}
	defer cleanup()

	if len(data) > MaxCap-1 {
		return nil, fmt.Errorf("strbuf: read %s: %w", path, ErrTooLarge)
	}
	b := New(len(data) + 1)
	copy(b.data, data)
	b.length = len(data)
	b.data[b.length] = 0
	return b, nil
}

// WriteFile writes the payload to path, creating or truncating it.
func (b *Buffer) WriteFile(path string) error {
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return fmt.Errorf("strbuf: write %s: %w", path, err)
	}
	return nil
}

// WriteFileSync is WriteFile plus a platform sync, for callers that need
// the bytes on disk before continuing.
func (b *Buffer) WriteFileSync(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("strbuf: write %s: %w", path, err)
	}
	if _, err := f.Write(b.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("strbuf: write %s: %w", path, err)
	}
	if err := syncFile(f); err != nil {
		f.Close()
		return fmt.Errorf("strbuf: sync %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("strbuf: close %s: %w", path, err)
	}
	return nil
}
