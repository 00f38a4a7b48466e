/*
PURPOSE:
  Persists rendered text: appends workout blocks to the log and overwrites
  the count snapshot.

REQUIREMENTS:
  User-specified:
  - Workout log is append-only, count file is overwrite-only.
  - Containing directory is created when absent.

  Implementation-discovered:
  - A block must reach the file in one Write so a failure cannot leave half
    a block behind our own separator.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (runner)

ERROR HANDLING:
  - Returns error on directory creation, open, write or close failure.

IMPLEMENTATION RULES:
  - One AppendWriter per invocation; it is not safe for concurrent use.
  - No file locking across processes. Callers serialise invocations.

USAGE:
  w, err := output.NewAppendWriter(".metrics/workouts_data.txt")
  w.Write(block)
  w.Close()

RELATED FILES:
  - internal/output/format.go
*/

package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppendWriter appends text blocks to a file.
type AppendWriter struct {
	file *os.File
}

// NewAppendWriter opens path for appending, creating the file and its
// directory if needed.
func NewAppendWriter(path string) (*AppendWriter, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s for append: %w", path, err)
	}
	return &AppendWriter{file: f}, nil
}

// Write appends one block.
func (aw *AppendWriter) Write(block string) error {
	if _, err := aw.file.WriteString(block); err != nil {
		return fmt.Errorf("failed to append to %s: %w", aw.file.Name(), err)
	}
	return nil
}

// Close closes the underlying file.
func (aw *AppendWriter) Close() error {
	return aw.file.Close()
}

// AppendBlock is the one-shot form of NewAppendWriter + Write + Close.
func AppendBlock(path, block string) error {
	w, err := NewAppendWriter(path)
	if err != nil {
		return err
	}
	if err := w.Write(block); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// WriteSnapshot replaces the contents of path with content.
func WriteSnapshot(path, content string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}
