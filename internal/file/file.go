package file

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// AppendWriter appends every Write to the file at path, reopening it each
// time so that the file can be rotated or tailed while recognition runs.
// Missing parent directories are created on the first write.
type AppendWriter struct {
	path string
	perm os.FileMode
}

var _ io.Writer = (*AppendWriter)(nil)

func NewAppendWriter(path string, perm os.FileMode) *AppendWriter {
	return &AppendWriter{path: path, perm: perm}
}

func (w *AppendWriter) Write(p []byte) (int, error) {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, w.perm)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	n, err := file.Write(p)
	if err != nil {
		return n, fmt.Errorf("failed to write to file: %w", err)
	}

	return n, nil
}
