package engine

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestReaderSource_Open(t *testing.T) {
	s, err := NewReaderSource(strings.NewReader("audio"))
	if err != nil {
		t.Fatalf("NewReaderSource() error = %v", err)
	}

	r, err := s.Open(context.Background())
	if err != nil {
		t.Fatalf("ReaderSource.Open() error = %v", err)
	}
	if _, err := s.Open(context.Background()); err == nil {
		t.Error("second ReaderSource.Open() error = nil, want error")
	}

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "audio" {
		t.Errorf("ReadAll() = %q, want audio", got)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := s.Open(context.Background()); err != nil {
		t.Errorf("ReaderSource.Open() after Close error = %v", err)
	}
}

func TestReaderSource_Close(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	s, err := NewReaderSource(pr)
	if err != nil {
		t.Fatalf("NewReaderSource() error = %v", err)
	}

	r, err := s.Open(context.Background())
	if err != nil {
		t.Fatalf("ReaderSource.Open() error = %v", err)
	}
	errCh := make(chan error, 1)
	go func() {
		_, err := r.Read(make([]byte, 8))
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	select {
	case err := <-errCh:
		if !errors.Is(err, io.ErrClosedPipe) {
			t.Errorf("Read() error = %v, want %v", err, io.ErrClosedPipe)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Read() was not unblocked by Close()")
	}

	// the next reader receives what was written after the close
	r, err = s.Open(context.Background())
	if err != nil {
		t.Fatalf("ReaderSource.Open() after Close error = %v", err)
	}
	go pw.Write([]byte("audio"))
	buf := make([]byte, 3)
	var got []byte
	for len(got) < len("audio") {
		n, err := r.Read(buf)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		got = append(got, buf[:n]...)
	}
	if string(got) != "audio" {
		t.Errorf("Read() = %q, want audio", got)
	}
}

func TestNewReaderSource(t *testing.T) {
	if _, err := NewReaderSource(nil); err == nil {
		t.Error("NewReaderSource(nil) error = nil, want error")
	}
}

func TestFileSource_Open(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audio.raw")
	if err := os.WriteFile(path, []byte("pcm"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	t.Run("success", func(t *testing.T) {
		s, err := NewFileSource(path)
		if err != nil {
			t.Fatalf("NewFileSource() error = %v", err)
		}
		r, err := s.Open(context.Background())
		if err != nil {
			t.Fatalf("FileSource.Open() error = %v", err)
		}
		defer r.Close()

		got, _ := io.ReadAll(r)
		if string(got) != "pcm" {
			t.Errorf("ReadAll() = %q, want pcm", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		s := &FileSource{Path: filepath.Join(t.TempDir(), "missing.raw")}
		if _, err := s.Open(context.Background()); err == nil {
			t.Error("FileSource.Open() error = nil, want error")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := NewFileSource(""); err == nil {
			t.Error("NewFileSource() error = nil, want error")
		}
	})
}
