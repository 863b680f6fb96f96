package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// AudioSource provides the raw audio of one activation.
//
//go:generate moq -rm -out source_mock.go . AudioSource
type AudioSource interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

var _ AudioSource = (*ReaderSource)(nil)

// ReaderSource serves a single shared reader, such as stdin. The reader is
// never closed and only one activation may read it at a time.
//
// A single goroutine reads the underlying reader for the lifetime of the
// source, so closing an activation's reader returns a pending Read at once
// and no audio is lost between activations.
type ReaderSource struct {
	reader io.Reader
	mu     sync.Mutex
	inUse  bool

	startPump sync.Once
	chunks    chan []byte
	// readErr is set before chunks is closed.
	readErr error

	// readMu serializes Read across activations and guards rest.
	readMu sync.Mutex
	rest   []byte
}

func NewReaderSource(reader io.Reader) (*ReaderSource, error) {
	if reader == nil {
		return nil, errors.New("reader must be specified")
	}
	return &ReaderSource{
		reader: reader,
		chunks: make(chan []byte),
	}, nil
}

func (s *ReaderSource) Open(_ context.Context) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inUse {
		return nil, errors.New("reader is already in use")
	}
	s.inUse = true
	s.startPump.Do(func() {
		go s.pump()
	})
	return &sharedReader{source: s, closed: make(chan struct{})}, nil
}

func (s *ReaderSource) pump() {
	defer close(s.chunks)
	for {
		buf := make([]byte, DefaultBufferSize)
		n, err := s.reader.Read(buf)
		if n > 0 {
			s.chunks <- buf[:n]
		}
		if err != nil {
			s.readErr = err
			return
		}
	}
}

type sharedReader struct {
	source *ReaderSource
	once   sync.Once
	closed chan struct{}
}

// Read returns io.ErrClosedPipe once the reader has been closed.
func (r *sharedReader) Read(p []byte) (int, error) {
	s := r.source
	s.readMu.Lock()
	defer s.readMu.Unlock()

	if len(s.rest) == 0 {
		select {
		case <-r.closed:
			return 0, io.ErrClosedPipe
		case chunk, ok := <-s.chunks:
			if !ok {
				return 0, s.readErr
			}
			s.rest = chunk
		}
	}

	n := copy(p, s.rest)
	s.rest = s.rest[n:]
	return n, nil
}

func (r *sharedReader) Close() error {
	r.once.Do(func() {
		close(r.closed)
		r.source.mu.Lock()
		r.source.inUse = false
		r.source.mu.Unlock()
	})
	return nil
}

var _ AudioSource = (*FileSource)(nil)

// FileSource opens the file at Path for every activation.
type FileSource struct {
	Path string
}

func NewFileSource(path string) (*FileSource, error) {
	if path == "" {
		return nil, errors.New("file path must be specified")
	}
	return &FileSource{Path: path}, nil
}

func (s *FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	return f, nil
}
