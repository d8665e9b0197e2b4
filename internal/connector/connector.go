package connector

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/crimson-sun/teleports/internal/model"
)

// Decoder wraps a compressed log stream. Closing the returned reader must
// release the decoder but not the underlying stream.
type Decoder func(r io.Reader) (io.ReadCloser, error)

// Open opens the log file at path for sequential reading, decompressing it
// when a decoder is registered for its extension.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &model.IOError{Op: "open", Path: path, Err: err}
	}

	ext := filepath.Ext(path)
	dec, err := Get(ext)
	if err != nil {
		slog.Debug("reading log as plain text", "path", path)
		return f, nil
	}

	slog.Debug("decompressing log", "path", path, "ext", ext)
	rc, err := dec(f)
	if err != nil {
		f.Close()
		return nil, &model.IOError{Op: "open", Path: path, Err: err}
	}
	return &stackedReader{ReadCloser: rc, file: f}, nil
}

// stackedReader closes both the decoder and the file underneath it.
type stackedReader struct {
	io.ReadCloser
	file *os.File
}

func (s *stackedReader) Close() error {
	return errors.Join(s.ReadCloser.Close(), s.file.Close())
}
