// Package zst registers zstandard-compressed simulation logs (".zst").
package zst

import (
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/crimson-sun/teleports/internal/connector"
)

func init() {
	connector.Register(".zst", Decode)
}

// Decode wraps r in a zstd stream decoder. Logs are read sequentially, so
// the decoder runs on a single goroutine.
func Decode(r io.Reader) (io.ReadCloser, error) {
	zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return zr.IOReadCloser(), nil
}
