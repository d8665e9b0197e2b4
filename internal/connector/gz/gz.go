// Package gz registers gzip-compressed simulation logs (".gz").
package gz

import (
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/crimson-sun/teleports/internal/connector"
)

func init() {
	connector.Register(".gz", Decode)
}

// Decode wraps r in a gzip reader. Concatenated members are read as one
// stream.
func Decode(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	zr.Multistream(true)
	return zr, nil
}
