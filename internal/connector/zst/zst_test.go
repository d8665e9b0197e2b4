package zst

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/crimson-sun/teleports/internal/connector"
)

func TestOpenZstdLog(t *testing.T) {
	const logText = "Warning: Teleporting vehicle 'v'; collision with 'w', lane='B_1', time=3700.00.\n"

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	compressed := enc.EncodeAll([]byte(logText), nil)
	enc.Close()

	path := filepath.Join(t.TempDir(), "sim.log.zst")
	if err := os.WriteFile(path, compressed, 0644); err != nil {
		t.Fatal(err)
	}

	rc, err := connector.Open(path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}
	if string(data) != logText {
		t.Errorf("read %q, want %q", data, logText)
	}
}
