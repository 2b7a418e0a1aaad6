package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
)

func TestCompressBrotli(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.csv")

	content := "a,b\n" + strings.Repeat("1,2\n", 500)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	outPath, err := CompressBrotli(path)
	if err != nil {
		t.Fatalf("CompressBrotli() error = %v", err)
	}
	if outPath != path+".br" {
		t.Errorf("Expected output path %q, got %q", path+".br", outPath)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("Failed to open compressed file: %v", err)
	}
	defer f.Close()

	decompressed, err := io.ReadAll(brotli.NewReader(f))
	if err != nil {
		t.Fatalf("Failed to decompress: %v", err)
	}
	if string(decompressed) != content {
		t.Error("Decompressed content does not match the original")
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("Failed to stat compressed file: %v", err)
	}
	if info.Size() >= int64(len(content)) {
		t.Errorf("Expected compressed file to be smaller than %d bytes, got %d", len(content), info.Size())
	}
}

func TestCompressBrotliMissingInput(t *testing.T) {
	_, err := CompressBrotli(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	if err == nil {
		t.Fatal("Expected error for missing input file, got nil")
	}
}
