package export

import (
	"io"
	"os"

	"github.com/andybalholm/brotli"
)

// CompressBrotli writes a brotli-compressed copy next to the input file and
// returns the new file's path (input path + ".br").
func CompressBrotli(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	outPath := path + ".br"
	dst, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	bw := brotli.NewWriter(dst)
	if _, err := io.Copy(bw, src); err != nil {
		return "", err
	}
	if err := bw.Close(); err != nil {
		return "", err
	}

	return outPath, nil
}
