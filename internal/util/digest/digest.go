package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// ChunkSize is the read buffer used when streaming content into the hash.
const ChunkSize = 64 * 1024

// Bytes returns the digest of b.
func Bytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Reader returns the digest of everything read from r.
func Reader(r io.Reader) (string, error) {
	_, sum, err := Copy(io.Discard, r)
	return sum, err
}

// Copy streams r into dst in ChunkSize reads and returns the number of bytes
// copied with their digest.
func Copy(dst io.Writer, r io.Reader) (int64, string, error) {
	h := sha256.New()
	buf := make([]byte, ChunkSize)
	// Hide WriterTo/ReaderFrom so io.CopyBuffer actually uses buf.
	n, err := io.CopyBuffer(struct{ io.Writer }{io.MultiWriter(dst, h)}, struct{ io.Reader }{r}, buf)
	if err != nil {
		return n, "", err
	}
	return n, hex.EncodeToString(h.Sum(nil)), nil
}

// File returns the digest of the file at path.
func File(path string) (string, error) {
	// #nosec G304
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sum, err := Reader(f)
	if err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return sum, nil
}
