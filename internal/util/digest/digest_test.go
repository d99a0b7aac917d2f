package digest

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Known SHA-256 vectors.
const (
	emptySHA = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	abcSHA   = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
)

func TestBytes(t *testing.T) {
	assert.Equal(t, emptySHA, Bytes(nil))
	assert.Equal(t, abcSHA, Bytes([]byte("abc")))
}

func TestReader_MatchesBytesAcrossChunks(t *testing.T) {
	payload := bytes.Repeat([]byte("0123456789abcdef"), ChunkSize/8+3)

	got, err := Reader(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, Bytes(payload), got)
}

// chunkRecorder records the largest read and fails if copied via WriteTo.
type chunkRecorder struct {
	r        io.Reader
	maxRead  int
	usedFast bool
}

func (c *chunkRecorder) Read(p []byte) (int, error) {
	c.maxRead = max(c.maxRead, len(p))
	return c.r.Read(p)
}

func (c *chunkRecorder) WriteTo(w io.Writer) (int64, error) {
	c.usedFast = true
	return io.Copy(w, c.r)
}

func TestReader_ReadsInChunks(t *testing.T) {
	payload := bytes.Repeat([]byte{'x'}, 3*ChunkSize+7)
	src := &chunkRecorder{r: bytes.NewReader(payload)}

	got, err := Reader(src)
	require.NoError(t, err)
	assert.Equal(t, Bytes(payload), got)
	assert.False(t, src.usedFast)
	assert.Equal(t, ChunkSize, src.maxRead)
}

func TestCopy(t *testing.T) {
	var dst bytes.Buffer

	n, sum, err := Copy(&dst, bytes.NewReader([]byte("abc")))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, abcSHA, sum)
	assert.Equal(t, "abc", dst.String())
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "nested-b.md")
	require.NoError(t, os.WriteFile(a, []byte("abc"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("abc"), 0o600))

	sumA, err := File(a)
	require.NoError(t, err)
	sumB, err := File(b)
	require.NoError(t, err)

	assert.Equal(t, abcSHA, sumA)
	assert.Equal(t, sumA, sumB, "digest must not depend on path or mode")
}

func TestFile_Missing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}
