package bundle

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/imamik/mwpack/internal/util/naming"
)

func writeTarGz(w io.Writer, files []payloadFile, manifest []byte, sourceDateEpoch int64) error {
	gz, err := gzip.NewWriterLevel(w, gzip.DefaultCompression)
	if err != nil {
		return fmt.Errorf("failed to create gzip writer: %w", err)
	}
	// No name; the mtime is the source date epoch.
	gz.ModTime = time.Unix(sourceDateEpoch, 0)

	tw := tar.NewWriter(gz)
	for _, f := range files {
		if err := tw.WriteHeader(tarHeader(f.rel, f.size, sourceDateEpoch)); err != nil {
			return fmt.Errorf("failed to add %s: %w", f.rel, err)
		}
		if err := copyPayload(tw, f); err != nil {
			return err
		}
	}

	if err := tw.WriteHeader(tarHeader(naming.Manifest, int64(len(manifest)), sourceDateEpoch)); err != nil {
		return fmt.Errorf("failed to add %s: %w", naming.Manifest, err)
	}
	if _, err := io.Copy(tw, bytes.NewReader(manifest)); err != nil {
		return fmt.Errorf("failed to write %s: %w", naming.Manifest, err)
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finish tar archive: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to finish gzip stream: %w", err)
	}
	return nil
}

func tarHeader(name string, size int64, sourceDateEpoch int64) *tar.Header {
	return &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     name,
		Size:     size,
		Mode:     0o644,
		ModTime:  time.Unix(sourceDateEpoch, 0),
		Uid:      0,
		Gid:      0,
		Uname:    "",
		Gname:    "",
	}
}
