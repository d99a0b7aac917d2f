package bundle

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/imamik/mwpack/internal/util/digest"
	"github.com/imamik/mwpack/internal/util/naming"
)

// zipEpochFloor is 1980-01-01T00:00:00Z, the earliest time an MS-DOS
// timestamp can hold.
const zipEpochFloor = 315532800

// zipModTime returns the timestamp stamped on every zip entry.
func zipModTime(sourceDateEpoch int64) time.Time {
	return time.Unix(max(sourceDateEpoch, zipEpochFloor), 0).UTC()
}

func writeZip(w io.Writer, files []payloadFile, manifest []byte, sourceDateEpoch int64) error {
	zw := zip.NewWriter(w)
	modified := zipModTime(sourceDateEpoch)

	for _, f := range files {
		dst, err := zw.CreateHeader(zipHeader(f.rel, modified))
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", f.rel, err)
		}
		if err := copyPayload(dst, f); err != nil {
			return err
		}
	}

	dst, err := zw.CreateHeader(zipHeader(naming.Manifest, modified))
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", naming.Manifest, err)
	}
	if _, err := dst.Write(manifest); err != nil {
		return fmt.Errorf("failed to write %s: %w", naming.Manifest, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish zip archive: %w", err)
	}
	return nil
}

func zipHeader(name string, modified time.Time) *zip.FileHeader {
	hdr := &zip.FileHeader{
		Name:     name,
		Method:   zip.Store,
		Modified: modified,
	}
	hdr.SetMode(0o644)
	return hdr
}

// copyPayload streams f into dst and checks that the copied bytes still have
// the size and digest recorded in the manifest.
func copyPayload(dst io.Writer, f payloadFile) error {
	// #nosec G304
	src, err := os.Open(f.abs)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", f.rel, err)
	}
	defer src.Close()

	n, sum, err := digest.Copy(dst, src)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", f.rel, err)
	}
	if n != f.size {
		return fmt.Errorf("%s changed while packaging: size %d, expected %d", f.rel, n, f.size)
	}
	if sum != f.sha256 {
		return fmt.Errorf("%s changed while packaging: sha256 %s, expected %s", f.rel, sum, f.sha256)
	}
	return nil
}
