package bundle

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"

	"github.com/imamik/mwpack/internal/apperr"
	"github.com/imamik/mwpack/internal/logging"
	"github.com/imamik/mwpack/internal/util/digest"
	"github.com/imamik/mwpack/internal/util/naming"
)

// Format selects the archive container.
type Format string

const (
	// FormatZip writes bundle.zip with STORED entries.
	FormatZip Format = "zip"

	// FormatTarGz writes bundle.tar.gz.
	FormatTarGz Format = "tar.gz"
)

// Formats lists the supported formats in the order they are documented.
var Formats = []Format{FormatZip, FormatTarGz}

// ParseFormat validates s as an archive format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", apperr.Validationf("--format must be zip or tar.gz")
}

// FileName returns the bundle file name written for f.
func (f Format) FileName() string {
	if f == FormatTarGz {
		return naming.TarGzBundle
	}
	return naming.ZipBundle
}

// Create packages dir into dir/bundle.zip or dir/bundle.tar.gz and returns
// the bundle path with the manifest it contains. An existing bundle of
// either format is ignored as payload and overwritten. When any step fails
// no bundle file is left behind.
func Create(ctx context.Context, dir string, format Format, sourceDateEpoch int64) (string, *Manifest, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", nil, apperr.Validationf("package dir does not exist: %s", dir)
	}
	if sourceDateEpoch < 0 {
		return "", nil, apperr.Validationf("source_date_epoch must be >= 0")
	}

	var write func(io.Writer, []payloadFile, []byte, int64) error
	switch format {
	case FormatZip:
		write = writeZip
	case FormatTarGz:
		write = writeTarGz
	default:
		return "", nil, apperr.Validationf("--format must be zip or tar.gz")
	}

	log := logging.FromContext(ctx).WithValues("dir", dir, "format", string(format))

	files, err := collectPayload(ctx, dir)
	if err != nil {
		return "", nil, err
	}
	manifest := newManifest(files)
	manifestBytes, err := manifest.encode()
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode manifest: %w", err)
	}

	bundlePath := filepath.Join(dir, format.FileName())
	if err := writeFile(bundlePath, func(w io.Writer) error {
		return write(w, files, manifestBytes, sourceDateEpoch)
	}); err != nil {
		return "", nil, err
	}

	log.Info("bundle written", "path", bundlePath, "files", len(files))
	return bundlePath, manifest, nil
}

// writeFile creates path, fills it with fn and removes it again on failure.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	// #nosec G304
	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := fn(out); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// ChecksumBundle returns the SHA-256 of the bundle file at path.
func ChecksumBundle(path string) (string, error) {
	return digest.File(path)
}

// ReadEntryNames lists the entry names of a bundle in stored order. The
// format is taken from the file name suffix.
func ReadEntryNames(path string) ([]string, error) {
	if filepath.Base(path) == naming.TarGzBundle || filepath.Ext(path) == ".gz" {
		return readTarGzNames(path)
	}
	return readZipNames(path)
}

func readZipNames(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer zr.Close()

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names, nil
}

func readTarGzNames(path string) ([]string, error) {
	// #nosec G304
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read gzip stream %s: %w", path, err)
	}
	defer gz.Close()

	var names []string
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return names, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar entry in %s: %w", path, err)
		}
		names = append(names, hdr.Name)
	}
}
