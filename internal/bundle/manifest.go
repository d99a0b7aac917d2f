package bundle

import (
	"github.com/imamik/mwpack/internal/util/digest"
	"github.com/imamik/mwpack/internal/util/jsonutil"
)

// ManifestVersion is the only manifest layout written.
const ManifestVersion = 1

// Manifest describes the payload of a bundle.
type Manifest struct {
	Version int    `json:"version"`
	Files   []File `json:"files"`
}

// File is one payload entry in a manifest.
type File struct {
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
}

func newManifest(files []payloadFile) *Manifest {
	m := &Manifest{
		Version: ManifestVersion,
		Files:   make([]File, len(files)),
	}
	for i, f := range files {
		m.Files[i] = File{Path: f.rel, Size: f.size, SHA256: f.sha256}
	}
	return m
}

// encode returns the form stored as MANIFEST.json inside the archive.
func (m *Manifest) encode() ([]byte, error) {
	return jsonutil.Pretty(m)
}

// ChecksumManifest returns the SHA-256 of the compact canonical JSON form of
// m. It identifies a manifest independently of archive format.
func ChecksumManifest(m *Manifest) (string, error) {
	data, err := jsonutil.Compact(m)
	if err != nil {
		return "", err
	}
	return digest.Bytes(data), nil
}
