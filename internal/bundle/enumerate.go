package bundle

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/imamik/mwpack/internal/logging"
	"github.com/imamik/mwpack/internal/util/async"
	"github.com/imamik/mwpack/internal/util/digest"
	"github.com/imamik/mwpack/internal/util/naming"
)

// payloadFile is a file selected for packaging.
type payloadFile struct {
	rel    string
	abs    string
	size   int64
	sha256 string
}

// collectPayload lists the regular files under dir, sorted by relative path,
// and hashes them. Reserved bundle names are skipped at any depth. Symlinks
// are included when they resolve to a regular file; symlinked directories
// are not descended into.
func collectPayload(ctx context.Context, dir string) ([]payloadFile, error) {
	log := logging.FromContext(ctx)

	var files []payloadFile
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || naming.IsReserved(d.Name()) {
			return nil
		}

		info, err := os.Stat(path)
		if err != nil {
			if d.Type()&fs.ModeSymlink != 0 {
				log.V(1).Info("skipping dangling symlink", "path", path)
				return nil
			}
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, payloadFile{
			rel:  filepath.ToSlash(rel),
			abs:  path,
			size: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s: %w", dir, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].rel < files[j].rel })

	tasks := make([]async.Task, len(files))
	for i := range files {
		f := &files[i]
		tasks[i] = async.Task{
			Name: f.rel,
			Func: func(context.Context) error {
				sum, err := digest.File(f.abs)
				if err != nil {
					return err
				}
				f.sha256 = sum
				return nil
			},
		}
	}
	if err := async.RunParallel(ctx, tasks, runtime.GOMAXPROCS(0)); err != nil {
		return nil, err
	}

	for _, f := range files {
		log.V(1).Info("payload file", "path", f.rel, "size", f.size, "sha256", f.sha256)
	}
	return files, nil
}
