/*
Package loader reads stylesheets and the resources they reference.

The style engine itself never touches the file system. Hosts hand it a
Loader, which turns a path into bytes. FS is a loader for a directory tree;
it is able to wait for a file to change, which is what hot reloading of
stylesheets is built upon.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwss.loader'.
func tracer() tracing.Trace {
	return tracing.Select("pwss.loader")
}

// Loader reads the content addressed by path.
type Loader interface {
	Load(ctx context.Context, path string) ([]byte, error)
}

// Watcher is implemented by loaders which are able to notice changes.
// Wait blocks until the content addressed by path changes, or ctx is done.
type Watcher interface {
	Wait(ctx context.Context, path string) error
}

// ErrOutsideRoot is returned for paths escaping the root directory of an FS.
var ErrOutsideRoot = errors.New("path outside of loader root")

// FS loads files below a root directory. The zero value loads relative to
// the current working directory.
type FS struct {
	Root string
}

var _ Loader = FS{}
var _ Watcher = FS{}

func (fs FS) resolve(path string) (string, error) {
	root := fs.Root
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	full := filepath.Join(root, filepath.FromSlash(path))
	if full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: %w", path, ErrOutsideRoot)
	}
	return full, nil
}

// Load reads a file. Relative paths are interpreted relative to fs.Root.
func (fs FS) Load(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full, err := fs.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded %s (%d bytes)", full, len(data))
	return data, nil
}

// Wait blocks until the file at path is written or re-created, or until ctx
// is done. Its directory is watched rather than the file itself, as many
// editors save by replacing files.
func (fs FS) Wait(ctx context.Context, path string) error {
	full, err := fs.resolve(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err = w.Add(filepath.Dir(full)); err != nil {
		return fmt.Errorf("cannot watch %s: %w", path, err)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return errors.New("file watcher closed")
			}
			if filepath.Clean(ev.Name) != full {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				tracer().Debugf("%s changed: %s", full, ev.Op)
				return nil
			}
		case err, ok := <-w.Errors:
			if !ok {
				return errors.New("file watcher closed")
			}
			return err
		}
	}
}

// Map is an in-memory loader, keyed by path. It is handy for tests and for
// hosts embedding their stylesheets.
type Map map[string][]byte

// Load returns the content stored for path.
func (m Map) Load(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, ok := m[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, os.ErrNotExist)
	}
	return data, nil
}
