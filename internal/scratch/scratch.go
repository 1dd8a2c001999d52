// Package scratch owns the per-session temporary directory uploads are
// materialized into. The directory lives exactly as long as its Dir value:
// created by New, emptied and removed by Close.
package scratch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type Dir struct {
	path string
}

func New() (*Dir, error) {
	p, err := os.MkdirTemp("", "question-analyzer-*")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	return &Dir{path: p}, nil
}

func (d *Dir) Path() string { return d.path }

// Save writes an upload under a unique name and returns its path. The
// original name is kept as a suffix so saved files stay recognizable.
func (d *Dir) Save(name string, data []byte) (string, error) {
	p := filepath.Join(d.path, uuid.NewString()+"-"+filepath.Base(name))
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	return p, nil
}

// Remove deletes one saved file.
func (d *Dir) Remove(path string) error {
	return os.Remove(path)
}

// Close removes any remaining files and the directory itself. Individual
// failures are joined and returned, never raised mid-sweep.
func (d *Dir) Close() error {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var errs []error
	for _, e := range entries {
		if err := os.Remove(filepath.Join(d.path, e.Name())); err != nil {
			errs = append(errs, err)
		}
	}
	if err := os.Remove(d.path); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
