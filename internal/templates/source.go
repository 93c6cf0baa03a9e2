package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"

	oerrors "github.com/nestkit/create-module/internal/errors"
)

// DirSource serves templates from a directory, falling back to another
// Source for identifiers the directory does not provide.
type DirSource struct {
	fs       afero.Fs
	dir      string
	fallback Source
}

// NewDirSource creates a DirSource reading from dir on fsys.
// fallback may be nil, in which case missing templates are reported as not found.
func NewDirSource(fsys afero.Fs, dir string, fallback Source) *DirSource {
	return &DirSource{fs: fsys, dir: dir, fallback: fallback}
}

// Load implements Source.
func (s *DirSource) Load(id string) ([]byte, error) {
	if !validID(id) {
		return nil, oerrors.Wrap(oerrors.ErrNotFound, fmt.Sprintf("invalid template identifier %q", id))
	}

	data, err := afero.ReadFile(s.fs, filepath.Join(s.dir, id))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading template %s: %w", filepath.Join(s.dir, id), err)
	}

	if s.fallback != nil {
		return s.fallback.Load(id)
	}
	return nil, oerrors.NewNotFoundError(fmt.Sprintf("template %q not found", id), s.dir)
}

// Unknown lists the files in the directory that match no built-in template
// identifier, usually misspelled overrides. A missing directory yields none.
func (s *DirSource) Unknown() ([]string, error) {
	known, err := List()
	if err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading template directory %s: %w", s.dir, err)
	}

	var unknown []string
	for _, e := range entries {
		if e.IsDir() || slices.Contains(known, e.Name()) {
			continue
		}
		unknown = append(unknown, e.Name())
	}
	return unknown, nil
}
