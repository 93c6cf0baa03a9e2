// Package templates provides the NestJS module templates and placeholder rendering.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	oerrors "github.com/nestkit/create-module/internal/errors"
)

//go:embed nest/*.template.ts
var nestFS embed.FS

// nestRoot is the directory inside nestFS holding the templates.
const nestRoot = "nest"

// Template identifiers of the built-in set.
const (
	ModuleTemplate     = "module.template.ts"
	APIServiceTemplate = "api-service.template.ts"
	EntityTemplate     = "entity.template.ts"
	RepositoryTemplate = "repository.template.ts"
	ServiceTemplate    = "service.template.ts"
	ControllerTemplate = "controller.template.ts"
)

// Source loads template text by identifier.
type Source interface {
	// Load returns the raw template text. A missing template yields an error
	// matching errors.ErrNotFound.
	Load(id string) ([]byte, error)
}

// embeddedSource serves templates compiled into the binary.
type embeddedSource struct {
	fsys fs.FS
	root string
}

// Embedded returns the built-in NestJS template set.
func Embedded() Source {
	return &embeddedSource{fsys: nestFS, root: nestRoot}
}

// Load implements Source.
func (s *embeddedSource) Load(id string) ([]byte, error) {
	if !validID(id) {
		return nil, oerrors.Wrap(oerrors.ErrNotFound, fmt.Sprintf("invalid template identifier %q", id))
	}

	data, err := fs.ReadFile(s.fsys, path.Join(s.root, id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewNotFoundError(fmt.Sprintf("template %q is not built in", id), "")
		}
		return nil, fmt.Errorf("reading template %s: %w", id, err)
	}
	return data, nil
}

// List returns the identifiers of all built-in templates, sorted.
func List() ([]string, error) {
	entries, err := fs.ReadDir(nestFS, nestRoot)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// validID rejects identifiers that would escape the template directory.
func validID(id string) bool {
	if id == "" || strings.Contains(id, "..") {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}
