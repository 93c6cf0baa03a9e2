package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	oerrors "github.com/nestkit/create-module/internal/errors"
	"github.com/nestkit/create-module/internal/output"
	"github.com/nestkit/create-module/internal/templates"
)

// MaterializerOptions configures a Materializer.
type MaterializerOptions struct {
	// FS receives all directories and files.
	FS afero.Fs

	// Templates resolves FileSpec.TemplateID.
	Templates templates.Source

	// ModuleDir is the module's root directory. $BaseDir$ is computed relative to it.
	ModuleDir string

	// BaseAlias, when set, is used verbatim as $BaseDir$ (e.g., "@/users").
	BaseAlias string

	// Logger receives one line per written file. nil uses the global logger.
	Logger *log.Logger
}

// Materializer interprets Node trees, creating directories and rendering files.
type Materializer struct {
	opts     MaterializerOptions
	log      *log.Logger
	created  []string
	warnings []string
}

// NewMaterializer creates a Materializer.
func NewMaterializer(opts MaterializerOptions) *Materializer {
	l := opts.Logger
	if l == nil {
		l = output.Logger()
	}
	return &Materializer{opts: opts, log: l}
}

// Created returns what was written so far, relative to ModuleDir and
// slash-separated. Directories created without files end in "/".
func (m *Materializer) Created() []string {
	return append([]string(nil), m.created...)
}

// Warnings returns the recoverable problems met so far.
func (m *Materializer) Warnings() []string {
	return append([]string(nil), m.warnings...)
}

// Materialize creates node inside targetDir using r for every rendered file.
// Existing files are overwritten; existing directories are left alone.
func (m *Materializer) Materialize(node Node, targetDir string, r templates.Replacements) error {
	switch node.Kind {
	case DirNode:
		if targetDir == "" {
			return nil
		}
		if err := m.opts.FS.MkdirAll(targetDir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", targetDir, err)
		}
		m.record(targetDir, true)
		return nil

	case FilesNode:
		if err := m.opts.FS.MkdirAll(targetDir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", targetDir, err)
		}
		for _, f := range node.Files {
			if err := m.writeFile(filepath.Join(targetDir, f.Filename), f.TemplateID, r); err != nil {
				return err
			}
		}
		return nil

	case TreeNode:
		for _, e := range node.Entries {
			next := filepath.Join(targetDir, e.Name)
			if e.Name == RootEntry {
				next = targetDir
			}
			if err := m.Materialize(e.Node, next, r); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown node kind %d at %s", node.Kind, targetDir)
	}
}

func (m *Materializer) writeFile(path, templateID string, r templates.Replacements) error {
	var content string

	if templateID != "" {
		tpl, err := m.opts.Templates.Load(templateID)
		switch {
		case err == nil:
			content = templates.Render(string(tpl), r.With(templates.TokenBaseDir, m.baseDir(path)))
		case errors.Is(err, oerrors.ErrNotFound):
			m.log.Warn("template not found, creating empty file", "template", templateID, "path", path)
			m.warnings = append(m.warnings, fmt.Sprintf("template %s not found, created empty %s", templateID, path))
		default:
			return err
		}
	}

	if err := afero.WriteFile(m.opts.FS, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	m.log.Info("created", "path", path)
	m.record(path, false)
	return nil
}

// baseDir computes $BaseDir$ for the file at path.
func (m *Materializer) baseDir(path string) string {
	if m.opts.BaseAlias != "" {
		return m.opts.BaseAlias
	}
	if m.opts.ModuleDir == "" {
		return "."
	}
	rel, err := filepath.Rel(filepath.Dir(path), m.opts.ModuleDir)
	if err != nil || rel == "" {
		return "."
	}
	return filepath.ToSlash(rel)
}

func (m *Materializer) record(path string, isDir bool) {
	rel := path
	if m.opts.ModuleDir != "" {
		if r, err := filepath.Rel(m.opts.ModuleDir, path); err == nil {
			rel = r
		}
	}
	rel = filepath.ToSlash(rel)
	if isDir {
		rel += "/"
	}
	m.created = append(m.created, rel)
}
