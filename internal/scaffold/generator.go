package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	oerrors "github.com/nestkit/create-module/internal/errors"
	"github.com/nestkit/create-module/internal/naming"
	"github.com/nestkit/create-module/internal/output"
	"github.com/nestkit/create-module/internal/templates"
)

// Host project markers.
const (
	// NestCLIFile marks a NestJS project root.
	NestCLIFile = "nest-cli.json"

	// MainFile is the NestJS entry point, looked up in the source directory.
	MainFile = "main.ts"
)

// DefaultSourceDir is used when Options.SourceDir is empty.
const DefaultSourceDir = "src"

// DefaultContainerDirs is used when Options.ContainerDirs is empty.
var DefaultContainerDirs = []string{"features", "modules"}

// Options configures GenerateModule.
type Options struct {
	// FS is the filesystem the project lives on.
	FS afero.Fs

	// ProjectRoot is the NestJS project root.
	ProjectRoot string

	// ModuleName is the raw module name from the command line.
	ModuleName string

	// EntityName is the raw entity name; empty means ModuleName.
	EntityName string

	// AddTsconfigPath switches generated imports to the @/<module> alias.
	AddTsconfigPath bool

	// SourceDir is the source directory relative to ProjectRoot.
	SourceDir string

	// ContainerDirs lists module container directories under SourceDir, by preference.
	ContainerDirs []string

	// Templates resolves template identifiers. nil means templates.Embedded().
	Templates templates.Source
}

// Result identifies what GenerateModule produced.
type Result struct {
	// ContainerDir is the directory holding all modules (e.g., <root>/src/modules).
	ContainerDir string

	// ModuleDir is the generated module's directory.
	ModuleDir string

	// ModuleKebab is the module name in kebab-case.
	ModuleKebab string

	// Module and Entity are the derived name forms.
	Module naming.Forms
	Entity naming.Forms

	// Files lists created files and directories relative to ModuleDir.
	Files []string

	// Warnings lists recoverable problems, such as missing templates.
	Warnings []string
}

// GenerateModule validates the names, checks the project and writes the
// module skeleton. Generated files are overwritten on every run.
func GenerateModule(opts Options) (*Result, error) {
	moduleName, err := naming.Normalize(opts.ModuleName)
	if err != nil {
		return nil, err
	}

	entityRaw := opts.EntityName
	if strings.TrimSpace(entityRaw) == "" {
		entityRaw = moduleName
	}
	entityName, err := naming.NormalizeEntity(entityRaw)
	if err != nil {
		return nil, err
	}

	module := naming.NewForms(moduleName)
	entity := naming.EntityForms(entityName)

	sourceDir := opts.SourceDir
	if sourceDir == "" {
		sourceDir = DefaultSourceDir
	}
	containers := opts.ContainerDirs
	if len(containers) == 0 {
		containers = DefaultContainerDirs
	}
	source := opts.Templates
	if source == nil {
		source = templates.Embedded()
	}

	if !IsHostProject(opts.FS, opts.ProjectRoot, sourceDir) {
		return nil, oerrors.NewPreconditionError(oerrors.ErrNotHostProject,
			"the current project does not appear to be a NestJS application",
			opts.ProjectRoot,
			fmt.Sprintf("Expected %s or %s", NestCLIFile, filepath.Join(sourceDir, MainFile)))
	}

	containerDir, ok := FindContainerDir(opts.FS, filepath.Join(opts.ProjectRoot, sourceDir), containers)
	if !ok {
		return nil, oerrors.NewPreconditionError(oerrors.ErrNoContainerDir,
			fmt.Sprintf("could not find a %s directory in %q", quoteList(containers), sourceDir),
			"",
			"Please create one of these directories to proceed")
	}

	moduleDir := filepath.Join(containerDir, module.Kebab)
	if err := opts.FS.MkdirAll(moduleDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating module directory %s: %w", moduleDir, err)
	}

	moduleLog := output.ModuleLogger(module.Kebab)
	moduleLog.Info("creating module structure", "dir", moduleDir)

	var alias string
	if opts.AddTsconfigPath {
		alias = "@/" + module.Kebab
	}

	m := NewMaterializer(MaterializerOptions{
		FS:        opts.FS,
		Templates: source,
		ModuleDir: moduleDir,
		BaseAlias: alias,
		Logger:    moduleLog,
	})

	layout := Layout(module, entity)
	replacements := Replacements(module, entity)

	for _, section := range Sections() {
		node, ok := layout.Lookup(section)
		if !ok {
			continue
		}
		target := filepath.Join(moduleDir, section)
		if section == RootEntry {
			target = moduleDir
		}
		if err := m.Materialize(node, target, replacements); err != nil {
			return nil, err
		}
	}

	return &Result{
		ContainerDir: containerDir,
		ModuleDir:    moduleDir,
		ModuleKebab:  module.Kebab,
		Module:       module,
		Entity:       entity,
		Files:        m.Created(),
		Warnings:     m.Warnings(),
	}, nil
}

// IsHostProject reports whether projectRoot looks like a NestJS application.
func IsHostProject(fsys afero.Fs, projectRoot, sourceDir string) bool {
	for _, marker := range []string{
		filepath.Join(projectRoot, NestCLIFile),
		filepath.Join(projectRoot, sourceDir, MainFile),
	} {
		if ok, _ := afero.Exists(fsys, marker); ok {
			return true
		}
	}
	return false
}

// FindContainerDir returns the first candidate that exists as a directory
// under sourceDir.
func FindContainerDir(fsys afero.Fs, sourceDir string, candidates []string) (string, bool) {
	for _, c := range candidates {
		full := filepath.Join(sourceDir, c)
		if ok, _ := afero.DirExists(fsys, full); ok {
			return full, true
		}
	}
	return "", false
}

// quoteList renders candidates as "'a' or 'b'".
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	if len(quoted) <= 1 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
