package appmodule

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/nestkit/create-module/internal/naming"
	"github.com/nestkit/create-module/internal/output"
)

// FileName is the root module file searched for.
const FileName = "app.module.ts"

// Find searches startDir depth-first for FileName, matching case-insensitively.
// Directories that cannot be read are skipped.
func Find(fsys afero.Fs, startDir string) (string, bool) {
	stack := []string{startDir}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := afero.ReadDir(fsys, dir)
		if err != nil {
			continue
		}

		for _, e := range entries {
			full := filepath.Join(dir, e.Name())
			if e.IsDir() {
				stack = append(stack, full)
				continue
			}
			if strings.EqualFold(e.Name(), FileName) {
				return full, true
			}
		}
	}

	return "", false
}

// ImportPath returns the specifier app.module.ts uses to import the module
// file of kebab living in moduleDir.
func ImportPath(appModulePath, moduleDir, kebab string, alias bool) string {
	if alias {
		return "@/" + kebab + "/" + kebab + ".module"
	}

	target := filepath.Join(moduleDir, kebab+".module")
	rel, err := filepath.Rel(filepath.Dir(appModulePath), target)
	if err != nil {
		rel = target
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, ".") && !strings.HasPrefix(rel, "/") {
		rel = "./" + rel
	}
	return rel
}

// Options configures Register.
type Options struct {
	// FS is the project filesystem.
	FS afero.Fs

	// SearchDir is where app.module.ts is looked for, typically <root>/src.
	SearchDir string

	// ModuleDir is the generated module's directory.
	ModuleDir string

	// ModuleKebab is the module name in kebab-case.
	ModuleKebab string

	// Alias imports the module through the @/<module> path alias.
	Alias bool
}

// Result describes what Register did.
type Result struct {
	Path      string
	ClassName string
	Status    Status

	// ImportAdded is true when an import statement was inserted.
	ImportAdded bool

	// Before and After hold the file content around the patch.
	Before string
	After  string

	Warnings []string
}

// Changed reports whether the file content was modified.
func (r Result) Changed() bool {
	return r.Before != r.After
}

// Register imports the module's class into app.module.ts and lists it in the
// @Module imports array. Every problem is reported as a warning.
func Register(opts Options) Result {
	res := Result{ClassName: naming.ClassName(opts.ModuleKebab)}

	path, ok := Find(opts.FS, opts.SearchDir)
	if !ok {
		res.Status = StatusNotFound
		res.warn("could not find %s to update, skipping AppModule modification", FileName)
		return res
	}
	res.Path = path

	data, err := afero.ReadFile(opts.FS, path)
	if err != nil {
		res.Status = StatusFailed
		res.warn("reading %s: %v", path, err)
		return res
	}
	res.Before = string(data)

	importPath := ImportPath(path, opts.ModuleDir, opts.ModuleKebab, opts.Alias)
	out := Patch(res.Before, ImportLine(res.ClassName, importPath), res.ClassName)
	res.After = out.Content
	res.Status = out.Status
	res.ImportAdded = out.ImportAdded

	switch out.Status {
	case StatusNoDecorator:
		res.warn("no @Module decorator found in %s, skipping adding module to imports", path)
	case StatusNoObject:
		res.warn("could not locate the @Module decorator object in %s to inject imports", path)
	case StatusUnbalanced:
		res.warn("imports array in %s is not closed, skipping adding module to imports", path)
	}

	if !res.Changed() {
		output.Debug("app module already up to date", "path", path, "class", res.ClassName)
		return res
	}

	mode := os.FileMode(0o644)
	if info, err := opts.FS.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := afero.WriteFile(opts.FS, path, []byte(res.After), mode); err != nil {
		res.Status = StatusFailed
		res.After = res.Before
		res.warn("writing %s: %v", path, err)
		return res
	}

	output.Info("updated app module", "path", path, "class", res.ClassName)
	return res
}

func (r *Result) warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	output.Warn(msg)
	r.Warnings = append(r.Warnings, msg)
}
