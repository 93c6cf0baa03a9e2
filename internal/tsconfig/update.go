package tsconfig

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/nestkit/create-module/internal/output"
)

// DefaultCandidates are the config files tried in order.
var DefaultCandidates = []string{"tsconfig.json", "tsconfig.base.json"}

// Status reports what Update did.
type Status string

const (
	// StatusAdded means the alias was written.
	StatusAdded Status = "added"

	// StatusExists means the alias was already configured.
	StatusExists Status = "exists"

	// StatusSkipped means no config file was found.
	StatusSkipped Status = "skipped"

	// StatusFailed means the config could not be parsed or written.
	StatusFailed Status = "failed"
)

// Options configures Update.
type Options struct {
	FS          afero.Fs
	ProjectRoot string

	// Candidates are config file names relative to ProjectRoot. Empty means DefaultCandidates.
	Candidates []string

	// SourceDir is the source directory relative to ProjectRoot.
	SourceDir string

	// ContainerDir is the directory holding the module; only its base name is used.
	ContainerDir string

	ModuleKebab string
}

// Result describes what Update did.
type Result struct {
	Path   string
	Key    string
	Value  string
	Status Status

	// Before and After hold the file content around the update.
	Before []byte
	After  []byte

	Warnings []string
}

// Key returns the alias key for a module.
func Key(kebab string) string {
	return "@/" + kebab + "/*"
}

// Target returns the alias target for a module.
func Target(sourceDir, containerDir, kebab string) string {
	return "./" + path.Join(filepath.ToSlash(sourceDir), filepath.Base(containerDir), kebab) + "/*"
}

// Update adds the @/<module>/* alias to the first existing candidate config.
// It never fails; problems are reported as warnings.
func Update(opts Options) Result {
	res := Result{
		Key:   Key(opts.ModuleKebab),
		Value: Target(opts.SourceDir, opts.ContainerDir, opts.ModuleKebab),
	}

	candidates := opts.Candidates
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}

	for _, c := range candidates {
		p := filepath.Join(opts.ProjectRoot, c)
		if ok, _ := afero.Exists(opts.FS, p); ok {
			res.Path = p
			break
		}
	}
	if res.Path == "" {
		res.Status = StatusSkipped
		res.warn("no tsconfig file found (%s), skipping tsconfig update", joinNames(candidates))
		return res
	}

	data, err := afero.ReadFile(opts.FS, res.Path)
	if err != nil {
		res.Status = StatusFailed
		res.warn("failed to read %s: %v", res.Path, err)
		return res
	}
	res.Before = data

	out, added, err := AddPath(data, res.Key, []string{res.Value})
	if err != nil {
		res.Status = StatusFailed
		res.warn("failed to update %s: %v", res.Path, err)
		return res
	}
	if !added {
		res.Status = StatusExists
		res.After = data
		output.Info("tsconfig already contains alias, skipping", "path", res.Path, "key", res.Key)
		return res
	}

	mode := os.FileMode(0o644)
	if info, err := opts.FS.Stat(res.Path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := afero.WriteFile(opts.FS, res.Path, out, mode); err != nil {
		res.Status = StatusFailed
		res.warn("failed to write %s: %v", res.Path, err)
		return res
	}

	res.Status = StatusAdded
	res.After = out
	output.Info("updated tsconfig", "path", res.Path, "key", res.Key, "target", res.Value)
	return res
}

func (r *Result) warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	output.Warn(msg)
	r.Warnings = append(r.Warnings, msg)
}

func joinNames(names []string) string {
	s := ""
	for i, n := range names {
		switch {
		case i == 0:
		case i == len(names)-1:
			s += " or "
		default:
			s += ", "
		}
		s += n
	}
	return s
}
