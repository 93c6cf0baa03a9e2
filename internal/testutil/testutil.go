// Package testutil provides helpers for building fake NestJS projects in tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// AppModuleSource is a minimal app.module.ts as generated by the Nest CLI.
const AppModuleSource = `import { Module } from '@nestjs/common';
import { AppController } from './app.controller';
import { AppService } from './app.service';

@Module({
  imports: [],
  controllers: [AppController],
  providers: [AppService],
})
export class AppModule {}
`

// TsconfigSource is a tsconfig.json with comments, as tsc --init writes them.
const TsconfigSource = `{
  "compilerOptions": {
    /* Modules */
    "module": "commonjs",
    "baseUrl": "./", // resolve non-relative imports from here
    "outDir": "./dist",
  }
}
`

// Project describes a fake NestJS project.
type Project struct {
	// Container is created under src when set (e.g., "modules").
	Container string

	// AppModule is written to src/app.module.ts when set.
	AppModule string

	// Tsconfig is written to tsconfig.json when set.
	Tsconfig string

	// NestCLI writes nest-cli.json instead of src/main.ts as the host marker.
	NestCLI bool
}

// DefaultProject is a project with a modules container, an app module and a tsconfig.
func DefaultProject() Project {
	return Project{
		Container: "modules",
		AppModule: AppModuleSource,
		Tsconfig:  TsconfigSource,
	}
}

// Build writes p below root on fsys.
func (p Project) Build(t *testing.T, fsys afero.Fs, root string) {
	t.Helper()

	if p.NestCLI {
		WriteFile(t, fsys, filepath.Join(root, "nest-cli.json"), `{"collection": "@nestjs/schematics", "sourceRoot": "src"}`)
	} else {
		WriteFile(t, fsys, filepath.Join(root, "src", "main.ts"), "bootstrap();\n")
	}
	if p.Container != "" {
		if err := fsys.MkdirAll(filepath.Join(root, "src", p.Container), 0o755); err != nil {
			t.Fatalf("failed to create container dir: %v", err)
		}
	}
	if p.AppModule != "" {
		WriteFile(t, fsys, filepath.Join(root, "src", "app.module.ts"), p.AppModule)
	}
	if p.Tsconfig != "" {
		WriteFile(t, fsys, filepath.Join(root, "tsconfig.json"), p.Tsconfig)
	}
}

// TempProject builds p in a fresh temporary directory on the OS filesystem.
func TempProject(t *testing.T, p Project) string {
	t.Helper()
	root := t.TempDir()
	p.Build(t, afero.NewOsFs(), root)
	return root
}

// WriteFile creates path with content, creating parent directories.
func WriteFile(t *testing.T, fsys afero.Fs, path, content string) string {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path.
func ReadFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}

// Snapshot maps every file below root to its content, keyed by slash path
// relative to root. Directories are keyed with a trailing slash.
func Snapshot(t *testing.T, fsys afero.Fs, root string) map[string]string {
	t.Helper()
	snap := map[string]string{}
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if info.IsDir() {
			snap[rel+"/"] = ""
			return nil
		}
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		snap[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to snapshot %s: %v", root, err)
	}
	return snap
}
