package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nestkit/create-module/internal/appmodule"
	"github.com/nestkit/create-module/internal/config"
	"github.com/nestkit/create-module/internal/output"
	"github.com/nestkit/create-module/internal/scaffold"
	"github.com/nestkit/create-module/internal/templates"
	"github.com/nestkit/create-module/internal/tsconfig"
)

func runGenerate(cmd *cobra.Command, baseFs afero.Fs, flags *rootFlags, moduleName string) error {
	format, err := output.ParseFormat(flags.output)
	if err != nil {
		return usageError(err)
	}

	logCfg := output.LogConfig{Verbose: flags.verbose, Writer: cmd.ErrOrStderr()}
	if cmd.Flags().Changed(flagTimestamps) {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	}
	output.SetupLogging(logCfg)

	root, err := projectRoot(flags.projectDir)
	if err != nil {
		return fail(err)
	}

	loader := config.NewLoader(baseFs)
	cfg, err := loader.Load(root, flags.configFile)
	if err != nil {
		return fail(err)
	}
	if err := config.Validate(cfg); err != nil {
		return fail(err)
	}

	if logCfg.Timestamps == nil && cfg.Log.Timestamps {
		logCfg.Timestamps = output.BoolPtr(true)
		output.SetupLogging(logCfg)
	}

	alias := cfg.AddTsconfigPath
	if cmd.Flags().Changed(flagAddTsconfigPath) {
		alias = flags.addTsconfigPath
	}

	output.Debug("initializing create-module",
		"root", root,
		"config", loader.ConfigFile(),
		"sourceDir", cfg.SourceDir,
		"containerDirs", cfg.ContainerDirs,
		"alias", alias,
		"dryRun", flags.dryRun,
	)

	fsys := baseFs
	if flags.dryRun {
		fsys = afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(baseFs), afero.NewMemMapFs())
	}

	var overrideWarnings []string
	source := templates.Embedded()
	if cfg.TemplatesDir != "" {
		dir, err := config.ResolvePath(root, cfg.TemplatesDir)
		if err != nil {
			return fail(err)
		}
		output.Debug("using template overrides", "dir", dir)
		overrides := templates.NewDirSource(fsys, dir, source)
		unknown, err := overrides.Unknown()
		if err != nil {
			return fail(err)
		}
		for _, name := range unknown {
			msg := fmt.Sprintf("%s in %s matches no template and is ignored", name, relPath(root, dir))
			output.Warn(msg)
			overrideWarnings = append(overrideWarnings, msg)
		}
		source = overrides
	}

	res, err := scaffold.GenerateModule(scaffold.Options{
		FS:              fsys,
		ProjectRoot:     root,
		ModuleName:      moduleName,
		EntityName:      flags.entity,
		AddTsconfigPath: alias,
		SourceDir:       cfg.SourceDir,
		ContainerDirs:   cfg.ContainerDirs,
		Templates:       source,
	})
	if err != nil {
		return fail(err)
	}

	useColor := output.IsTerminal(cmd.OutOrStdout())

	report := output.Report{
		Module:       res.ModuleKebab,
		ContainerDir: relPath(root, res.ContainerDir),
		ModuleDir:    relPath(root, res.ModuleDir),
		DryRun:       flags.dryRun,
		Created:      res.Files,
		Warnings:     append(overrideWarnings, res.Warnings...),
	}

	if alias {
		ts := tsconfig.Update(tsconfig.Options{
			FS:           fsys,
			ProjectRoot:  root,
			Candidates:   cfg.TsconfigFiles,
			SourceDir:    cfg.SourceDir,
			ContainerDir: res.ContainerDir,
			ModuleKebab:  res.ModuleKebab,
		})
		report.Patched = append(report.Patched, tsconfigEntry(root, cfg.TsconfigFiles, ts, flags.dryRun, useColor))
		report.Warnings = append(report.Warnings, ts.Warnings...)
	}

	am := appmodule.Register(appmodule.Options{
		FS:          fsys,
		SearchDir:   filepath.Join(root, cfg.SourceDir),
		ModuleDir:   res.ModuleDir,
		ModuleKebab: res.ModuleKebab,
		Alias:       alias,
	})
	report.Patched = append(report.Patched, appModuleEntry(root, am, flags.dryRun, useColor))
	report.Warnings = append(report.Warnings, am.Warnings...)

	if err := output.WriteReport(cmd.OutOrStdout(), format, report, useColor); err != nil {
		return fail(err)
	}
	return nil
}

// fail logs err and marks it as printed for main.
func fail(err error) error {
	output.Error(err.Error())
	return &ExitError{Err: err, Code: ExitGeneralError, Printed: true}
}

func projectRoot(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving project directory %s: %w", dir, err)
	}
	return abs, nil
}

// relPath returns p relative to root for display, slash-separated.
func relPath(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}

func tsconfigEntry(root string, candidates []string, res tsconfig.Result, dryRun, useColor bool) output.PatchedFile {
	entry := output.PatchedFile{Path: relPath(root, res.Path)}
	if res.Path == "" && len(candidates) > 0 {
		entry.Path = candidates[0]
	}

	switch res.Status {
	case tsconfig.StatusAdded:
		entry.Status = output.StatusPatched
		entry.Detail = fmt.Sprintf("alias %s -> %s", res.Key, res.Value)
	case tsconfig.StatusExists:
		entry.Status = output.StatusUnchanged
		entry.Detail = fmt.Sprintf("alias %s already present", res.Key)
	case tsconfig.StatusSkipped:
		entry.Status = output.StatusSkipped
		entry.Detail = "not found"
	default:
		entry.Status = output.StatusFailed
	}

	if dryRun && res.Status == tsconfig.StatusAdded {
		before, err := tsconfig.Normalize(res.Before)
		if err == nil {
			entry.Diff, err = output.DocumentDiff(before, res.After, useColor)
		}
		if err != nil {
			output.Debug("could not render tsconfig diff", "error", err)
		}
	}
	return entry
}

func appModuleEntry(root string, res appmodule.Result, dryRun, useColor bool) output.PatchedFile {
	entry := output.PatchedFile{Path: relPath(root, res.Path)}
	if res.Path == "" {
		entry.Path = appmodule.FileName
	}

	switch {
	case res.Status == appmodule.StatusFailed:
		entry.Status = output.StatusFailed
	case res.Status == appmodule.StatusNotFound:
		entry.Status = output.StatusSkipped
	case res.Changed():
		entry.Status = output.StatusPatched
	default:
		entry.Status = output.StatusUnchanged
	}

	switch res.Status {
	case appmodule.StatusAdded:
		entry.Detail = "registered " + res.ClassName
	case appmodule.StatusInjected:
		entry.Detail = "injected imports: [" + res.ClassName + "]"
	case appmodule.StatusPresent:
		entry.Detail = res.ClassName + " already registered"
	case appmodule.StatusNoDecorator:
		entry.Detail = "no @Module decorator"
	case appmodule.StatusNoObject:
		entry.Detail = "no @Module object"
	case appmodule.StatusUnbalanced:
		entry.Detail = "unbalanced imports array"
	case appmodule.StatusNotFound:
		entry.Detail = "not found"
	}

	if dryRun && res.Changed() {
		entry.Diff = output.TextDiff(entry.Path, res.Before, res.After, useColor)
	}
	return entry
}
