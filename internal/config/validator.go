package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	parts := make([]string, 0, len(e))
	for _, err := range e {
		parts = append(parts, err.Error())
	}
	return "config validation failed: " + strings.Join(parts, "; ")
}

// Validate checks cfg for values the generator cannot work with.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if msg := checkRelativeDir(cfg.SourceDir); msg != "" {
		errs = append(errs, ValidationError{Field: "sourceDir", Message: msg})
	}

	if len(cfg.ContainerDirs) == 0 {
		errs = append(errs, ValidationError{Field: "containerDirs", Message: "must list at least one directory"})
	}
	for i, d := range cfg.ContainerDirs {
		if strings.TrimSpace(d) == "" || strings.ContainsAny(d, `/\`) || d == "." || d == ".." {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("containerDirs[%d]", i),
				Message: fmt.Sprintf("%q must be a single directory name", d),
			})
		}
	}

	if len(cfg.TsconfigFiles) == 0 {
		errs = append(errs, ValidationError{Field: "tsconfigFiles", Message: "must list at least one file"})
	}
	for i, f := range cfg.TsconfigFiles {
		if strings.TrimSpace(f) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("tsconfigFiles[%d]", i),
				Message: "must not be empty",
			})
		}
	}

	if cfg.TemplatesDir != "" && strings.TrimSpace(cfg.TemplatesDir) == "" {
		errs = append(errs, ValidationError{Field: "templatesDir", Message: "must not be whitespace only"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// checkRelativeDir returns a problem description, or "" if dir is usable as
// a project-relative directory.
func checkRelativeDir(dir string) string {
	if strings.TrimSpace(dir) == "" {
		return "must not be empty"
	}
	if filepath.IsAbs(dir) {
		return "must be relative to the project root"
	}
	clean := filepath.Clean(dir)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "must not leave the project root"
	}
	return ""
}
