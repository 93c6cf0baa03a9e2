package naming

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/nestkit/create-module/internal/errors"
)

// allowedName matches names that start with a letter, end with a letter or
// digit, and contain only letters, digits and hyphens in between.
var allowedName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*[A-Za-z0-9]$`)

// Normalize validates a raw module or entity name and returns it trimmed and
// lowercased. It must run before any name is derived or any file is touched.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", oerrors.NewValidationError(oerrors.ErrInvalidName,
			"module name cannot be empty", "")
	}

	if !allowedName.MatchString(trimmed) {
		return "", oerrors.NewValidationError(oerrors.ErrInvalidCharacter,
			fmt.Sprintf("name %q contains invalid characters", trimmed),
			"Names must start with a letter, end with a letter or digit, and contain only letters, digits and hyphens")
	}

	return strings.ToLower(trimmed), nil
}

// NormalizeEntity trims a raw entity name. Unlike module names, entity names
// may use any casing or separators; only path segments are rejected because
// the name becomes a file name under entities/.
func NormalizeEntity(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", oerrors.NewValidationError(oerrors.ErrInvalidName,
			"entity name cannot be empty", "")
	}

	if strings.ContainsAny(trimmed, `/\`) || strings.Contains(trimmed, "..") {
		return "", oerrors.NewValidationError(oerrors.ErrInvalidCharacter,
			fmt.Sprintf("entity name %q must not contain path separators", trimmed),
			"Pass a plain name such as UserProfile or user-profile")
	}

	return trimmed, nil
}

// ClassName returns the NestJS module class name for a kebab-case module name.
func ClassName(kebab string) string {
	return Pascal(kebab) + "Module"
}
