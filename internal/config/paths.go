package config

import (
	"os"
	"path/filepath"
)

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported, return as-is
	return path, nil
}

// ResolvePath expands ~ and makes relative paths relative to projectRoot.
// An empty path stays empty.
func ResolvePath(projectRoot, path string) (string, error) {
	if path == "" {
		return "", nil
	}

	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}

	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Join(projectRoot, expanded), nil
}
