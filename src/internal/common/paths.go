package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveWorkspaceRoot returns root as an absolute, existing directory.
// An empty root selects the current working directory.
func ResolveWorkspaceRoot(root string) (string, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}

	absPath, err := ResolvePath(root)
	if err != nil {
		return "", err
	}

	if info, err := os.Stat(absPath); err != nil {
		return "", fmt.Errorf("workspace root '%s' does not exist: %w", absPath, err)
	} else if !info.IsDir() {
		return "", fmt.Errorf("workspace root '%s' is not a directory", absPath)
	}
	return absPath, nil
}

// ResolvePath expands ~ and makes path absolute. The path need not exist.
func ResolvePath(path string) (string, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand path '%s': %w", path, err)
	}
	absPath, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for '%s': %w", expanded, err)
	}
	return absPath, nil
}

// ExpandPath expands ~ to the user's home directory in file paths.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("failed to get user home directory: %w", err)
	}

	if path == "~" {
		return homeDir, nil
	}

	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~user is left alone
	return path, nil
}
