// Package paths provides common path utilities for the application.
package paths

import (
	"path/filepath"

	"github.com/ideaspaper/xcurl/internal/filesystem"
)

const (
	// AppDirName is the name of the application's data directory
	AppDirName = ".xcurl"

	// ProfileExt is the file extension of profile documents.
	ProfileExt = ".yaml"
)

// HomeDir returns the user's home directory.
func HomeDir() (string, error) {
	return filesystem.Default.UserHomeDir()
}

// AppDataDir returns the path to the application's data directory.
// If subdir is provided, it returns the path to that subdirectory.
func AppDataDir(subdir string) (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	if subdir == "" {
		return filepath.Join(home, AppDirName), nil
	}
	return filepath.Join(home, AppDirName, subdir), nil
}

// DefaultConfigPath returns the path to the default config file.
func DefaultConfigPath() (string, error) {
	dir, err := AppDataDir("")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultProfilePath returns the path of the named profile in the app dir.
func DefaultProfilePath(name string) (string, error) {
	dir, err := AppDataDir("")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+ProfileExt), nil
}

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(path string) error {
	return filesystem.EnsureDir(filesystem.Default, path)
}

// WriteFile writes data with 0644 permissions.
func WriteFile(path string, data []byte) error {
	return filesystem.Default.WriteFile(path, data, 0644)
}
