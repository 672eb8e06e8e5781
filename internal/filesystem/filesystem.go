// Package filesystem provides a file system abstraction for testability.
package filesystem

import (
	"io/fs"
	"os"
)

// FileSystem is the subset of file operations xcurl needs for its config
// and profile files.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Stat(name string) (fs.FileInfo, error)
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
	UserHomeDir() (string, error)
}

// OSFileSystem implements FileSystem using the real OS file system.
type OSFileSystem struct{}

// Default is the file system used by the package helpers.
var Default FileSystem = &OSFileSystem{}

func (OSFileSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (OSFileSystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

func (OSFileSystem) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }

func (OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }

func (OSFileSystem) UserHomeDir() (string, error) { return os.UserHomeDir() }

// Exists returns true if the path exists (file or directory).
func Exists(fsys FileSystem, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// IsFile returns true if the path is a regular file.
func IsFile(fsys FileSystem, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(fsys FileSystem, path string) error {
	return fsys.MkdirAll(path, 0755)
}
