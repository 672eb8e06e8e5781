package filesystem

import (
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
type MockFileSystem struct {
	mu sync.RWMutex

	// Files stores file contents by path.
	Files map[string][]byte

	// Dirs stores explicitly created directories.
	Dirs map[string]bool

	// ErrByPath makes any operation on the path fail with the error.
	ErrByPath map[string]error

	// HomeDir is returned from UserHomeDir.
	HomeDir string
}

// Ensure MockFileSystem implements FileSystem
var _ FileSystem = (*MockFileSystem)(nil)

// NewMockFileSystem creates an empty MockFileSystem rooted at /home/testuser.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:     make(map[string][]byte),
		Dirs:      make(map[string]bool),
		ErrByPath: make(map[string]error),
		HomeDir:   "/home/testuser",
	}
}

// AddFile stores a file and returns the mock for chaining.
func (m *MockFileSystem) AddFile(name, data string) *MockFileSystem {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Files[name] = []byte(data)
	return m
}

func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.ErrByPath[name]; err != nil {
		return nil, err
	}
	data, ok := m.Files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return slices.Clone(data), nil
}

func (m *MockFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ErrByPath[name]; err != nil {
		return err
	}
	m.Files[name] = slices.Clone(data)
	return nil
}

func (m *MockFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.ErrByPath[name]; err != nil {
		return nil, err
	}
	if data, ok := m.Files[name]; ok {
		return mockFileInfo{name: path.Base(name), size: int64(len(data))}, nil
	}
	if m.isDir(name) {
		return mockFileInfo{name: path.Base(name), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (m *MockFileSystem) MkdirAll(dir string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ErrByPath[dir]; err != nil {
		return err
	}
	for p := dir; p != "/" && p != "."; p = path.Dir(p) {
		m.Dirs[p] = true
	}
	return nil
}

// ReadDir lists the direct children of name, sorted by name.
func (m *MockFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.ErrByPath[name]; err != nil {
		return nil, err
	}
	if !m.isDir(name) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}

	seen := map[string]mockFileInfo{}
	prefix := strings.TrimSuffix(name, "/") + "/"
	for p, data := range m.Files {
		if rest, ok := strings.CutPrefix(p, prefix); ok {
			if child, _, nested := strings.Cut(rest, "/"); nested {
				seen[child] = mockFileInfo{name: child, dir: true}
			} else {
				seen[child] = mockFileInfo{name: child, size: int64(len(data))}
			}
		}
	}
	for d := range m.Dirs {
		if rest, ok := strings.CutPrefix(d, prefix); ok {
			child, _, _ := strings.Cut(rest, "/")
			seen[child] = mockFileInfo{name: child, dir: true}
		}
	}

	entries := make([]fs.DirEntry, 0, len(seen))
	for _, info := range seen {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	slices.SortFunc(entries, func(a, b fs.DirEntry) int { return strings.Compare(a.Name(), b.Name()) })
	return entries, nil
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, nil
}

// isDir must be called with the lock held.
func (m *MockFileSystem) isDir(name string) bool {
	if m.Dirs[name] {
		return true
	}
	prefix := strings.TrimSuffix(name, "/") + "/"
	for p := range m.Files {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (fi mockFileInfo) Name() string       { return fi.name }
func (fi mockFileInfo) Size() int64        { return fi.size }
func (fi mockFileInfo) ModTime() time.Time { return time.Time{} }
func (fi mockFileInfo) IsDir() bool        { return fi.dir }
func (fi mockFileInfo) Sys() any           { return nil }

func (fi mockFileInfo) Mode() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | 0755
	}
	return 0644
}
