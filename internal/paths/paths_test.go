package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHomeDir(t *testing.T) {
	got, err := HomeDir()
	if err != nil {
		t.Fatalf("HomeDir() error = %v", err)
	}

	expected, _ := os.UserHomeDir()
	if got != expected {
		t.Errorf("HomeDir() = %q, want %q", got, expected)
	}
}

func TestAppPaths(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		name string
		get  func() (string, error)
		want string
	}{
		{"app dir", func() (string, error) { return AppDataDir("") }, filepath.Join(homeDir, ".xcurl")},
		{"subdir", func() (string, error) { return AppDataDir("cache") }, filepath.Join(homeDir, ".xcurl", "cache")},
		{"config", DefaultConfigPath, filepath.Join(homeDir, ".xcurl", "config.yaml")},
		{"profile", func() (string, error) { return DefaultProfilePath("dev") }, filepath.Join(homeDir, ".xcurl", "dev.yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.get()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnsureDirAndWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}

	path := filepath.Join(dir, "f.yaml")
	if err := WriteFile(path, []byte("theme: dracula\n")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "theme: dracula\n" {
		t.Errorf("content = %q", data)
	}
}
