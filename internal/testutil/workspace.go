// Package testutil provides helpers for end-to-end tests that run the built
// when binary.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Workspace is a temporary directory holding a config file and record files.
type Workspace struct {
	Path   string
	t      *testing.T
	config string
	files  map[string]string
	today  string
	tz     string
}

// NewWorkspace creates a new workspace builder.
// Call Build() to create the directory.
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()
	return &Workspace{
		t:     t,
		files: make(map[string]string),
		tz:    "UTC",
	}
}

// WithConfig sets the config.toml content.
func (w *Workspace) WithConfig(toml string) *Workspace {
	w.config = toml
	return w
}

// WithFile adds a file relative to the workspace root.
func (w *Workspace) WithFile(path, content string) *Workspace {
	w.files[path] = content
	return w
}

// WithToday pins the reference date passed as --today.
func (w *Workspace) WithToday(date string) *Workspace {
	w.today = date
	return w
}

// WithTimezone sets the --tz flag. Defaults to UTC.
func (w *Workspace) WithTimezone(tz string) *Workspace {
	w.tz = tz
	return w
}

// Build creates the workspace directory and all configured files.
func (w *Workspace) Build() *Workspace {
	w.t.Helper()

	w.Path = w.t.TempDir()
	if w.config != "" {
		w.writeFile("config.toml", w.config)
	}
	for path, content := range w.files {
		w.writeFile(path, content)
	}
	return w
}

// ConfigPath is the path passed as --config.
func (w *Workspace) ConfigPath() string {
	return filepath.Join(w.Path, "config.toml")
}

// File returns the absolute path of a workspace file.
func (w *Workspace) File(relPath string) string {
	return filepath.Join(w.Path, relPath)
}

func (w *Workspace) writeFile(relPath, content string) {
	w.t.Helper()
	fullPath := filepath.Join(w.Path, relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		w.t.Fatalf("failed to create directory %s: %v", dir, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		w.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}

// ReadFile reads a workspace file.
func (w *Workspace) ReadFile(relPath string) string {
	w.t.Helper()
	content, err := os.ReadFile(filepath.Join(w.Path, relPath))
	if err != nil {
		w.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(content)
}

// SampleRecords returns a record file mixing absolute and relative dates.
func SampleRecords() string {
	return `- id: m1
  title: Phishing Phil
  date: last friday
  done: true
- id: m2
  title: Password Pete
  date: 2025-06-06
- id: m3
  title: Patch Patty
  date: yesterday
`
}
