// Package testutil provides shared test helpers for setting up content directories.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lunde/raido/internal/storage"
)

// TestContent creates a temporary content directory with a storage.Provider.
func TestContent(t *testing.T) (string, storage.Provider) {
	t.Helper()
	contentDir := t.TempDir()
	store, err := storage.NewFS(contentDir)
	if err != nil {
		t.Fatal(err)
	}
	return contentDir, store
}

// WriteFile writes a file under the content directory, creating parent
// directories as needed.
func WriteFile(t *testing.T, contentDir, rel, content string) {
	t.Helper()
	full := filepath.Join(contentDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
