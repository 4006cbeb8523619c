// Package testutil provides helpers for testing gnfnt in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestEnv points HOME and the XDG config dir at a fresh temp
// directory so tests never read the developer's real config or write
// into their fonts directory. It returns the fake home path; cleanup is
// handled by t.TempDir.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))

	for _, dir := range []string{
		filepath.Join(home, ".config", "gnfnt"),
		filepath.Join(home, ".local", "share", "fonts"),
	} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}

	return home
}
