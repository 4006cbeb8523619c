package font

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestIsInstalled(t *testing.T) {
	fontsDir := t.TempDir()
	writeFile(t, filepath.Join(fontsDir, "FiraCodeNerdFont-Regular.ttf"), "x")
	writeFile(t, filepath.Join(fontsDir, "HackNerdFont-Bold.otf"), "x")

	tests := []struct {
		name string
		want bool
	}{
		{"FiraCode", true},
		{"Hack", true},
		{"JetBrainsMono", false},
		// Prefix match is deliberate; "Fira" covers FiraCode files too.
		{"Fira", true},
	}
	installer := NewInstaller(fontsDir)
	for _, tt := range tests {
		got, err := installer.IsInstalled(tt.name)
		if err != nil {
			t.Errorf("IsInstalled(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("IsInstalled(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsInstalledMissingDir(t *testing.T) {
	installer := NewInstaller(filepath.Join(t.TempDir(), "does-not-exist"))
	got, err := installer.IsInstalled("FiraCode")
	if err != nil {
		t.Fatalf("IsInstalled: %v", err)
	}
	if got {
		t.Error("IsInstalled = true for missing fonts dir")
	}
}

func TestInstallFilesFlattensAndFilters(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "FiraCodeNerdFont-Regular.ttf"), "regular")
	writeFile(t, filepath.Join(srcDir, "variable", "FiraCodeNerdFont-Var.TTF"), "variable")
	writeFile(t, filepath.Join(srcDir, "FiraCodeNerdFont-Mono.otf"), "mono")
	writeFile(t, filepath.Join(srcDir, "LICENSE"), "license")
	writeFile(t, filepath.Join(srcDir, "readme.md"), "readme")

	fontsDir := filepath.Join(t.TempDir(), "fonts")
	installer := NewInstaller(fontsDir)
	if installer.FontsDir() != fontsDir {
		t.Errorf("FontsDir() = %q, want %q", installer.FontsDir(), fontsDir)
	}

	n, err := installer.InstallFiles(srcDir)
	if err != nil {
		t.Fatalf("InstallFiles: %v", err)
	}
	if n != 3 {
		t.Errorf("installed %d files, want 3", n)
	}

	for _, name := range []string{
		"FiraCodeNerdFont-Regular.ttf",
		"FiraCodeNerdFont-Var.TTF",
		"FiraCodeNerdFont-Mono.otf",
	} {
		if _, err := os.Stat(filepath.Join(fontsDir, name)); err != nil {
			t.Errorf("expected %s in fonts dir: %v", name, err)
		}
	}
	for _, name := range []string{"LICENSE", "readme.md"} {
		if _, err := os.Stat(filepath.Join(fontsDir, name)); !os.IsNotExist(err) {
			t.Errorf("non-font file %s leaked into fonts dir", name)
		}
	}
}

func TestInstallFilesOverwritesExisting(t *testing.T) {
	fontsDir := t.TempDir()
	writeFile(t, filepath.Join(fontsDir, "HackNerdFont-Regular.ttf"), "old version")

	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "HackNerdFont-Regular.ttf"), "new version")

	if _, err := NewInstaller(fontsDir).InstallFiles(srcDir); err != nil {
		t.Fatalf("InstallFiles: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(fontsDir, "HackNerdFont-Regular.ttf"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new version" {
		t.Errorf("installed content = %q, want %q", got, "new version")
	}
}

func TestInstallFilesEmptySource(t *testing.T) {
	installer := NewInstaller(t.TempDir())
	n, err := installer.InstallFiles(t.TempDir())
	if err != nil {
		t.Fatalf("InstallFiles: %v", err)
	}
	if n != 0 {
		t.Errorf("installed %d files from empty source, want 0", n)
	}
}
