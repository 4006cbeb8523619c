package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JoshAyersSBT/Get-Nerd-Fonts/internal/catalog"
	"github.com/JoshAyersSBT/Get-Nerd-Fonts/internal/config"
	"github.com/JoshAyersSBT/Get-Nerd-Fonts/internal/font"
	"github.com/JoshAyersSBT/Get-Nerd-Fonts/internal/platform"
	"github.com/JoshAyersSBT/Get-Nerd-Fonts/internal/testutil"
)

func TestConfirmInstallAll(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"maybe\n", false},
		{"", false}, // EOF before any answer
		{"y", true}, // EOF right after the answer
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, err := confirmInstallAll(strings.NewReader(tt.input), &out)
		if err != nil {
			t.Errorf("input %q: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("input %q: confirm = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "[y/n]") {
			t.Errorf("input %q: prompt missing [y/n]: %q", tt.input, out.String())
		}
	}
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"~", "/home/user"},
		{"~/fonts", "/home/user/fonts"},
		{"~/.local/share/fonts", "/home/user/.local/share/fonts"},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~otheruser/fonts", "~otheruser/fonts"},
	}
	for _, tt := range tests {
		if got := expandHome(tt.path, "/home/user"); got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestResolveFontsDir(t *testing.T) {
	home := testutil.SetupTestEnv(t)
	info := &platform.Info{OS: "linux", Arch: "amd64"}

	tests := []struct {
		name   string
		flag   string
		cfgDir string
		want   string
	}{
		{"platform default", "", "", filepath.Join(home, ".local", "share", "fonts", "NerdFonts")},
		{"config file wins over default", "", "~/myfonts", filepath.Join(home, "myfonts")},
		{"flag wins over config", "~/flagfonts", "~/myfonts", filepath.Join(home, "flagfonts")},
		{"absolute flag kept as-is", "/srv/fonts", "", "/srv/fonts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagFontsDir = tt.flag
			defer func() { flagFontsDir = "" }()

			cfg := config.Default()
			cfg.FontsDir = tt.cfgDir

			got, err := resolveFontsDir(cfg, info)
			if err != nil {
				t.Fatalf("resolveFontsDir: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveFontsDir = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDryRun(t *testing.T) {
	cat := catalog.FromEntries([]catalog.Entry{
		{Name: "FiraCode", URL: "https://example.test/FiraCode.zip"},
		{Name: "Hack", URL: "https://example.test/Hack.zip"},
	})

	var out bytes.Buffer
	err := dryRun(&out, cat, font.NewRequest([]string{"firacode", "NoSuchFont"}))
	if err != nil {
		t.Fatalf("dryRun: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "FiraCode") || !strings.Contains(got, "https://example.test/FiraCode.zip") {
		t.Errorf("output missing resolved entry:\n%s", got)
	}
	if !strings.Contains(got, "NoSuchFont") {
		t.Errorf("output missing unknown font:\n%s", got)
	}
}

func TestDryRunAllUnknown(t *testing.T) {
	cat := catalog.FromEntries([]catalog.Entry{
		{Name: "FiraCode", URL: "https://example.test/FiraCode.zip"},
	})

	var out bytes.Buffer
	if err := dryRun(&out, cat, font.NewRequest([]string{"Nope", "AlsoNope"})); err == nil {
		t.Error("dryRun returned nil when no font resolved")
	}
}

func TestDryRunWildcardListsCatalog(t *testing.T) {
	cat := catalog.FromEntries([]catalog.Entry{
		{Name: "FiraCode", URL: "https://example.test/FiraCode.zip"},
		{Name: "Hack", URL: "https://example.test/Hack.zip"},
	})

	var out bytes.Buffer
	if err := dryRun(&out, cat, font.NewRequest([]string{"*"})); err != nil {
		t.Fatalf("dryRun: %v", err)
	}
	for _, name := range []string{"FiraCode", "Hack"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("wildcard output missing %s:\n%s", name, out.String())
		}
	}
}

func TestPrintSummary(t *testing.T) {
	report := &font.Report{}
	report.Add(font.Outcome{Name: "FiraCode", Status: font.StatusInstalled, Files: 12})
	report.Add(font.Outcome{Name: "Hack", Status: font.StatusSkipped})
	report.Add(font.Outcome{Name: "Meslo", Status: font.StatusFailed, Err: errors.New("download: unexpected status code: 404")})

	var out bytes.Buffer
	printSummary(&out, report)

	got := out.String()
	for _, want := range []string{
		"installed (12 files)",
		"already installed",
		"failed: download: unexpected status code: 404",
		"1 installed, 1 skipped, 1 failed",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}
