package font

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// fontExtensions are the file types moved into the fonts directory.
// Everything else in an archive (license texts, readmes) is ignored.
var fontExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
}

// Installer places extracted font files into the fonts directory.
type Installer struct {
	fontsDir string
}

// NewInstaller creates an installer targeting fontsDir.
func NewInstaller(fontsDir string) *Installer {
	return &Installer{fontsDir: fontsDir}
}

// FontsDir returns the destination directory.
func (i *Installer) FontsDir() string {
	return i.fontsDir
}

// IsInstalled reports whether any font file of the given family is
// already present, judged by the "<Name>*.ttf/otf" naming convention of
// the release archives.
func (i *Installer) IsInstalled(name string) (bool, error) {
	for _, pattern := range []string{name + "*.ttf", name + "*.otf"} {
		matches, err := filepath.Glob(filepath.Join(i.fontsDir, pattern))
		if err != nil {
			return false, fmt.Errorf("glob fonts dir: %w", err)
		}
		if len(matches) > 0 {
			return true, nil
		}
	}
	return false, nil
}

// InstallFiles walks srcDir and moves every font file into the fonts
// directory, flattening any archive subdirectories. Existing files with
// the same name are overwritten. Returns the number of files placed.
func (i *Installer) InstallFiles(srcDir string) (int, error) {
	if err := os.MkdirAll(i.fontsDir, 0755); err != nil {
		return 0, fmt.Errorf("create fonts dir: %w", err)
	}

	installed := 0
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !fontExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		dest := filepath.Join(i.fontsDir, filepath.Base(path))
		if err := moveFile(path, dest); err != nil {
			return fmt.Errorf("install %s: %w", filepath.Base(path), err)
		}
		installed++
		return nil
	})
	if err != nil {
		return installed, err
	}

	return installed, nil
}

// moveFile renames src to dest, falling back to copy-and-remove when the
// temp dir and the fonts dir sit on different filesystems.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Remove(src)
}
