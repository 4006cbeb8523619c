package platform

import "path/filepath"

// NerdFontsSubdir is the directory created under the fontconfig font path
// on Linux so installed families stay grouped and easy to remove.
const NerdFontsSubdir = "NerdFonts"

// FontsDir returns the per-user font directory for the detected platform,
// rooted at the given home directory.
func FontsDir(info *Info, home string) string {
	switch {
	case info.IsWindows():
		return filepath.Join(home, "AppData", "Local", "Microsoft", "Windows", "Fonts")
	case info.IsMacOS():
		return filepath.Join(home, "Library", "Fonts")
	default:
		return filepath.Join(home, ".local", "share", "fonts", NerdFontsSubdir)
	}
}

// CacheRefreshArgv returns the command used to rebuild the OS font cache,
// or nil when the platform has no such command (Windows picks up new font
// files once applications restart).
func CacheRefreshArgv(info *Info) []string {
	switch {
	case info.IsWindows():
		return nil
	case info.IsMacOS():
		return []string{"atsutil", "databases", "-remove"}
	default:
		return []string{"fc-cache", "-f"}
	}
}
