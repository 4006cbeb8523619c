// Package platform detects the host OS, architecture, and Linux
// distribution, and maps them to the font-specific locations gnfnt cares
// about: the per-user fonts directory and the font-cache rebuild command.
//
// Distro detection uses gopsutil and falls back gracefully to plain
// OS/arch information when it fails; font installation never depends on
// knowing the distribution, only user configs may branch on it.
package platform

import "context"

// Linux distribution family constants, normalized from gopsutil output.
const (
	FamilyDebian  = "debian"
	FamilyRHEL    = "rhel"
	FamilyFedora  = "fedora"
	FamilySUSE    = "suse"
	FamilyArch    = "arch"
	FamilyAlpine  = "alpine"
	FamilyGentoo  = "gentoo"
	FamilyUnknown = "unknown"
)

// Info contains detected platform information.
type Info struct {
	OS       string // "linux", "darwin", "windows"
	Arch     string // normalized ("amd64", "arm64", ...)
	ArchRaw  string // original GOARCH value
	Platform string // distro ID (Linux only, e.g. "ubuntu")
	Family   string // canonical family (Linux only, e.g. "debian")
	Version  string // distro version (Linux only, e.g. "22.04")
}

// Distro contains Linux distribution details, nil on non-Linux hosts.
type Distro struct {
	ID      string
	Family  string
	Version string
}

// GetDistro returns distribution details, or nil when not on Linux or
// when distro detection failed.
func (i *Info) GetDistro() *Distro {
	if i.OS != "linux" || i.Platform == "" {
		return nil
	}
	return &Distro{ID: i.Platform, Family: i.Family, Version: i.Version}
}

// IsLinux reports whether the host is Linux.
func (i *Info) IsLinux() bool { return i.OS == "linux" }

// IsMacOS reports whether the host is macOS.
func (i *Info) IsMacOS() bool { return i.OS == "darwin" }

// IsWindows reports whether the host is Windows.
func (i *Info) IsWindows() bool { return i.OS == "windows" }

// IsAMD64 reports whether the normalized architecture is amd64.
func (i *Info) IsAMD64() bool { return i.Arch == "amd64" }

// IsARM64 reports whether the normalized architecture is arm64.
func (i *Info) IsARM64() bool { return i.Arch == "arm64" }

// IsAppleSilicon reports whether the host is macOS on arm64.
func (i *Info) IsAppleSilicon() bool { return i.OS == "darwin" && i.Arch == "arm64" }

// IsFamily reports whether the host is a Linux distribution of the given
// canonical family.
func (i *Info) IsFamily(family string) bool {
	return i.OS == "linux" && i.Family == family
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
