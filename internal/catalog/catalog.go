// Package catalog maps Nerd Font family names to their archive download
// URLs. The catalog is a value built once at startup, either from the
// compiled-in list of released families or from the GitHub release
// listing, and is read-only afterwards.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownFont marks a requested name that resolves to no catalog entry.
var ErrUnknownFont = errors.New("not a known Nerd Font")

// Entry is one installable font family: its canonical identifier, the
// archive URL, and an optional sha256 digest of the archive (only known
// when the catalog was fetched from the release API).
type Entry struct {
	Name   string
	URL    string
	Digest string // hex sha256 of the zip, empty when unknown
}

// Catalog is an immutable set of entries with case-insensitive lookup.
type Catalog struct {
	entries []Entry
	index   map[string]int // lowercased name -> entries offset
}

// defaultNames lists the font family zip assets of a Nerd Fonts release.
// Kept in release order (alphabetical, case-insensitive).
var defaultNames = []string{
	"0xProto", "3270", "Agave", "AnonymousPro", "Arimo", "AurulentSansMono",
	"BigBlueTerminal", "BitstreamVeraSansMono", "CascadiaCode", "CascadiaMono",
	"CodeNewRoman", "ComicShannsMono", "CommitMono", "Cousine", "D2Coding",
	"DaddyTimeMono", "DejaVuSansMono", "DepartureMono", "DroidSansMono",
	"EnvyCodeR", "FantasqueSansMono", "FiraCode", "FiraMono", "GeistMono",
	"Go-Mono", "Gohu", "Hack", "Hasklig", "HeavyData", "Hermit", "iA-Writer",
	"IBMPlexMono", "Inconsolata", "InconsolataGo", "InconsolataLGC",
	"IntelOneMono", "Iosevka", "IosevkaTerm", "IosevkaTermSlab",
	"JetBrainsMono", "Lekton", "LiberationMono", "Lilex", "MartianMono",
	"Meslo", "Monaspace", "Monofur", "Monoid", "Mononoki", "MPlus",
	"NerdFontsSymbolsOnly", "Noto", "OpenDyslexic", "Overpass", "ProFont",
	"ProggyClean", "Recursive", "RobotoMono", "ShareTechMono",
	"SourceCodePro", "SpaceMono", "Terminus", "Tinos", "Ubuntu",
	"UbuntuMono", "UbuntuSans", "VictorMono", "ZedMono",
}

// Default returns the compiled-in catalog. Archive URLs are formed by
// appending "<Name>.zip" to baseURL, which must be slash-terminated.
func Default(baseURL string) Catalog {
	entries := make([]Entry, 0, len(defaultNames))
	for _, name := range defaultNames {
		entries = append(entries, Entry{Name: name, URL: archiveURL(baseURL, name)})
	}
	return FromEntries(entries)
}

// FromEntries builds a catalog from explicit entries, keeping their order.
func FromEntries(entries []Entry) Catalog {
	c := Catalog{
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		c.index[strings.ToLower(e.Name)] = i
	}
	return c
}

// Resolve maps a requested name to its entry. Matching is exact but
// case-insensitive: "firacode" resolves to the canonical "FiraCode"
// entry. There is no fuzzy matching; any miss is an ErrUnknownFont.
func (c Catalog) Resolve(name string) (Entry, error) {
	i, ok := c.index[strings.ToLower(name)]
	if !ok {
		return Entry{}, fmt.Errorf("%q: %w", name, ErrUnknownFont)
	}
	return c.entries[i], nil
}

// Entries returns all entries in catalog order. The returned slice is a
// copy; the catalog itself stays immutable.
func (c Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Names returns all canonical font names, sorted case-insensitively.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		names = append(names, e.Name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

// Len returns the number of entries.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Rebased returns a copy of the catalog with every archive URL rebuilt
// against a mirror prefix. Digests are preserved: a mirror serves the
// same bytes or fails verification.
func (c Catalog) Rebased(baseURL string) Catalog {
	entries := c.Entries()
	for i := range entries {
		entries[i].URL = archiveURL(baseURL, entries[i].Name)
	}
	return FromEntries(entries)
}

func archiveURL(baseURL, name string) string {
	return baseURL + name + ".zip"
}
