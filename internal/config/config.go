// Package config loads the optional gnfnt user configuration, a small
// declarative Lua file (by default ~/.config/gnfnt/gnfnt.lua). Configs run
// in a sandboxed Lua VM with a read-only `platform` table injected, so a
// single file can serve every machine a user syncs it to:
//
//	gnfnt = {
//	    fonts_dir = platform.is_macos and "~/Library/Fonts" or nil,
//	    base_url = "https://mirror.example.net/nerd-fonts/",
//	    timeout_seconds = 120,
//	    refresh_cache = true,
//	    progress = false,
//	}
//
// Every field is optional; a missing config file means defaults.
package config

import (
	"fmt"
	"net/url"
)

const (
	// DefaultBaseURL is the Nerd Fonts release download prefix; archive
	// URLs are formed by appending "<Name>.zip".
	DefaultBaseURL = "https://github.com/ryanoasis/nerd-fonts/releases/latest/download/"

	// DefaultAPIURL is the GitHub API endpoint listing the latest Nerd
	// Fonts release, used to expand the install-everything wildcard.
	DefaultAPIURL = "https://api.github.com/repos/ryanoasis/nerd-fonts/releases/latest"

	// DefaultTimeoutSeconds bounds a single archive download.
	DefaultTimeoutSeconds = 300
)

// Config holds the user-tunable settings for a gnfnt run.
type Config struct {
	FontsDir       string // destination override; empty means the platform default
	BaseURL        string // archive mirror prefix, always slash-terminated
	APIURL         string // release listing endpoint
	TimeoutSeconds int    // per-download HTTP timeout
	RefreshCache   bool   // rebuild the OS font cache after installing
	Progress       bool   // show a download progress bar
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		APIURL:         DefaultAPIURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
		RefreshCache:   true,
		Progress:       true,
	}
}

// Validate checks field values. It never modifies the config; slash
// termination of BaseURL is the parser's job.
func (c *Config) Validate() error {
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}

	for name, raw := range map[string]string{"base_url": c.BaseURL, "api_url": c.APIURL} {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%s is not a valid http(s) URL: %q", name, raw)
		}
	}

	return nil
}
