package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// releaseAsset is the subset of a GitHub release asset gnfnt reads.
type releaseAsset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
	Digest      string `json:"digest"` // "sha256:<hex>", may be empty
}

// release is the subset of the GitHub release payload gnfnt reads.
type release struct {
	TagName string         `json:"tag_name"`
	Assets  []releaseAsset `json:"assets"`
}

// FetchLatest retrieves the latest Nerd Fonts release from the GitHub API
// and returns a catalog of its zip assets. This is how the wildcard
// request learns the full set of installable families, and it also picks
// up per-archive sha256 digests when the API provides them.
func FetchLatest(ctx context.Context, client *http.Client, apiURL string) (Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return Catalog{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return Catalog{}, fmt.Errorf("fetch release listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Catalog{}, fmt.Errorf("fetch release listing: unexpected status code: %d", resp.StatusCode)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return Catalog{}, fmt.Errorf("decode release listing: %w", err)
	}

	var entries []Entry
	for _, asset := range rel.Assets {
		name, ok := strings.CutSuffix(asset.Name, ".zip")
		if !ok {
			continue // tar.xz variants, checksum files, etc.
		}
		// Only sha256 digests are usable; other algorithms are ignored.
		var digest string
		if rest, ok := strings.CutPrefix(asset.Digest, "sha256:"); ok {
			digest = rest
		}
		entries = append(entries, Entry{
			Name:   name,
			URL:    asset.DownloadURL,
			Digest: digest,
		})
	}

	if len(entries) == 0 {
		return Catalog{}, fmt.Errorf("release %s lists no font archives", rel.TagName)
	}

	return FromEntries(entries), nil
}
