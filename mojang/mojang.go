// Package mojang fetches Minecraft version and language asset data.
//
// Two upstream services are involved: Mojang's piston-meta version
// manifest, which names the latest stable release, and the
// minecraft-assets repository, which serves the per-version language
// files plus a _list.json index of them. Language files are flat JSON
// objects with thousands of translation keys; only the three
// language.* metadata fields matter here, so they are plucked with
// gjson instead of decoding the whole document.
package mojang

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// DefaultManifestURL is Mojang's version manifest endpoint.
	DefaultManifestURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"

	// DefaultAssetRoot locates the language files of one version;
	// {version} is substituted per request.
	DefaultAssetRoot = "https://raw.githubusercontent.com/InventivetalentDev/minecraft-assets/refs/heads/{version}/assets/minecraft/lang/"

	// listingFile is the per-version index of available language files.
	listingFile = "_list.json"
)

// LangInfo is the raw metadata triple parsed from one language file.
type LangInfo struct {
	Code   string // language.code, e.g. "de_de"
	Name   string // language.name, native spelling
	Region string // language.region, native spelling
}

// Client talks to the version manifest and the language asset repository.
// The zero value is not usable; construct with NewClient and adjust
// fields before the first request if needed.
type Client struct {
	ManifestURL string
	AssetRoot   string // URL template containing {version}
	HTTPClient  *http.Client
	// Exclude lists listing entries to skip on top of the .json suffix
	// filter. Upstream keeps a deprecated.json stub in every version.
	Exclude []string
}

// NewClient returns a client pointed at the default upstream endpoints.
func NewClient() *Client {
	return &Client{
		ManifestURL: DefaultManifestURL,
		AssetRoot:   DefaultAssetRoot,
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		Exclude:     []string{"deprecated.json"},
	}
}

// LatestRelease asks the version manifest for the current stable
// release id.
func (c *Client) LatestRelease(ctx context.Context) (string, error) {
	body, err := c.get(ctx, c.ManifestURL)
	if err != nil {
		return "", fmt.Errorf("fetching version manifest: %w", err)
	}

	release := gjson.GetBytes(body, "latest.release")
	if release.String() == "" {
		return "", fmt.Errorf("version manifest has no latest.release field")
	}
	return release.String(), nil
}

// LangFiles returns the language file names available for a version, in
// listing order, keeping only .json entries and dropping excluded names.
func (c *Client) LangFiles(ctx context.Context, version string) ([]string, error) {
	url := c.assetURL(version, listingFile)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching language file listing for %s: %w", version, err)
	}

	list := gjson.GetBytes(body, "files")
	if !list.IsArray() {
		return nil, fmt.Errorf("listing at %s has no files array", url)
	}

	var files []string
	for _, entry := range list.Array() {
		name := entry.String()
		if !strings.HasSuffix(name, ".json") || c.excluded(name) {
			continue
		}
		files = append(files, name)
	}
	return files, nil
}

// FetchLang downloads one language file and plucks the metadata fields
// out of it. All three fields must be present and non-empty.
func (c *Client) FetchLang(ctx context.Context, name, version string) (LangInfo, error) {
	body, err := c.get(ctx, c.assetURL(version, name))
	if err != nil {
		return LangInfo{}, fmt.Errorf("fetching %s: %w", name, err)
	}

	info := LangInfo{
		Code:   gjson.GetBytes(body, `language\.code`).String(),
		Name:   gjson.GetBytes(body, `language\.name`).String(),
		Region: gjson.GetBytes(body, `language\.region`).String(),
	}
	if info.Code == "" || info.Name == "" || info.Region == "" {
		return LangInfo{}, fmt.Errorf("%s is missing language metadata fields", name)
	}
	return info, nil
}

func (c *Client) assetURL(version, name string) string {
	return strings.ReplaceAll(c.AssetRoot, "{version}", version) + name
}

func (c *Client) excluded(name string) bool {
	for _, e := range c.Exclude {
		if name == e {
			return true
		}
	}
	return false
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}
	return body, nil
}
