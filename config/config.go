// Package config — .langsync.yaml configuration file support.
//
// The file is optional: without it the tool syncs the default upstream
// endpoints into ./languages.json. Forks that mirror the manifest or
// asset repository declare their endpoints here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the root directory.
const FileName = ".langsync.yaml"

// DefaultCatalog is the catalog file written when none is configured.
const DefaultCatalog = "languages.json"

// Config is the .langsync.yaml schema. Empty fields mean "use the
// built-in default".
type Config struct {
	// ManifestURL overrides the version manifest endpoint.
	ManifestURL string `yaml:"manifest_url,omitempty"`
	// AssetRoot overrides the language asset location. Must contain a
	// {version} placeholder.
	AssetRoot string `yaml:"asset_root,omitempty"`
	// Catalog is the catalog file path, relative to the root directory.
	Catalog string `yaml:"catalog,omitempty"`
	// Exclude lists extra listing entries to skip besides the built-in
	// deprecated.json.
	Exclude []string `yaml:"exclude,omitempty"`
}

// Load reads .langsync.yaml from rootDir. An absent file yields the
// defaults; a present but malformed file is an error.
func Load(rootDir string) (*Config, error) {
	path := filepath.Join(rootDir, FileName)

	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.AssetRoot != "" && !strings.Contains(cfg.AssetRoot, "{version}") {
		return nil, fmt.Errorf("%s: asset_root must contain a {version} placeholder", path)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Catalog == "" {
		c.Catalog = DefaultCatalog
	}
}

// CatalogPath resolves the catalog location against the root directory.
func (c *Config) CatalogPath(rootDir string) string {
	if filepath.IsAbs(c.Catalog) {
		return c.Catalog
	}
	return filepath.Join(rootDir, c.Catalog)
}
