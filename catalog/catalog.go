// Package catalog implements reading and writing of the language catalog:
// the persisted JSON mapping of locale key -> language record.
//
// The file format is:
//
//	{
//	    "de_de": {
//	        "iso_code": "de_de",
//	        "native": { "name": "Deutsch", "region": "Deutschland" },
//	        "english": { "name": "German", "region": "Germany" }
//	    }
//	}
//
// English name/region may additionally carry "override_name" /
// "override_region" markers set by hand; the merge logic keeps marked
// values across syncs. Native names contain non-ASCII text and are
// written literally, not escaped.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Native holds the name and region as spelled in the language itself.
type Native struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}

// English holds the English name and region plus the manual override
// markers. The markers are pointers because their presence in the file
// is meaningful to the merge rules, not just their value.
type English struct {
	Name           string `json:"name"`
	Region         string `json:"region"`
	OverrideName   *bool  `json:"override_name,omitempty"`
	OverrideRegion *bool  `json:"override_region,omitempty"`
}

// Record is the full metadata for one locale key.
type Record struct {
	ISOCode string  `json:"iso_code"`
	Native  Native  `json:"native"`
	English English `json:"english"`
}

// Catalog maps locale key (lang file base name, e.g. "de_de") to its record.
type Catalog map[string]Record

// Load reads a catalog file. A missing file is not an error: syncing
// into a fresh working directory starts from an empty catalog.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Catalog{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cat == nil {
		cat = Catalog{}
	}
	return cat, nil
}

// Save writes the whole catalog in one go, pretty-printed with 2-space
// indentation. Keys come out sorted (encoding/json map behavior), so
// the file diffs cleanly between runs.
func Save(path string, cat Catalog) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cat); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
