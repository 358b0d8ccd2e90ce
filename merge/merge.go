// Package merge implements the override-preserving merge of freshly
// fetched language records into the persisted catalog.
package merge

import (
	"github.com/mcmeta/langsync/catalog"
	"github.com/mcmeta/langsync/localename"
)

// Records combines an existing catalog record with a freshly fetched one.
//   - english.name / english.region marked with an override flag keep the
//     existing value; the flag stays set.
//   - A fresh placeholder value never replaces a known existing value.
//   - Otherwise the fresh value wins, and an override flag present on the
//     existing record (whatever its value) is carried over untouched.
//   - iso_code and native are always replaced wholesale.
//
// Fresh records come straight from a fetch and never carry override
// flags, so flags are read from the existing side only.
func Records(existing, fresh catalog.Record) catalog.Record {
	merged := fresh
	merged.English.Name, merged.English.OverrideName =
		mergeField(existing.English.Name, existing.English.OverrideName, fresh.English.Name)
	merged.English.Region, merged.English.OverrideRegion =
		mergeField(existing.English.Region, existing.English.OverrideRegion, fresh.English.Region)
	return merged
}

// Apply merges fresh into cat under key. A key seen for the first time
// adopts the fresh record unchanged.
func Apply(cat catalog.Catalog, key string, fresh catalog.Record) {
	if existing, ok := cat[key]; ok {
		cat[key] = Records(existing, fresh)
		return
	}
	cat[key] = fresh
}

func mergeField(existingVal string, existingFlag *bool, freshVal string) (string, *bool) {
	flag := cloneFlag(existingFlag)

	if existingFlag != nil && *existingFlag {
		return existingVal, flag
	}
	if freshVal == localename.Placeholder {
		if existingVal == "" {
			// Half-formed existing record; don't pin an empty value.
			return localename.Placeholder, flag
		}
		return existingVal, flag
	}
	return freshVal, flag
}

// cloneFlag copies an override flag so merged records never share
// pointers with the records they were built from.
func cloneFlag(f *bool) *bool {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
