package merge

import (
	"reflect"
	"testing"

	"github.com/mcmeta/langsync/catalog"
)

func boolPtr(v bool) *bool { return &v }

func freshGerman() catalog.Record {
	return catalog.Record{
		ISOCode: "de_de",
		Native:  catalog.Native{Name: "Deutsch", Region: "Deutschland"},
		English: catalog.English{Name: "German", Region: "Germany"},
	}
}

func TestRecords_Idempotent(t *testing.T) {
	existing := freshGerman()
	merged := Records(existing, freshGerman())
	if !reflect.DeepEqual(merged, existing) {
		t.Fatalf("merging a record with itself changed it:\n got %#v\nwant %#v", merged, existing)
	}
}

func TestRecords_OverridePreserved(t *testing.T) {
	existing := freshGerman()
	existing.English.Name = "Custom"
	existing.English.OverrideName = boolPtr(true)

	merged := Records(existing, freshGerman())

	if merged.English.Name != "Custom" {
		t.Fatalf("override lost: english.name = %q, want Custom", merged.English.Name)
	}
	if merged.English.OverrideName == nil || !*merged.English.OverrideName {
		t.Fatalf("override flag cleared: %#v", merged.English)
	}
	// Only name was overridden; region still follows the fetch.
	if merged.English.Region != "Germany" {
		t.Fatalf("english.region = %q, want Germany", merged.English.Region)
	}
}

func TestRecords_PlaceholderDoesNotClobber(t *testing.T) {
	existing := freshGerman()

	fresh := freshGerman()
	fresh.English.Region = "?"

	merged := Records(existing, fresh)
	if merged.English.Region != "Germany" {
		t.Fatalf("placeholder clobbered region: %q", merged.English.Region)
	}
	if merged.English.OverrideRegion != nil {
		t.Fatalf("placeholder merge invented a flag: %#v", merged.English)
	}
}

func TestRecords_PlaceholderOverEmptyExisting(t *testing.T) {
	existing := freshGerman()
	existing.English.Region = ""

	fresh := freshGerman()
	fresh.English.Region = "?"

	merged := Records(existing, fresh)
	if merged.English.Region != "?" {
		t.Fatalf("english.region = %q, want ?", merged.English.Region)
	}
}

func TestRecords_FalseFlagCarriedOver(t *testing.T) {
	existing := freshGerman()
	existing.English.OverrideName = boolPtr(false)

	fresh := freshGerman()
	fresh.English.Name = "Deutsch (renamed upstream)"

	merged := Records(existing, fresh)

	// Flag was present but false: fresh value wins, flag presence survives.
	if merged.English.Name != "Deutsch (renamed upstream)" {
		t.Fatalf("english.name = %q, want fresh value", merged.English.Name)
	}
	if merged.English.OverrideName == nil || *merged.English.OverrideName {
		t.Fatalf("false flag not carried over as-is: %#v", merged.English)
	}
}

func TestRecords_ISOCodeAndNativeReplacedWholesale(t *testing.T) {
	existing := freshGerman()
	existing.English.OverrideName = boolPtr(true)
	existing.Native = catalog.Native{Name: "old name", Region: "old region"}
	existing.ISOCode = "de_at"

	merged := Records(existing, freshGerman())

	if merged.ISOCode != "de_de" {
		t.Fatalf("iso_code = %q, want de_de", merged.ISOCode)
	}
	if merged.Native.Name != "Deutsch" || merged.Native.Region != "Deutschland" {
		t.Fatalf("native not replaced: %#v", merged.Native)
	}
}

func TestRecords_FlagsNotAliased(t *testing.T) {
	existing := freshGerman()
	existing.English.OverrideName = boolPtr(true)

	merged := Records(existing, freshGerman())
	if merged.English.OverrideName == existing.English.OverrideName {
		t.Fatal("merged record shares an override flag pointer with the existing record")
	}
}

func TestApply(t *testing.T) {
	cat := catalog.Catalog{}

	t.Run("first encounter adopts fresh", func(t *testing.T) {
		Apply(cat, "de_de", freshGerman())
		if !reflect.DeepEqual(cat["de_de"], freshGerman()) {
			t.Fatalf("unexpected record: %#v", cat["de_de"])
		}
	})

	t.Run("subsequent encounters merge", func(t *testing.T) {
		rec := cat["de_de"]
		rec.English.Name = "Custom"
		rec.English.OverrideName = boolPtr(true)
		cat["de_de"] = rec

		Apply(cat, "de_de", freshGerman())
		if cat["de_de"].English.Name != "Custom" {
			t.Fatalf("override lost after Apply: %#v", cat["de_de"].English)
		}
	})
}
