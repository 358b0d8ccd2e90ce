// Package localename resolves game locale codes ("de_de", "pt_br") to
// English language and country names.
//
// Resolution is backed by the CLDR data shipped with golang.org/x/text:
// the language part goes through language.ParseBase (which accepts both
// two-letter and three-letter ISO 639 codes), the region part through
// language.ParseRegion (two-letter ISO 3166). Either side failing to
// resolve yields the Placeholder for that side only.
package localename

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Placeholder is the sentinel written for an English name or region
// that could not be resolved. The merge rules treat it specially: a
// placeholder never replaces a known value in the catalog.
const Placeholder = "?"

var (
	languageNames = display.English.Languages()
	regionNames   = display.English.Regions()
)

// Resolve maps a locale code to its English language and country names.
// Codes that do not split into exactly language and region parts on "_"
// resolve to (Placeholder, Placeholder). The two sides are resolved
// independently.
func Resolve(locale string) (name, region string) {
	name, region = Placeholder, Placeholder

	parts := strings.Split(locale, "_")
	if len(parts) != 2 {
		return name, region
	}

	if n, ok := Language(parts[0]); ok {
		name = n
	}
	if r, ok := Region(parts[1]); ok {
		region = r
	}
	return name, region
}

// Language looks up the English name for an ISO 639 language code,
// case-insensitively. Returns false for codes the registry does not know.
func Language(code string) (string, bool) {
	base, err := language.ParseBase(strings.ToLower(code))
	if err != nil {
		return "", false
	}
	name := languageNames.Name(base)
	if name == "" {
		return "", false
	}
	return name, true
}

// Region looks up the English country name for a two-letter ISO 3166
// region code, case-insensitively.
func Region(code string) (string, bool) {
	reg, err := language.ParseRegion(strings.ToUpper(code))
	if err != nil {
		return "", false
	}
	// CLDR also registers groupings and the ZZ "unknown region" code;
	// the catalog only wants actual countries.
	if !reg.IsCountry() {
		return "", false
	}
	name := regionNames.Name(reg)
	if name == "" {
		return "", false
	}
	return name, true
}
