// Package i18n provides translations for langsync's own user-facing
// messages.
//
// It wraps the gotext library behind a single T() function. Translations
// are embedded in the binary and loaded once at startup via Init(); an
// uninitialized package passes message ids through unchanged, so library
// code and tests never depend on the environment's locale.
package i18n

import (
	"embed"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// locales embeds the PO translation files, laid out as
// locales/{lang}/LC_MESSAGES/langsync.po.
//
//go:embed all:locales
var locales embed.FS

// domain is the gettext domain name for langsync.
const domain = "langsync"

var locale *gotext.Locale

// Init loads translations for lang, auto-detecting from the environment
// (LANGUAGE, LC_ALL, LC_MESSAGES, LANG, in GNU gettext order) when lang
// is empty. Call once at program startup.
func Init(lang string) {
	if lang == "" {
		lang = detectLanguage()
	}

	locale = gotext.NewLocaleFSWithPath(lang, locales, "locales")
	locale.AddDomain(domain)
	locale.SetDomain(domain)
}

// T translates a message id, returning it unchanged when no translation
// is available or Init was never called.
func T(msgid string) string {
	if locale == nil {
		return msgid
	}
	return locale.Get(msgid)
}

func detectLanguage() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		// LANGUAGE is a colon-separated priority list.
		if env == "LANGUAGE" {
			val, _, _ = strings.Cut(val, ":")
		}
		// Strip the encoding suffix ("de_DE.UTF-8" -> "de_DE").
		val, _, _ = strings.Cut(val, ".")
		if val == "" || val == "C" || val == "POSIX" {
			continue
		}
		return val
	}
	return "en"
}
