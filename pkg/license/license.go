// Package license maps license URLs to short human-readable names.
//
// Three URL families are recognized, tried in order:
//
//   - Creative Commons licenses: http://creativecommons.org/licenses/by-sa/3.0/
//     becomes "CC BY-SA 3.0 Unported"; a jurisdiction segment replaces
//     "Unported" (".../by/3.0/au/deed.en_US" becomes "CC BY 3.0 (AU)");
//     deed and legalcode pages name the same license
//   - Creative Commons public domain tools: CC0 ("CC0 1.0") and the
//     Public Domain Mark ("public domain")
//   - Free Art License: "Free Art License 1.3", or 1.2 for the legacy
//     licence-art-libre-12 path
//
// Any other URL is returned unchanged by [Name].
package license

import (
	"regexp"
	"strings"
)

var (
	ccLicenseRe = regexp.MustCompile(
		`^https?://creativecommons\.org/licenses/([-a-z]+)/([0-9.]+)(?:/([a-z]+))?` + ccTail)
	ccPublicRe = regexp.MustCompile(
		`^https?://creativecommons\.org/publicdomain/(zero|mark)/([0-9.]+)` + ccTail)
	artLibreRe = regexp.MustCompile(
		`^https?://artlibre\.org/licence/lal(?:/([-a-z0-9_]+))?/?$`)
)

// ccTail matches what may follow a Creative Commons version or
// jurisdiction: nothing, a slash, a deed or the legal code.
const ccTail = `(?:/(?:deed\.[-a-zA-Z_]+|legalcode(?:\.[-a-zA-Z_]+)?)?)?$`

const artLibreLegacy = "licence-art-libre-12"

// Name returns the display name for a license URL, or url itself when the
// URL is not recognized.
func Name(url string) string {
	if name, ok := lookup(url); ok {
		return name
	}
	return url
}

// Known reports whether url matches one of the recognized license families.
func Known(url string) bool {
	_, ok := lookup(url)
	return ok
}

func lookup(url string) (string, bool) {
	if m := ccLicenseRe.FindStringSubmatch(url); m != nil {
		name := "CC " + strings.ToUpper(m[1]) + " " + m[2]
		if m[3] != "" && m[3] != "legalcode" {
			return name + " (" + strings.ToUpper(m[3]) + ")", true
		}
		return name + " Unported", true
	}

	if m := ccPublicRe.FindStringSubmatch(url); m != nil {
		if m[1] == "zero" {
			return "CC0 " + m[2], true
		}
		return "public domain", true
	}

	if m := artLibreRe.FindStringSubmatch(url); m != nil {
		if m[1] == artLibreLegacy {
			return "Free Art License 1.2", true
		}
		return "Free Art License 1.3", true
	}

	return "", false
}
