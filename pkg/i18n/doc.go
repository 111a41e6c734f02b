// Package i18n provides the translation capability used when composing
// credit lines, and TOML message catalogs that implement it.
//
// # Translation API
//
// Lookups are built fluently and resolved with Fetch:
//
//	label := tr.Translate("Source:").
//	    OnDomain("libcredit").
//	    IfPlural(len(sources), "Sources:").
//	    Fetch()
//
// A [Translation] with no catalog behind it returns the message id, or the
// plural id when a plural count other than one was given, so callers can
// treat "no translator" and "untranslated message" the same way.
//
// # Catalogs
//
// A catalog is a TOML file holding one language for one domain:
//
//	language = "sv"
//	domain = "libcredit"
//	plural = "n != 1"
//
//	[[messages]]
//	id = "<title> by <attrib>."
//	str = "<title> av <attrib>."
//
//	[[messages]]
//	id = "Source:"
//	id_plural = "Sources:"
//	str_plural = ["Källa:", "Källor:"]
//
// Supported plural rules are "n != 1" (the default), "n > 1" and "0"
// (a single form). Catalogs shipped with the module are embedded and
// available through [Load]; others can be read with [LoadFile] or [LoadDir].
package i18n
