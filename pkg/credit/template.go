package credit

import (
	"fmt"
	"regexp"
)

// Source list labels, singular and plural.
const (
	SourceLabel  = "Source:"
	SourcesLabel = "Sources:"
)

type lineKey struct {
	title, attrib, license bool
}

var templates = map[lineKey]string{
	{true, true, true}:    "<title> by <attrib> (<license>).",
	{true, true, false}:   "<title> by <attrib>.",
	{true, false, true}:   "<title> (<license>).",
	{true, false, false}:  "<title>.",
	{false, true, true}:   "Credit: <attrib> (<license>).",
	{false, true, false}:  "Credit: <attrib>.",
	{false, false, true}:  "License: <license>.",
	{false, false, false}: "",
}

// Template returns the untranslated line template for the given field
// combination, or "" when no field is present.
func Template(hasTitle, hasAttrib, hasLicense bool) string {
	return templates[lineKey{hasTitle, hasAttrib, hasLicense}]
}

// Messages lists every translatable message id: the seven templates
// followed by the singular and plural source labels.
func Messages() []string {
	out := make([]string, 0, len(templates)+1)
	for _, t := range []bool{true, false} {
		for _, a := range []bool{true, false} {
			for _, l := range []bool{true, false} {
				if tmpl := Template(t, a, l); tmpl != "" {
					out = append(out, tmpl)
				}
			}
		}
	}
	return append(out, SourceLabel, SourcesLabel)
}

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenTitle
	tokenAttrib
	tokenLicense
)

type token struct {
	kind tokenKind
	text string
	url  string
}

var placeholderRe = regexp.MustCompile(`<[a-z]+>`)

// attribSeparator joins multiple attribution names.
const attribSeparator = ", "

// tokenize splits tmpl at its placeholders and binds them to c.
func tokenize(tmpl string, c *Credit) ([]token, error) {
	var out []token
	text := func(s string) {
		if s != "" {
			out = append(out, token{kind: tokenText, text: s})
		}
	}

	last := 0
	for _, loc := range placeholderRe.FindAllStringIndex(tmpl, -1) {
		text(tmpl[last:loc[0]])
		last = loc[1]

		switch ph := tmpl[loc[0]:loc[1]]; ph {
		case "<title>":
			out = append(out, token{kind: tokenTitle, text: c.Title.Text, url: c.Title.URL})
		case "<attrib>":
			for i, name := range c.Attrib.Names {
				if i > 0 {
					text(attribSeparator)
				}
				out = append(out, token{kind: tokenAttrib, text: name, url: c.Attrib.URL})
			}
		case "<license>":
			out = append(out, token{kind: tokenLicense, text: c.License.Text, url: c.License.URL})
		default:
			return nil, fmt.Errorf("%w %s in %q", ErrUnknownPlaceholder, ph, tmpl)
		}
	}
	text(tmpl[last:])
	return out, nil
}
