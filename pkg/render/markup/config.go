package markup

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrUnknownKey is returned by [ConfigFromMap] for keys it does not
// recognize.
var ErrUnknownKey = errors.New("unknown markup key")

// Config selects element names and class attributes for each structural
// role. Empty element names fall back to the defaults; empty classes are
// omitted.
type Config struct {
	Root    string `toml:"root" json:"root,omitempty"`
	Line    string `toml:"line" json:"line,omitempty"`
	Sources string `toml:"sources" json:"sources,omitempty"`
	Source  string `toml:"source" json:"source,omitempty"`
	Link    string `toml:"link" json:"link,omitempty"`
	Text    string `toml:"text" json:"text,omitempty"`

	RootClass    string `toml:"root_class" json:"root_class,omitempty"`
	LineClass    string `toml:"line_class" json:"line_class,omitempty"`
	SourcesClass string `toml:"sources_class" json:"sources_class,omitempty"`
	SourceClass  string `toml:"source_class" json:"source_class,omitempty"`
	TitleClass   string `toml:"title_class" json:"title_class,omitempty"`
	AttribClass  string `toml:"attrib_class" json:"attrib_class,omitempty"`
	LicenseClass string `toml:"license_class" json:"license_class,omitempty"`
	LabelClass   string `toml:"label_class" json:"label_class,omitempty"`
}

// DefaultConfig returns the element names used when none are configured.
func DefaultConfig() Config {
	return Config{
		Root:    "div",
		Line:    "p",
		Sources: "ul",
		Source:  "li",
		Link:    "a",
		Text:    "span",
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	c.Root = cmp.Or(c.Root, d.Root)
	c.Line = cmp.Or(c.Line, d.Line)
	c.Sources = cmp.Or(c.Sources, d.Sources)
	c.Source = cmp.Or(c.Source, d.Source)
	c.Link = cmp.Or(c.Link, d.Link)
	c.Text = cmp.Or(c.Text, d.Text)
	return c
}

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"root":          &c.Root,
		"line":          &c.Line,
		"sources":       &c.Sources,
		"source":        &c.Source,
		"link":          &c.Link,
		"text":          &c.Text,
		"root_class":    &c.RootClass,
		"line_class":    &c.LineClass,
		"sources_class": &c.SourcesClass,
		"source_class":  &c.SourceClass,
		"title_class":   &c.TitleClass,
		"attrib_class":  &c.AttribClass,
		"license_class": &c.LicenseClass,
		"label_class":   &c.LabelClass,
	}
}

// Keys lists the keys accepted by [ConfigFromMap], sorted.
func Keys() []string {
	var c Config
	return slices.Sorted(maps.Keys(c.fields()))
}

// ConfigFromMap applies m on top of [DefaultConfig]. Keys are matched
// case-insensitively; an unknown key yields an error wrapping
// [ErrUnknownKey].
func ConfigFromMap(m map[string]string) (Config, error) {
	return DefaultConfig().With(m)
}

// With returns a copy of c with the keys in m applied, as in
// [ConfigFromMap].
func (c Config) With(m map[string]string) (Config, error) {
	fields := c.fields()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		p, ok := fields[strings.ToLower(k)]
		if !ok {
			return Config{}, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownKey, k, strings.Join(Keys(), ", "))
		}
		*p = m[k]
	}
	return c.withDefaults(), nil
}
