// Package object collects rendered credits into plain Go values instead of
// text, for JSON APIs and programmatic consumers.
package object

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/libcredit/pkg/credit"
)

// Link is one rendered field.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

// Credit is one rendered line together with the fields it mentions.
type Credit struct {
	Line    string    `json:"line"`
	Title   *Link     `json:"title,omitempty"`
	Attrib  []Link    `json:"attrib,omitempty"`
	License *Link     `json:"license,omitempty"`
	Label   string    `json:"sources_label,omitempty"`
	Sources []*Credit `json:"sources,omitempty"`
}

// Formatter builds a [Credit]. Create one with [New].
type Formatter struct {
	root  *Credit
	stack []*Credit
	line  strings.Builder
	depth int
}

// New returns an empty object formatter.
func New() *Formatter { return &Formatter{} }

// Credit returns the last rendered record, or nil.
func (f *Formatter) Credit() *Credit { return f.root }

// JSON marshals the last rendered record with two-space indentation.
func (f *Formatter) JSON() ([]byte, error) {
	return json.MarshalIndent(f.root, "", "  ")
}

func (f *Formatter) current() *Credit { return f.stack[len(f.stack)-1] }

func (f *Formatter) Begin() {
	if f.depth == 0 {
		f.root = &Credit{}
		f.stack = append(f.stack[:0], f.root)
	}
	f.line.Reset()
}

func (f *Formatter) End() { f.flush() }

func (f *Formatter) BeginSources(label string) {
	f.flush()
	f.current().Label = label
	f.depth++
}

func (f *Formatter) EndSources() { f.depth-- }

func (f *Formatter) BeginSource() {
	c := &Credit{}
	parent := f.current()
	parent.Sources = append(parent.Sources, c)
	f.stack = append(f.stack, c)
}

func (f *Formatter) EndSource() { f.stack = f.stack[:len(f.stack)-1] }

func (f *Formatter) AddTitle(text, url string) {
	f.current().Title = &Link{Text: text, URL: url}
	f.line.WriteString(text)
}

func (f *Formatter) AddAttrib(text, url string) {
	c := f.current()
	c.Attrib = append(c.Attrib, Link{Text: text, URL: url})
	f.line.WriteString(text)
}

func (f *Formatter) AddLicense(text, url string) {
	f.current().License = &Link{Text: text, URL: url}
	f.line.WriteString(text)
}

func (f *Formatter) AddText(text string) { f.line.WriteString(text) }

// flush stores the pending line text on the current record. The line of
// a record ends where its sources begin.
func (f *Formatter) flush() {
	if c := f.current(); c.Line == "" {
		c.Line = f.line.String()
	}
	f.line.Reset()
}

var _ credit.Formatter = (*Formatter)(nil)
