// Package text renders credits as plain text.
//
// The record line comes first. Sources follow on new lines, indented four
// spaces per nesting level and prefixed with "* ":
//
//	Wild flowers by Anna (CC BY-SA 3.0 Unported). Sources:
//	    * Meadow by Bo.
//	    * Credit: Carl.
//
// URLs are dropped.
package text

import (
	"strings"

	"github.com/matzehuels/libcredit/pkg/credit"
)

const indent = "    "

// Formatter accumulates plain text. Create one with [New].
type Formatter struct {
	buf   strings.Builder
	depth int
}

// New returns an empty text formatter.
func New() *Formatter { return &Formatter{} }

// Text returns the rendered text.
func (f *Formatter) Text() string { return f.buf.String() }

func (f *Formatter) Begin() {
	if f.depth == 0 {
		f.buf.Reset()
		return
	}
	f.buf.WriteString("\n")
	f.buf.WriteString(strings.Repeat(indent, f.depth))
	f.buf.WriteString("* ")
}

func (f *Formatter) End() {}

func (f *Formatter) BeginSources(label string) {
	f.buf.WriteString(" ")
	f.buf.WriteString(label)
	f.depth++
}

func (f *Formatter) EndSources() { f.depth-- }

func (f *Formatter) BeginSource() {}
func (f *Formatter) EndSource()   {}

func (f *Formatter) AddTitle(text, _ string)   { f.buf.WriteString(text) }
func (f *Formatter) AddAttrib(text, _ string)  { f.buf.WriteString(text) }
func (f *Formatter) AddLicense(text, _ string) { f.buf.WriteString(text) }
func (f *Formatter) AddText(text string)      { f.buf.WriteString(text) }

var _ credit.Formatter = (*Formatter)(nil)
