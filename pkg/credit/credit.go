package credit

import "strings"

// Field is a text/URL pair. Text is empty when the field is absent.
type Field struct {
	Text string
	URL  string
}

// IsZero reports whether the field is absent.
func (f Field) IsZero() bool { return f.Text == "" }

// Attribution names the creators of a work. A single creator is a
// one-element Names slice.
type Attribution struct {
	Names []string
	URL   string
}

// IsZero reports whether no attribution was found.
func (a Attribution) IsZero() bool { return len(a.Names) == 0 }

// Multiple reports whether the attribution lists more than one name.
func (a Attribution) Multiple() bool { return len(a.Names) > 1 }

// Text joins the names with ", ".
func (a Attribution) Text() string { return strings.Join(a.Names, ", ") }

// Credit is the resolved credit for one subject and, recursively, its
// sources.
type Credit struct {
	Title   Field
	Attrib  Attribution
	License Field
	Sources []*Credit
}

// HasTitle reports whether a title was found.
func (c *Credit) HasTitle() bool { return !c.Title.IsZero() }

// HasAttrib reports whether an attribution was found.
func (c *Credit) HasAttrib() bool { return !c.Attrib.IsZero() }

// HasLicense reports whether a license or rights statement was found.
func (c *Credit) HasLicense() bool { return !c.License.IsZero() }

// Count returns the number of records in the tree rooted at c.
func (c *Credit) Count() int {
	if c == nil {
		return 0
	}
	n := 1
	for _, s := range c.Sources {
		n += s.Count()
	}
	return n
}

// Depth returns the number of source levels below c.
func (c *Credit) Depth() int {
	if c == nil {
		return 0
	}
	d := 0
	for _, s := range c.Sources {
		d = max(d, s.Depth()+1)
	}
	return d
}

// Format renders c with f. See the package-level Format.
func (c *Credit) Format(f Formatter, opts ...FormatOption) error {
	return Format(c, f, opts...)
}
