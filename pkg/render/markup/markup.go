package markup

import "github.com/matzehuels/libcredit/pkg/credit"

// Tree is the document capability the formatter builds on.
type Tree[N any] interface {
	CreateElement(name string) N
	CreateText(text string) N
	SetAttribute(node N, name, value string)
	AppendChild(parent, child N)
}

// Formatter renders credits as elements of a [Tree]. A Formatter may be
// reused: each top-level record replaces the previous root.
type Formatter[N any] struct {
	tree  Tree[N]
	cfg   Config
	root  N
	stack []N
	depth int
	ok    bool
}

// New returns a formatter building nodes with tree. Empty element names in
// cfg fall back to [DefaultConfig].
func New[N any](tree Tree[N], cfg Config) *Formatter[N] {
	return &Formatter[N]{tree: tree, cfg: cfg.withDefaults()}
}

// Root returns the root element of the last rendered record. The second
// result is false when nothing has been rendered.
func (f *Formatter[N]) Root() (N, bool) { return f.root, f.ok }

func (f *Formatter[N]) Begin() {
	if f.depth == 0 {
		f.root = f.element(f.cfg.Root, f.cfg.RootClass)
		f.stack = append(f.stack[:0], f.root)
		f.ok = true
	}
	f.push(f.element(f.cfg.Line, f.cfg.LineClass))
}

func (f *Formatter[N]) End() { f.pop() }

func (f *Formatter[N]) BeginSources(label string) {
	if f.cfg.LabelClass == "" {
		f.AddText(" " + label)
	} else {
		f.AddText(" ")
		f.text(label, f.cfg.LabelClass)
	}
	f.push(f.element(f.cfg.Sources, f.cfg.SourcesClass))
	f.depth++
}

func (f *Formatter[N]) EndSources() {
	f.depth--
	f.pop()
}

func (f *Formatter[N]) BeginSource() { f.push(f.element(f.cfg.Source, f.cfg.SourceClass)) }
func (f *Formatter[N]) EndSource()   { f.pop() }

func (f *Formatter[N]) AddTitle(text, url string)   { f.field(text, url, f.cfg.TitleClass) }
func (f *Formatter[N]) AddAttrib(text, url string)  { f.field(text, url, f.cfg.AttribClass) }
func (f *Formatter[N]) AddLicense(text, url string) { f.field(text, url, f.cfg.LicenseClass) }

func (f *Formatter[N]) AddText(text string) {
	f.tree.AppendChild(f.top(), f.tree.CreateText(text))
}

func (f *Formatter[N]) field(text, url, class string) {
	if url == "" {
		f.text(text, class)
		return
	}
	a := f.element(f.cfg.Link, class)
	f.tree.SetAttribute(a, "href", url)
	f.tree.AppendChild(a, f.tree.CreateText(text))
	f.tree.AppendChild(f.top(), a)
}

// text appends plain text, wrapped in a text element when class is set.
func (f *Formatter[N]) text(text, class string) {
	if class == "" {
		f.AddText(text)
		return
	}
	span := f.element(f.cfg.Text, class)
	f.tree.AppendChild(span, f.tree.CreateText(text))
	f.tree.AppendChild(f.top(), span)
}

func (f *Formatter[N]) element(name, class string) N {
	n := f.tree.CreateElement(name)
	if class != "" {
		f.tree.SetAttribute(n, "class", class)
	}
	return n
}

func (f *Formatter[N]) push(n N) {
	f.tree.AppendChild(f.top(), n)
	f.stack = append(f.stack, n)
}

func (f *Formatter[N]) pop() { f.stack = f.stack[:len(f.stack)-1] }

func (f *Formatter[N]) top() N { return f.stack[len(f.stack)-1] }

var _ credit.Formatter = (*Formatter[any])(nil)
