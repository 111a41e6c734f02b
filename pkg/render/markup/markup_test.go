package markup

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/libcredit/pkg/credit"
)

func sample() *credit.Credit {
	return &credit.Credit{
		Title:   credit.Field{Text: "a title", URL: "http://src/"},
		Attrib:  credit.Attribution{Names: []string{"name"}},
		License: credit.Field{Text: "CC BY 4.0", URL: "http://cc/"},
		Sources: []*credit.Credit{{Title: credit.Field{Text: "sub"}}},
	}
}

func renderHTML(t *testing.T, c *credit.Credit, cfg Config, opts ...credit.FormatOption) string {
	t.Helper()
	f := NewHTML(cfg)
	if err := credit.Format(c, f, opts...); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	s, err := f.HTML()
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	return s
}

func TestHTML(t *testing.T) {
	tests := []struct {
		name   string
		credit *credit.Credit
		cfg    Config
		depth  int
		want   string
	}{
		{
			name:   "Defaults",
			credit: sample(),
			cfg:    DefaultConfig(),
			depth:  1,
			want: `<div><p><a href="http://src/">a title</a> by name (<a href="http://cc/">CC BY 4.0</a>).` +
				` Source:<ul><li><p>sub.</p></li></ul></p></div>`,
		},
		{
			name:   "NoSources",
			credit: sample(),
			cfg:    Config{},
			depth:  0,
			want:   `<div><p><a href="http://src/">a title</a> by name (<a href="http://cc/">CC BY 4.0</a>).</p></div>`,
		},
		{
			name:   "Classes",
			credit: &credit.Credit{Attrib: credit.Attribution{Names: []string{"Anna"}}, Sources: []*credit.Credit{{License: credit.Field{Text: "PD"}}}},
			cfg: Config{
				Root:        "section",
				RootClass:   "credit",
				AttribClass: "who",
				LabelClass:  "label",
				SourceClass: "src",
			},
			depth: 1,
			want: `<section class="credit"><p>Credit: <span class="who">Anna</span>.` +
				` <span class="label">Source:</span><ul><li class="src"><p>License: PD.</p></li></ul></p></section>`,
		},
		{
			name:   "LinkClass",
			credit: &credit.Credit{Title: credit.Field{Text: "t", URL: "http://t/"}},
			cfg:    Config{TitleClass: "title"},
			want:   `<div><p><a class="title" href="http://t/">t</a>.</p></div>`,
		},
		{
			name:   "Escaping",
			credit: &credit.Credit{Title: credit.Field{Text: "<b>&", URL: "http://t/?a=1&b=2"}},
			cfg:    DefaultConfig(),
			want:   `<div><p><a href="http://t/?a=1&amp;b=2">&lt;b&gt;&amp;</a>.</p></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderHTML(t, tt.credit, tt.cfg, credit.WithSourceDepth(tt.depth))
			if got != tt.want {
				t.Errorf("HTML() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestHTMLEmpty(t *testing.T) {
	f := NewHTML(DefaultConfig())
	if err := credit.Format(nil, f); err != nil {
		t.Fatal(err)
	}
	if s, err := f.HTML(); err != nil || s != "" {
		t.Errorf("HTML() = %q, %v; want empty", s, err)
	}
	if _, ok := f.Root(); ok {
		t.Error("Root() reported a root before rendering")
	}
}

func TestHTMLReuse(t *testing.T) {
	f := NewHTML(DefaultConfig())
	_ = credit.Format(sample(), f)
	_ = credit.Format(&credit.Credit{Title: credit.Field{Text: "second"}}, f)
	s, _ := f.HTML()
	if s != `<div><p>second.</p></div>` {
		t.Errorf("HTML() = %q", s)
	}
}

// sexpr is a Tree that builds strings like (p "text" (a[href=x] "t")).
type sexpr struct{}

type snode struct {
	name     string
	text     string
	attrs    []string
	children []*snode
}

func (sexpr) CreateElement(name string) *snode { return &snode{name: name} }
func (sexpr) CreateText(text string) *snode    { return &snode{text: text} }
func (sexpr) SetAttribute(n *snode, name, value string) {
	n.attrs = append(n.attrs, name+"="+value)
}
func (sexpr) AppendChild(parent, child *snode) { parent.children = append(parent.children, child) }

func (n *snode) String() string {
	if n.name == "" {
		return fmt.Sprintf("%q", n.text)
	}
	var b strings.Builder
	b.WriteString("(" + n.name)
	for _, a := range n.attrs {
		b.WriteString("[" + a + "]")
	}
	for _, c := range n.children {
		b.WriteString(" " + c.String())
	}
	b.WriteString(")")
	return b.String()
}

func TestGenericTree(t *testing.T) {
	f := New[*snode](sexpr{}, Config{})
	c := &credit.Credit{
		Attrib: credit.Attribution{Names: []string{"a", "b"}, URL: "http://x/"},
		Sources: []*credit.Credit{
			{Title: credit.Field{Text: "one"}},
			{Title: credit.Field{Text: "two"}},
		},
	}
	if err := credit.Format(c, f); err != nil {
		t.Fatal(err)
	}
	root, ok := f.Root()
	if !ok {
		t.Fatal("Root() not set")
	}
	want := `(div (p "Credit: " (a[href=http://x/] "a") ", " (a[href=http://x/] "b") "." " Sources:"` +
		` (ul (li (p "one" ".")) (li (p "two" ".")))))`
	if got := root.String(); got != want {
		t.Errorf("tree =\n%s\nwant\n%s", got, want)
	}
}

func TestConfigFromMap(t *testing.T) {
	cfg, err := ConfigFromMap(map[string]string{
		"Root":        "span",
		"title_class": "t",
		"line":        "",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Root != "span" || cfg.TitleClass != "t" || cfg.Line != "p" || cfg.Link != "a" {
		t.Errorf("ConfigFromMap() = %+v", cfg)
	}

	_, err = ConfigFromMap(map[string]string{"colour": "red"})
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("ConfigFromMap(colour) error = %v, want ErrUnknownKey", err)
	}
}

func TestConfigWith(t *testing.T) {
	base := Config{Root: "figure", LineClass: "credit"}
	cfg, err := base.With(map[string]string{"line_class": "c2", "link": "span"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Root != "figure" || cfg.LineClass != "c2" || cfg.Link != "span" || cfg.Sources != "ul" {
		t.Errorf("With() = %+v", cfg)
	}
	if base.LineClass != "credit" {
		t.Error("With() modified the receiver")
	}
}

func TestKeys(t *testing.T) {
	keys := Keys()
	if len(keys) != 14 || keys[0] != "attrib_class" {
		t.Errorf("Keys() = %v", keys)
	}
}
