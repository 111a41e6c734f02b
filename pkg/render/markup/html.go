package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLTree implements [Tree] over [html.Node].
type HTMLTree struct{}

func (HTMLTree) CreateElement(name string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}
}

func (HTMLTree) CreateText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

func (HTMLTree) SetAttribute(n *html.Node, name, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

func (HTMLTree) AppendChild(parent, child *html.Node) { parent.AppendChild(child) }

// HTMLFormatter is a [Formatter] producing [html.Node] trees.
type HTMLFormatter struct {
	*Formatter[*html.Node]
}

// NewHTML returns a formatter producing HTML with the given element
// configuration.
func NewHTML(cfg Config) *HTMLFormatter {
	return &HTMLFormatter{New[*html.Node](HTMLTree{}, cfg)}
}

// HTML serializes the root element. It returns "" when nothing has been
// rendered.
func (f *HTMLFormatter) HTML() (string, error) {
	root, ok := f.Root()
	if !ok {
		return "", nil
	}
	var b strings.Builder
	if err := html.Render(&b, root); err != nil {
		return "", err
	}
	return b.String(), nil
}
