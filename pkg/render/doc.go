// Package render groups the renderers that turn a credit tree into output.
//
// # Overview
//
// Every renderer implements [credit.Formatter] and is driven by
// [credit.Format]. A renderer is single-use per top-level call: Format
// emits a Begin at nesting depth 0 first, and renderers reset their state
// there, so a value may be reused for a fresh record.
//
//   - [text]: plain text, sources as an indented "* " list
//   - [markup]: a document tree over any [markup.Tree] backend, with an
//     x/net/html backend for HTML output
//   - [object]: a JSON-serializable object mirroring the rendered lines
//   - [diagram]: a Graphviz source tree (DOT and SVG)
//
// # Usage
//
//	c := credit.Build(g, subject)
//	f := text.New()
//	if err := credit.Format(c, f); err != nil {
//		return err
//	}
//	fmt.Println(f.Text())
//
// [text]: github.com/matzehuels/libcredit/pkg/render/text
// [markup]: github.com/matzehuels/libcredit/pkg/render/markup
// [markup.Tree]: github.com/matzehuels/libcredit/pkg/render/markup#Tree
// [object]: github.com/matzehuels/libcredit/pkg/render/object
// [diagram]: github.com/matzehuels/libcredit/pkg/render/diagram
// [credit.Formatter]: github.com/matzehuels/libcredit/pkg/credit#Formatter
// [credit.Format]: github.com/matzehuels/libcredit/pkg/credit#Format
package render
