// Package diagram renders credit trees as Graphviz diagrams.
//
// # Overview
//
// Each rendered line becomes a box and each source an arrow from the
// record to the source's line, so a derived work reads top to bottom down
// to its originals. Lines whose title carries a URL link to it in SVG
// output.
//
// # Usage
//
//	f := diagram.New(diagram.Options{})
//	if err := credit.Format(c, f, credit.WithSourceDepth(3)); err != nil {
//		return err
//	}
//	svg, err := diagram.RenderSVG(f.DOT())
//
// # DOT Format
//
// [Formatter.DOT] produces Graphviz DOT source that can be rendered with
// [RenderSVG] or saved and processed with external Graphviz tools. The
// layout is top-to-bottom (rankdir=TB) with rounded boxes.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package diagram
