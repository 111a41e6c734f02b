package diagram

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/libcredit/pkg/credit"
)

// Options configures diagram generation.
type Options struct {
	// Links adds the title URL of each line as a node hyperlink.
	Links bool

	// Labels writes the source-list label on the arrows.
	Labels bool
}

type node struct {
	label strings.Builder
	url   string
	// sources is the label of the node's source list.
	sources string
}

type edge struct{ from, to int }

// Formatter collects a credit tree as graph nodes and edges.
type Formatter struct {
	opts  Options
	nodes []*node
	edges []edge
	stack []int
	depth int
}

// New returns an empty diagram formatter.
func New(opts Options) *Formatter { return &Formatter{opts: opts} }

func (f *Formatter) top() *node { return f.nodes[f.stack[len(f.stack)-1]] }

func (f *Formatter) Begin() {
	if f.depth == 0 {
		f.nodes, f.edges, f.stack = nil, nil, nil
	}
	id := len(f.nodes)
	f.nodes = append(f.nodes, &node{})
	if len(f.stack) > 0 {
		f.edges = append(f.edges, edge{from: f.stack[len(f.stack)-1], to: id})
	}
	f.stack = append(f.stack, id)
}

func (f *Formatter) End() { f.stack = f.stack[:len(f.stack)-1] }

func (f *Formatter) BeginSources(label string) {
	f.top().sources = label
	f.depth++
}

func (f *Formatter) EndSources() { f.depth-- }

func (f *Formatter) BeginSource() {}
func (f *Formatter) EndSource()   {}

func (f *Formatter) AddTitle(text, url string) {
	n := f.top()
	n.label.WriteString(text)
	if n.url == "" {
		n.url = url
	}
}

func (f *Formatter) AddAttrib(text, _ string)  { f.top().label.WriteString(text) }
func (f *Formatter) AddLicense(text, _ string) { f.top().label.WriteString(text) }
func (f *Formatter) AddText(text string)       { f.top().label.WriteString(text) }

// Len returns the number of lines collected.
func (f *Formatter) Len() int { return len(f.nodes) }

// DOT returns the collected tree as Graphviz DOT source. The resulting
// string can be rendered using [RenderSVG].
func (f *Formatter) DOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph credit {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for i, n := range f.nodes {
		attrs := []string{fmt.Sprintf("label=%q", n.label.String())}
		if f.opts.Links && n.url != "" {
			attrs = append(attrs, fmt.Sprintf("URL=%q", n.url), `target="_blank"`)
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(i), strings.Join(attrs, ", "))
	}

	if len(f.edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range f.edges {
		if label := f.nodes[e.from].sources; f.opts.Labels && label != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", nodeID(e.from), nodeID(e.to), label)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(e.from), nodeID(e.to))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return "c" + strconv.Itoa(i) }

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return RenderSVGContext(context.Background(), dot)
}

// RenderSVGContext is like [RenderSVG] with a caller-supplied context.
func RenderSVGContext(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz point-sized svg tag with one that
// scales from a zero-origin viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

var _ credit.Formatter = (*Formatter)(nil)
