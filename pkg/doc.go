// Package pkg provides the libraries behind the credit command and server.
//
// # Overview
//
// libcredit reads RDF metadata about a creative work (its title, creator,
// license and the works it derives from) and renders a human-readable credit
// line. The pkg directory is organized into these areas:
//
//  1. [rdf], [vocab] - Terms, an indexed triple store and the vocabularies
//  2. [credit] - Property resolution and the credit tree builder
//  3. [license], [i18n] - License names and translated message templates
//  4. [render] - Text, HTML, JSON object and Graphviz renderers
//  5. [io] - JSON, N-Triples, YAML and HTML importers
//  6. [pipeline] - Orchestration (load → build → render) with caching
//  7. [cache], [fetch], [httputil] - Cache backends and page fetching
//  8. [server] - HTTP API over the pipeline
//
// # Architecture
//
// The typical data flow:
//
//	Graph file or web page
//	         ↓
//	    [io] package (parse into an rdf.Store)
//	         ↓
//	    [credit] package (build the credit tree)
//	         ↓
//	    [render] packages (format it)
//	         ↓
//	    text/HTML/JSON/DOT/SVG output
//
// # Quick Start
//
//	doc, err := io.ReadYAML(f)
//	if err != nil {
//	    return err
//	}
//	c := credit.Build(doc.Graph, rdf.Resource("http://example.org/photo"))
//	t := text.New()
//	if err := credit.Format(c, t); err != nil {
//	    return err
//	}
//	fmt.Println(t.Text())
//
// [rdf]: github.com/matzehuels/libcredit/pkg/rdf
// [vocab]: github.com/matzehuels/libcredit/pkg/vocab
// [credit]: github.com/matzehuels/libcredit/pkg/credit
// [license]: github.com/matzehuels/libcredit/pkg/license
// [i18n]: github.com/matzehuels/libcredit/pkg/i18n
// [render]: github.com/matzehuels/libcredit/pkg/render
// [io]: github.com/matzehuels/libcredit/pkg/io
// [pipeline]: github.com/matzehuels/libcredit/pkg/pipeline
// [cache]: github.com/matzehuels/libcredit/pkg/cache
// [fetch]: github.com/matzehuels/libcredit/pkg/fetch
// [httputil]: github.com/matzehuels/libcredit/pkg/httputil
// [server]: github.com/matzehuels/libcredit/pkg/server
package pkg
