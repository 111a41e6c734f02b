// Package credit turns authorship and licensing metadata in a triple graph
// into credit records, and renders those records through formatters.
//
// # Overview
//
// Resolution and rendering are two separate steps:
//
//	c := credit.Build(g, rdf.Resource("http://example.com/photo"))
//	if c == nil {
//	    // nothing to credit
//	}
//
//	f := text.New()
//	if err := credit.Format(c, f, credit.WithSourceDepth(2)); err != nil {
//	    return err
//	}
//	fmt.Println(f.Text())
//
// # Resolution
//
// [Build] resolves four fields for a subject, each through an ordered chain
// of predicates where the first predicate with a usable value wins:
//
//   - Title: dc:title, dcterms:title, og:title; URL from og:url or the
//     subject itself when it is an http(s) IRI
//   - Attribution: cc:attributionName / cc:attributionURL, then dc:creator,
//     dcterms:creator, then twitter:creator, then flickr_photos:by for Flickr
//     subjects
//   - License: xhv:license, dcterms:license, cc:license (named with
//     [license.Name]), else dc:rights / dcterms:rights as plain text
//   - Sources: every dc:source and dcterms:source object, built recursively
//
// Text always falls back to the URL when only a URL was found. URLs are
// accepted only with an http: or https: scheme.
//
// Build returns nil when the subject has no title, attribution or license
// and no source that resolves. Sources that resolve to nil are dropped.
//
// # Cycles
//
// Source links are followed without tracking visited subjects. A graph in
// which a work is (directly or indirectly) its own source recurses without
// end unless the caller bounds it with [Builder.MaxDepth].
//
// # Rendering
//
// [Format] picks one of eight line templates from the fields present,
// optionally translates it, splits it into tokens at the <title>, <attrib>
// and <license> placeholders, and drives a [Formatter]:
//
//	Begin
//	  AddText / AddTitle / AddAttrib / AddLicense ...
//	  BeginSources(label)
//	    BeginSource  (nested Begin ... End)  EndSource
//	    ...
//	  EndSources
//	End
//
// Sources are rendered down to the depth given with [WithSourceDepth]
// (default 1). The whole record tree is tokenized before the first
// formatter call, so a malformed template yields an error and no output.
//
// [license.Name]: github.com/matzehuels/libcredit/pkg/license.Name
package credit
