// Package io reads and writes the graphs that credits are built from.
//
// # Overview
//
// Every reader returns a [Document]: an [rdf.Store] plus the base subject
// whose dc:source names the described work. Four input formats are
// supported:
//
//   - JSON ([ReadJSON]): a flat list of triples, also written by [WriteJSON]
//   - N-Triples ([ReadNTriples]): the W3C line format, also written by
//     [WriteNTriples]
//   - YAML ([ReadYAML]): a nested, hand-writable description
//   - HTML ([ReadHTML]): metadata in a web page's meta and link tags
//
// [Import] opens a file and picks the reader from an explicit format name
// or from the file extension; [Read] does the same for any io.Reader.
// A base passed to [Read] fills in for JSON and YAML input that declares
// none; a declared base wins.
//
// # JSON Format
//
//	{
//	  "base": "http://example.org/page",
//	  "triples": [
//	    {"s": "http://example.org/photo", "p": "http://purl.org/dc/elements/1.1/title", "o": "Wild flowers"},
//	    {"s": "http://example.org/photo", "p": "http://creativecommons.org/ns#license",
//	     "o": "http://creativecommons.org/licenses/by/4.0/", "type": "uri"},
//	    {"s": "_:anna", "p": "http://www.w3.org/2000/01/rdf-schema#label", "o": "Anna", "lang": "sv"}
//	  ]
//	}
//
// Subjects starting with "_:" are blank nodes, the empty subject is the
// document base. The object type is "literal" (default), "uri" or
// "bnode".
//
// # YAML Format
//
//	prefixes:
//	  ex: http://example.org/
//	subjects:
//	  ex:photo:
//	    dc:title: Wild flowers
//	    dc:creator:
//	      seq: [Anna, Bo]
//	    cc:license: http://creativecommons.org/licenses/by/4.0/
//	    dc:source:
//	      dc:title: Meadow
//	      dc:creator: {literal: "http://not-a-link.example/"}
//
// Predicates and subjects may use the prefixes declared in the document or
// any of the well-known ones (dc, dcterms, cc, xhv, og, twitter, rdf,
// rdfs, flickr_photos). Values written as <iri> or <prefix:name> are IRIs,
// as are strings beginning with http://, https:// or urn:; "_:x" is a blank
// node and "<>" the document. Other strings are literals. Nested maps
// become blank nodes labelled by their position in the input; seq, bag and
// alt maps become RDF containers.
//
// # HTML
//
// [ReadHTML] maps og:, twitter:, dc., dcterms., cc: and flickr_photos:
// meta tags onto their vocabularies, rel="license" links onto
// xhv:license, the canonical link onto og:url and the page title onto
// dc:title when no other title is present. The page becomes the document's
// source.
package io
