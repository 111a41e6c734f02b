// Package vocab lists the predicate IRIs the credit resolver understands.
//
// Namespaces follow the vocabularies found in published media metadata:
// Dublin Core elements and terms, ccREL, the XHTML vocabulary, Open Graph,
// and the Twitter and Flickr card prefixes (which are bare schemes rather
// than HTTP namespaces).
package vocab

import "strconv"

// Namespaces.
const (
	RDF     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS    = "http://www.w3.org/2000/01/rdf-schema#"
	DC      = "http://purl.org/dc/elements/1.1/"
	DCTerms = "http://purl.org/dc/terms/"
	CC      = "http://creativecommons.org/ns#"
	XHV     = "http://www.w3.org/1999/xhtml/vocab#"
	OG      = "http://ogp.me/ns#"
	Twitter = "twitter:"
	Flickr  = "flickr_photos:"
)

// RDF core.
const (
	RDFType  = RDF + "type"
	RDFValue = RDF + "value"
	RDFSeq   = RDF + "Seq"
	RDFBag   = RDF + "Bag"
	RDFAlt   = RDF + "Alt"
	// RDFMemberPrefix is followed by a 1-based index: rdf:_1, rdf:_2, ...
	RDFMemberPrefix = RDF + "_"

	RDFSLabel = RDFS + "label"
)

// Dublin Core.
const (
	DCTitle   = DC + "title"
	DCCreator = DC + "creator"
	DCRights  = DC + "rights"
	DCSource  = DC + "source"

	DCTermsTitle   = DCTerms + "title"
	DCTermsCreator = DCTerms + "creator"
	DCTermsLicense = DCTerms + "license"
	DCTermsRights  = DCTerms + "rights"
	DCTermsSource  = DCTerms + "source"
)

// ccREL, XHTML, Open Graph and platform prefixes.
const (
	CCAttributionName = CC + "attributionName"
	CCAttributionURL  = CC + "attributionURL"
	CCLicense         = CC + "license"

	XHVLicense = XHV + "license"

	OGTitle = OG + "title"
	OGURL   = OG + "url"

	TwitterCreator = Twitter + "creator"
	TwitterTitle   = Twitter + "title"

	FlickrBy = Flickr + "by"
)

// Prefixes maps the conventional short prefixes to namespaces. It is used by
// importers that accept CURIEs.
var Prefixes = map[string]string{
	"rdf":           RDF,
	"rdfs":          RDFS,
	"dc":            DC,
	"dcterms":       DCTerms,
	"cc":            CC,
	"xhv":           XHV,
	"og":            OG,
	"twitter":       Twitter,
	"flickr_photos": Flickr,
}

// Member returns the container membership predicate for 1-based index n.
func Member(n int) string {
	return RDFMemberPrefix + strconv.Itoa(n)
}
