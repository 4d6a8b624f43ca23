package oxml

import (
	"fmt"
	"strings"
)

// Namespace URIs used by WordprocessingML document parts.
const (
	NamespaceW     = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NamespaceR     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	NamespaceMC    = "http://schemas.openxmlformats.org/markup-compatibility/2006"
	NamespaceXML   = "http://www.w3.org/XML/1998/namespace"
	NamespaceXMLNS = "http://www.w3.org/2000/xmlns/"
)

// nsmap maps conventional prefixes to namespace URIs. It is consulted when a
// new element is inserted into a tree that does not already bind its
// namespace.
var nsmap = map[string]string{
	// Core Word namespaces
	"w":   NamespaceW,
	"r":   NamespaceR,
	"m":   "http://schemas.openxmlformats.org/officeDocument/2006/math",
	"xml": NamespaceXML,
	// Drawing namespaces
	"wp":   "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing",
	"a":    "http://schemas.openxmlformats.org/drawingml/2006/main",
	"pic":  "http://schemas.openxmlformats.org/drawingml/2006/picture",
	"wp14": "http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing",
	"a14":  "http://schemas.microsoft.com/office/drawing/2010/main",
	// VML namespaces
	"v":   "urn:schemas-microsoft-com:vml",
	"o":   "urn:schemas-microsoft-com:office:office",
	"w10": "urn:schemas-microsoft-com:office:word",
	// Markup compatibility
	"mc": NamespaceMC,
	// Word processing shapes and canvas
	"wps": "http://schemas.microsoft.com/office/word/2010/wordprocessingShape",
	"wpc": "http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas",
	"wpg": "http://schemas.microsoft.com/office/word/2010/wordprocessingGroup",
	"wpi": "http://schemas.microsoft.com/office/word/2010/wordprocessingInk",
	// Extended Word namespaces
	"w14":    "http://schemas.microsoft.com/office/word/2010/wordml",
	"w15":    "http://schemas.microsoft.com/office/word/2012/wordml",
	"w16se":  "http://schemas.microsoft.com/office/word/2015/wordml/symex",
	"w16cid": "http://schemas.microsoft.com/office/word/2016/wordml/cid",
	"w16":    "http://schemas.microsoft.com/office/word/2018/wordml",
	"w16cex": "http://schemas.microsoft.com/office/word/2018/wordml/cex",
	"wne":    "http://schemas.microsoft.com/office/word/2006/wordml",
}

// prefixFor returns the conventional prefix for a namespace URI.
func prefixFor(uri string) (string, bool) {
	for prefix, u := range nsmap {
		if u == uri {
			return prefix, true
		}
	}
	return "", false
}

// W returns the name of a WordprocessingML element or attribute.
func W(local string) Name {
	return Name{Space: NamespaceW, Local: local}
}

// QN resolves a prefixed name such as "w:body" against the conventional
// prefix table. It panics on an unknown prefix, so it is meant for names
// written as literals in code.
func QN(qname string) Name {
	prefix, local, ok := strings.Cut(qname, ":")
	if !ok {
		return Name{Local: qname}
	}
	uri, known := nsmap[prefix]
	if !known {
		panic(fmt.Sprintf("oxml: unknown namespace prefix %q in %q", prefix, qname))
	}
	return Name{Space: uri, Local: local}
}
