package oxml

var (
	tagDocument = W("document")
	tagBody     = W("body")
	tagP        = W("p")
	tagSectPr   = W("sectPr")
)

// DocumentBody returns the w:body child of a w:document root, or nil when
// the document has none.
func DocumentBody(root *Element) *Element {
	if root == nil || root.Name != tagDocument {
		return nil
	}
	return root.FirstChild(tagBody)
}

// Ps returns the paragraphs that are direct children of body, in document
// order.
func Ps(body *Element) []*Element {
	return body.ChildrenNamed(tagP)
}

// SectPr returns the section properties that close the body, or nil. Only a
// w:sectPr that is the last element child counts; Word requires it there.
func SectPr(body *Element) *Element {
	last := body.LastChildElement()
	if last != nil && last.Name == tagSectPr {
		return last
	}
	return nil
}

// AddP appends a new empty paragraph to body. The paragraph goes after the
// last block-level element and before a trailing w:sectPr, which must stay
// the final child.
func AddP(body *Element) *Element {
	p := NewElement(tagP)
	if sectPr := SectPr(body); sectPr != nil {
		// sectPr is a child of body, so this cannot fail.
		_ = body.InsertBefore(p, sectPr)
		return p
	}
	body.AppendChild(p)
	return p
}

// ClearContent removes all block-level content from body. Section
// properties survive so the document keeps its page setup.
func ClearContent(body *Element) {
	body.RetainChildren(func(n Node) bool {
		el, ok := n.(*Element)
		return ok && el.Name == tagSectPr
	})
}

// NewDocument returns a w:document root holding an empty body with default
// US Letter section properties.
func NewDocument() *Element {
	doc := NewElement(tagDocument)
	doc.Attrs = append(doc.Attrs,
		Attr{Name: Name{Space: NamespaceXMLNS, Local: "w"}, Prefix: "xmlns", Value: NamespaceW},
		Attr{Name: Name{Space: NamespaceXMLNS, Local: "r"}, Prefix: "xmlns", Value: NamespaceR},
	)
	sectPr := doc.NewChild(tagBody).NewChild(tagSectPr)
	pgSz := sectPr.NewChild(W("pgSz"))
	pgSz.SetAttr(W("w"), "12240")
	pgSz.SetAttr(W("h"), "15840")
	pgMar := sectPr.NewChild(W("pgMar"))
	for _, m := range []struct{ side, val string }{
		{"top", "1440"}, {"right", "1440"}, {"bottom", "1440"}, {"left", "1440"},
		{"header", "720"}, {"footer", "720"}, {"gutter", "0"},
	} {
		pgMar.SetAttr(W(m.side), m.val)
	}
	return doc
}
