package docx

import "github.com/benjaminschreck/go-docx/pkg/docx/oxml"

// Body is a view over a w:body element. It does not own the element and
// caches nothing: every call reads or writes the live tree, so changes made
// through one Body are visible through every other Body on the same element.
type Body struct {
	element *oxml.Element
}

func newBody(element *oxml.Element) *Body {
	return &Body{element: element}
}

// Element returns the underlying w:body element.
func (b *Body) Element() *oxml.Element {
	return b.element
}

// AddParagraph appends a new empty paragraph after the existing content and
// returns it.
func (b *Body) AddParagraph() *Paragraph {
	return newParagraph(oxml.AddP(b.element))
}

// Paragraphs returns the body's paragraphs in document order. The slice is a
// snapshot: later changes to the body do not alter it. It is empty, not nil,
// for a body without paragraphs.
func (b *Body) Paragraphs() []*Paragraph {
	ps := oxml.Ps(b.element)
	paragraphs := make([]*Paragraph, len(ps))
	for i, p := range ps {
		paragraphs[i] = newParagraph(p)
	}
	return paragraphs
}

// ClearContent removes the body's content, keeping the section properties,
// and returns b so calls can be chained.
func (b *Body) ClearContent() *Body {
	oxml.ClearContent(b.element)
	return b
}
