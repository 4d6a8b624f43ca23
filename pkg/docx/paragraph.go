package docx

import "github.com/benjaminschreck/go-docx/pkg/docx/oxml"

// Paragraph is a view over a single w:p element.
type Paragraph struct {
	element *oxml.Element
}

func newParagraph(element *oxml.Element) *Paragraph {
	return &Paragraph{element: element}
}

// Element returns the underlying w:p element.
func (p *Paragraph) Element() *oxml.Element {
	return p.element
}

// Text returns the paragraph's text.
func (p *Paragraph) Text() string {
	return oxml.PText(p.element)
}

// AddText appends a run containing text.
func (p *Paragraph) AddText(text string) *Paragraph {
	oxml.AddR(p.element, text)
	return p
}

// Style returns the paragraph style id, or "" for the default style.
func (p *Paragraph) Style() string {
	return oxml.PStyle(p.element)
}

// SetStyle sets the paragraph style id. An empty id resets to the default.
func (p *Paragraph) SetStyle(styleID string) *Paragraph {
	oxml.SetPStyle(p.element, styleID)
	return p
}
