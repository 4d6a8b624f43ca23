package oxml

import "strings"

var (
	tagPPr    = W("pPr")
	tagPStyle = W("pStyle")
	tagR      = W("r")
	tagT      = W("t")
	tagTab    = W("tab")
	tagBr     = W("br")
	tagCr     = W("cr")

	attrVal   = W("val")
	attrSpace = Name{Space: NamespaceXML, Local: "space"}
)

// PText returns the visible text of a paragraph. Tabs and breaks become
// "\t" and "\n"; runs nested in hyperlinks or smart tags are included.
func PText(p *Element) string {
	var sb strings.Builder
	writePText(p, &sb)
	return sb.String()
}

func writePText(e *Element, sb *strings.Builder) {
	for _, child := range e.ChildElements() {
		switch child.Name {
		case tagPPr:
			// properties carry no text
		case tagT:
			sb.WriteString(child.Text())
		case tagTab:
			sb.WriteByte('\t')
		case tagBr, tagCr:
			sb.WriteByte('\n')
		default:
			writePText(child, sb)
		}
	}
}

// AddR appends a run holding text to the paragraph and returns the run.
// xml:space="preserve" is set when leading or trailing whitespace would
// otherwise be dropped by Word.
func AddR(p *Element, text string) *Element {
	r := p.NewChild(tagR)
	if text == "" {
		return r
	}
	t := r.NewChild(tagT)
	if strings.TrimSpace(text) != text {
		t.SetAttr(attrSpace, "preserve")
	}
	t.AppendChild(&CharData{Data: text})
	return r
}

// PStyle returns the paragraph style id, or "" when none is set.
func PStyle(p *Element) string {
	pPr := p.FirstChild(tagPPr)
	if pPr == nil {
		return ""
	}
	pStyle := pPr.FirstChild(tagPStyle)
	if pStyle == nil {
		return ""
	}
	val, _ := pStyle.Attr(attrVal)
	return val
}

// SetPStyle sets the paragraph style id. An empty id removes the style.
func SetPStyle(p *Element, styleID string) {
	pPr := p.FirstChild(tagPPr)
	if styleID == "" {
		if pPr != nil {
			if pStyle := pPr.FirstChild(tagPStyle); pStyle != nil {
				pPr.RemoveChild(pStyle)
			}
		}
		return
	}
	if pPr == nil {
		pPr = NewElement(tagPPr)
		// w:pPr must be the first child of w:p.
		var first Node
		if children := p.Children(); len(children) > 0 {
			first = children[0]
		}
		_ = p.InsertBefore(pPr, first)
	}
	pStyle := pPr.FirstChild(tagPStyle)
	if pStyle == nil {
		pStyle = NewElement(tagPStyle)
		// w:pStyle is the first child of w:pPr.
		var first Node
		if children := pPr.Children(); len(children) > 0 {
			first = children[0]
		}
		_ = pPr.InsertBefore(pStyle, first)
	}
	pStyle.SetAttr(attrVal, styleID)
}
