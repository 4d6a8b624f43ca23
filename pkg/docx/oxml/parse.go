package oxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse builds an element tree from a serialized XML document and returns
// its root element.
//
// Parsing is strict: end tags must match, there must be exactly one root
// element, every prefix must be declared and no text may appear outside the
// root. The XML declaration and any DOCTYPE are not kept; top-level comments
// and processing instructions are.
func Parse(data []byte) (*Element, error) {
	src := bytes.TrimPrefix(data, utf8BOM)
	p := &parser{
		src: src,
		d:   xml.NewDecoder(bytes.NewReader(src)),
	}
	p.d.Strict = true
	return p.parse()
}

type parser struct {
	src    []byte
	d      *xml.Decoder
	stack  []*Element
	root   *Element
	prolog []Node
	epilog []Node
}

func (p *parser) parse() (*Element, error) {
	for {
		start := p.d.InputOffset()
		tok, err := p.d.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, p.wrap(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if p.root != nil && len(p.stack) == 0 {
				return nil, p.errorf("multiple root elements: <%s>", rawName(t.Name))
			}
			el, err := p.startElement(t, p.src[start:p.d.InputOffset()])
			if err != nil {
				return nil, err
			}
			if p.root == nil {
				p.root = el
			}
			p.stack = append(p.stack, el)
		case xml.EndElement:
			if len(p.stack) == 0 {
				return nil, p.errorf("unexpected end element </%s>", rawName(t.Name))
			}
			top := p.stack[len(p.stack)-1]
			if got := rawName(t.Name); got != qualifiedName(top.Prefix, top.Name.Local) {
				return nil, p.errorf("element <%s> closed by </%s>", qualifiedName(top.Prefix, top.Name.Local), got)
			}
			p.stack = p.stack[:len(p.stack)-1]
		case xml.CharData:
			if len(p.stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, p.errorf("text outside the root element")
				}
				continue
			}
			p.text(string(t))
		case xml.Comment:
			p.misc(&Comment{Data: string(t)})
		case xml.ProcInst:
			if t.Target == "xml" {
				if p.root != nil || len(p.prolog) > 0 {
					return nil, p.errorf("XML declaration is only allowed at the start of the document")
				}
				continue
			}
			p.misc(&ProcInst{Target: t.Target, Inst: string(t.Inst)})
		case xml.Directive:
			if p.root != nil {
				return nil, p.errorf("unexpected directive <!%s>", string(t))
			}
		}
	}

	if len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		return nil, p.errorf("unexpected end of input: element <%s> is not closed", qualifiedName(top.Prefix, top.Name.Local))
	}
	if p.root == nil {
		return nil, p.errorf("no root element")
	}
	p.root.prolog = p.prolog
	p.root.epilog = p.epilog
	return p.root, nil
}

func (p *parser) startElement(t xml.StartElement, raw []byte) (*Element, error) {
	if values := attrValues(raw); len(values) == len(t.Attr) {
		for i := range t.Attr {
			t.Attr[i].Value = values[i]
		}
	}
	el := &Element{
		Prefix: t.Name.Space,
		Name:   Name{Local: t.Name.Local},
		Attrs:  make([]Attr, 0, len(t.Attr)),
	}
	if len(p.stack) > 0 {
		p.stack[len(p.stack)-1].appendParsed(el)
	}

	// Declarations first, so that the element's own prefix and its
	// attributes can resolve against them.
	for _, a := range t.Attr {
		switch {
		case a.Name.Space == "xmlns":
			el.Attrs = append(el.Attrs, Attr{
				Name:   Name{Space: NamespaceXMLNS, Local: a.Name.Local},
				Prefix: "xmlns",
				Value:  a.Value,
			})
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			el.Attrs = append(el.Attrs, Attr{
				Name:  Name{Space: NamespaceXMLNS, Local: "xmlns"},
				Value: a.Value,
			})
		default:
			el.Attrs = append(el.Attrs, Attr{
				Name:   Name{Local: a.Name.Local},
				Prefix: a.Name.Space,
				Value:  a.Value,
			})
		}
	}

	uri, ok := el.LookupNamespace(el.Prefix)
	if !ok {
		return nil, p.errorf("undeclared namespace prefix %q on element <%s>", el.Prefix, rawName(t.Name))
	}
	el.Name.Space = uri

	seen := make(map[Name]bool, len(el.Attrs))
	for i := range el.Attrs {
		a := &el.Attrs[i]
		if a.IsNamespaceDecl() {
			continue
		}
		if a.Prefix != "" {
			uri, ok := el.LookupNamespace(a.Prefix)
			if !ok {
				return nil, p.errorf("undeclared namespace prefix %q on attribute %s:%s", a.Prefix, a.Prefix, a.Name.Local)
			}
			a.Name.Space = uri
		}
		if seen[a.Name] {
			return nil, p.errorf("duplicate attribute %s on element <%s>", qualifiedName(a.Prefix, a.Name.Local), rawName(t.Name))
		}
		seen[a.Name] = true
	}
	return el, nil
}

func (p *parser) text(data string) {
	top := p.stack[len(p.stack)-1]
	if n := len(top.children); n > 0 {
		if last, ok := top.children[n-1].(*CharData); ok {
			last.Data += data
			return
		}
	}
	top.appendParsed(&CharData{Data: data})
}

func (p *parser) misc(n Node) {
	switch {
	case len(p.stack) > 0:
		p.stack[len(p.stack)-1].appendParsed(n)
	case p.root == nil:
		p.prolog = append(p.prolog, n)
	default:
		p.epilog = append(p.epilog, n)
	}
}

func (p *parser) errorf(format string, args ...interface{}) error {
	line, column := p.d.InputPos()
	return &ParseError{Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) wrap(err error) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ParseError{Line: syntaxErr.Line, Message: syntaxErr.Msg, Cause: err}
	}
	line, column := p.d.InputPos()
	return &ParseError{Line: line, Column: column, Message: err.Error(), Cause: err}
}

// attrValues extracts the attribute values of a start tag from its source
// text. Literal tabs and line breaks become spaces, as attribute-value
// normalization requires, while character references such as &#9; keep the
// character they name. The decoder cannot tell the two apart once the value
// is decoded.
func attrValues(raw []byte) []string {
	var values []string
	for i := 0; i < len(raw); i++ {
		if raw[i] != '=' {
			continue
		}
		j := i + 1
		for j < len(raw) && isSpace(raw[j]) {
			j++
		}
		if j >= len(raw) || (raw[j] != '"' && raw[j] != '\'') {
			return nil
		}
		end := bytes.IndexByte(raw[j+1:], raw[j])
		if end < 0 {
			return nil
		}
		values = append(values, normalizeAttr(raw[j+1:j+1+end]))
		i = j + 1 + end
	}
	return values
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func normalizeAttr(raw []byte) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch c {
		case '\r':
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			sb.WriteByte(' ')
		case '\t', '\n':
			sb.WriteByte(' ')
		case '&':
			end := bytes.IndexByte(raw[i:], ';')
			if end < 0 {
				sb.WriteByte(c)
				continue
			}
			if r, ok := entity(string(raw[i+1 : i+end])); ok {
				sb.WriteString(r)
				i += end
				continue
			}
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func entity(name string) (string, bool) {
	switch name {
	case "lt":
		return "<", true
	case "gt":
		return ">", true
	case "amp":
		return "&", true
	case "apos":
		return "'", true
	case "quot":
		return `"`, true
	}
	if !strings.HasPrefix(name, "#") {
		return "", false
	}
	var (
		n   uint64
		err error
	)
	if strings.HasPrefix(name, "#x") {
		n, err = strconv.ParseUint(name[2:], 16, 32)
	} else {
		n, err = strconv.ParseUint(name[1:], 10, 32)
	}
	if err != nil || !utf8.ValidRune(rune(n)) {
		return "", false
	}
	return string(rune(n)), true
}

func rawName(n xml.Name) string {
	return qualifiedName(n.Space, n.Local)
}

func qualifiedName(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}
