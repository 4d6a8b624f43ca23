package oxml

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// RenderOptions controls how a tree is serialized.
type RenderOptions struct {
	// Encoding names the declared output encoding. Only UTF-8 is supported.
	// An empty encoding omits it from the XML declaration.
	Encoding string
	// PrettyPrint indents element-only content. Mixed content is never
	// reindented, and existing whitespace nodes are written as they are.
	PrettyPrint bool
	// Standalone adds standalone='yes' to the XML declaration.
	Standalone bool
}

// Render serializes root, including any top-level comments and processing
// instructions captured by Parse. An XML declaration is written when an
// encoding is given or Standalone is set.
func Render(root *Element, opts RenderOptions) ([]byte, error) {
	if opts.Encoding != "" && !strings.EqualFold(opts.Encoding, "UTF-8") && !strings.EqualFold(opts.Encoding, "UTF8") {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, opts.Encoding)
	}

	r := &renderer{pretty: opts.PrettyPrint}
	if opts.Encoding != "" || opts.Standalone {
		r.buf.WriteString("<?xml version='1.0'")
		if opts.Encoding != "" {
			r.buf.WriteString(" encoding='UTF-8'")
		}
		if opts.Standalone {
			r.buf.WriteString(" standalone='yes'")
		}
		r.buf.WriteString("?>\n")
	}

	for _, n := range root.prolog {
		if err := r.node(n, 0); err != nil {
			return nil, err
		}
		r.buf.WriteByte('\n')
	}
	if err := r.element(root, 0); err != nil {
		return nil, err
	}
	for _, n := range root.epilog {
		r.buf.WriteByte('\n')
		if err := r.node(n, 0); err != nil {
			return nil, err
		}
	}
	return r.buf.Bytes(), nil
}

type renderer struct {
	buf    bytes.Buffer
	pretty bool
}

func (r *renderer) node(n Node, depth int) error {
	switch v := n.(type) {
	case *Element:
		return r.element(v, depth)
	case *CharData:
		return r.escapeText(v.Data)
	case *Comment:
		if strings.Contains(v.Data, "--") || strings.HasSuffix(v.Data, "-") {
			return fmt.Errorf("comment %q: %w", v.Data, ErrInvalidCharacter)
		}
		r.buf.WriteString("<!--")
		r.buf.WriteString(v.Data)
		r.buf.WriteString("-->")
	case *ProcInst:
		r.buf.WriteString("<?")
		r.buf.WriteString(v.Target)
		if v.Inst != "" {
			r.buf.WriteByte(' ')
			r.buf.WriteString(v.Inst)
		}
		r.buf.WriteString("?>")
	}
	return nil
}

func (r *renderer) element(e *Element, depth int) error {
	name := qualifiedName(e.Prefix, e.Name.Local)
	r.buf.WriteByte('<')
	r.buf.WriteString(name)
	for _, a := range e.Attrs {
		r.buf.WriteByte(' ')
		r.buf.WriteString(qualifiedName(a.Prefix, a.Name.Local))
		r.buf.WriteString(`="`)
		if err := r.escapeAttr(a.Value); err != nil {
			return err
		}
		r.buf.WriteByte('"')
	}
	if len(e.children) == 0 {
		r.buf.WriteString("/>")
		return nil
	}
	r.buf.WriteByte('>')

	indent := r.pretty && elementOnly(e)
	for _, child := range e.children {
		if indent {
			r.newline(depth + 1)
		}
		if err := r.node(child, depth+1); err != nil {
			return err
		}
	}
	if indent {
		r.newline(depth)
	}

	r.buf.WriteString("</")
	r.buf.WriteString(name)
	r.buf.WriteByte('>')
	return nil
}

func (r *renderer) newline(depth int) {
	r.buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		r.buf.WriteString("  ")
	}
}

// elementOnly reports whether e has no character data children, which is
// when indentation cannot change its meaning.
func elementOnly(e *Element) bool {
	for _, child := range e.children {
		if _, ok := child.(*CharData); ok {
			return false
		}
	}
	return true
}

func (r *renderer) escapeText(s string) error {
	for i, c := range s {
		if c == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return fmt.Errorf("invalid UTF-8 in text: %w", ErrInvalidCharacter)
			}
		}
		if !isXMLChar(c) {
			return fmt.Errorf("text contains %U: %w", c, ErrInvalidCharacter)
		}
		switch c {
		case '&':
			r.buf.WriteString("&amp;")
		case '<':
			r.buf.WriteString("&lt;")
		case '>':
			r.buf.WriteString("&gt;")
		case '\r':
			r.buf.WriteString("&#13;")
		default:
			r.buf.WriteRune(c)
		}
	}
	return nil
}

func (r *renderer) escapeAttr(s string) error {
	for i, c := range s {
		if c == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return fmt.Errorf("invalid UTF-8 in attribute value: %w", ErrInvalidCharacter)
			}
		}
		if !isXMLChar(c) {
			return fmt.Errorf("attribute value contains %U: %w", c, ErrInvalidCharacter)
		}
		switch c {
		case '&':
			r.buf.WriteString("&amp;")
		case '<':
			r.buf.WriteString("&lt;")
		case '>':
			r.buf.WriteString("&gt;")
		case '"':
			r.buf.WriteString("&quot;")
		case '\t':
			r.buf.WriteString("&#9;")
		case '\n':
			r.buf.WriteString("&#10;")
		case '\r':
			r.buf.WriteString("&#13;")
		default:
			r.buf.WriteRune(c)
		}
	}
	return nil
}

// isXMLChar reports whether c is in the XML 1.0 Char production.
func isXMLChar(c rune) bool {
	return c == 0x09 ||
		c == 0x0A ||
		c == 0x0D ||
		c >= 0x20 && c <= 0xD7FF ||
		c >= 0xE000 && c <= 0xFFFD ||
		c >= 0x10000 && c <= 0x10FFFF
}
