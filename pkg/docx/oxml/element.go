package oxml

import (
	"fmt"
	"strings"
)

// Element is a node of the generic element tree. The tree preserves
// everything it parsed: unknown elements, foreign namespaces, comments and
// whitespace all survive a parse/render cycle untouched.
//
// Elements are not safe for concurrent use.
type Element struct {
	Name   Name
	Prefix string
	Attrs  []Attr

	parent   *Element
	children []Node

	// prolog and epilog hold top-level comments and processing instructions
	// surrounding a parsed root element.
	prolog []Node
	epilog []Node
}

// NewElement creates a detached element. The prefix is chosen from the
// conventional prefix table and reconciled with the in-scope namespace
// declarations when the element is inserted into a tree.
func NewElement(name Name) *Element {
	e := &Element{Name: name}
	if prefix, ok := prefixFor(name.Space); ok {
		e.Prefix = prefix
	}
	return e
}

// Parent returns the parent element, or nil for a root or detached element.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the child node list.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// ChildElements returns the element children in document order.
func (e *Element) ChildElements() []*Element {
	out := make([]*Element, 0, len(e.children))
	for _, child := range e.children {
		if el, ok := child.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// ChildrenNamed returns the element children with the given name in
// document order. The result is never nil.
func (e *Element) ChildrenNamed(name Name) []*Element {
	out := make([]*Element, 0)
	for _, child := range e.children {
		if el, ok := child.(*Element); ok && el.Name == name {
			out = append(out, el)
		}
	}
	return out
}

// FirstChild returns the first child element with the given name, or nil.
func (e *Element) FirstChild(name Name) *Element {
	for _, child := range e.children {
		if el, ok := child.(*Element); ok && el.Name == name {
			return el
		}
	}
	return nil
}

// LastChildElement returns the last element child, or nil.
func (e *Element) LastChildElement() *Element {
	for i := len(e.children) - 1; i >= 0; i-- {
		if el, ok := e.children[i].(*Element); ok {
			return el
		}
	}
	return nil
}

// AppendChild adds n as the last child of e. An element that already has a
// parent is moved. Newly inserted elements get their namespace prefixes
// reconciled with the declarations in scope at the insertion point.
func (e *Element) AppendChild(n Node) {
	e.adopt(n)
	e.children = append(e.children, n)
	if el, ok := n.(*Element); ok {
		el.bindNamespaces()
	}
}

// NewChild creates an element named name, appends it to e and returns it.
func (e *Element) NewChild(name Name) *Element {
	child := NewElement(name)
	e.AppendChild(child)
	return child
}

// InsertBefore inserts n immediately before ref. A nil ref appends.
func (e *Element) InsertBefore(n, ref Node) error {
	if ref == nil {
		e.AppendChild(n)
		return nil
	}
	if n == ref {
		return nil
	}
	if e.indexOf(ref) < 0 {
		return fmt.Errorf("insert before %s: %w", describe(ref), ErrNotChild)
	}
	e.adopt(n)
	idx := e.indexOf(ref)
	e.children = append(e.children, nil)
	copy(e.children[idx+1:], e.children[idx:])
	e.children[idx] = n
	if el, ok := n.(*Element); ok {
		el.bindNamespaces()
	}
	return nil
}

// RemoveChild detaches n from e. It reports whether n was a child.
func (e *Element) RemoveChild(n Node) bool {
	idx := e.indexOf(n)
	if idx < 0 {
		return false
	}
	e.children = append(e.children[:idx], e.children[idx+1:]...)
	if el, ok := n.(*Element); ok {
		el.parent = nil
	}
	return true
}

// RetainChildren removes every child for which keep returns false, in a
// single pass over the child list.
func (e *Element) RetainChildren(keep func(Node) bool) {
	kept := e.children[:0]
	for _, child := range e.children {
		if keep(child) {
			kept = append(kept, child)
			continue
		}
		if el, ok := child.(*Element); ok {
			el.parent = nil
		}
	}
	for i := len(kept); i < len(e.children); i++ {
		e.children[i] = nil
	}
	e.children = kept
}

// Clear removes every child node.
func (e *Element) Clear() {
	for _, child := range e.children {
		if el, ok := child.(*Element); ok {
			el.parent = nil
		}
	}
	e.children = nil
}

// Attr returns the value of the attribute with the given name.
func (e *Element) Attr(name Name) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name && !a.IsNamespaceDecl() {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets an attribute, adding it (and any needed namespace
// declaration) when it does not exist yet.
func (e *Element) SetAttr(name Name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name && !e.Attrs[i].IsNamespaceDecl() {
			e.Attrs[i].Value = value
			return
		}
	}
	attr := Attr{Name: name, Value: value}
	if name.Space != "" {
		hint, _ := prefixFor(name.Space)
		attr.Prefix = e.ensurePrefix(name.Space, hint, false)
	}
	e.Attrs = append(e.Attrs, attr)
}

// RemoveAttr removes an attribute. It reports whether one was removed.
func (e *Element) RemoveAttr(name Name) bool {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name && !e.Attrs[i].IsNamespaceDecl() {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return true
		}
	}
	return false
}

// Text returns the concatenated character data of e and its descendants.
func (e *Element) Text() string {
	var sb strings.Builder
	e.writeText(&sb)
	return sb.String()
}

func (e *Element) writeText(sb *strings.Builder) {
	for _, child := range e.children {
		switch c := child.(type) {
		case *CharData:
			sb.WriteString(c.Data)
		case *Element:
			c.writeText(sb)
		}
	}
}

// LookupNamespace resolves a prefix against the declarations in scope at e.
// The empty prefix resolves to the default namespace, which is the empty
// URI when none is declared.
func (e *Element) LookupNamespace(prefix string) (string, bool) {
	if prefix == "xml" {
		return NamespaceXML, true
	}
	for cur := e; cur != nil; cur = cur.parent {
		if uri, ok := cur.localDecl(prefix); ok {
			return uri, true
		}
	}
	if prefix == "" {
		return "", true
	}
	return "", false
}

// LookupPrefix returns a prefix bound to uri in the scope of e.
func (e *Element) LookupPrefix(uri string) (string, bool) {
	return e.lookupPrefix(uri, true)
}

func (e *Element) lookupPrefix(uri string, allowDefault bool) (string, bool) {
	if uri == NamespaceXML {
		return "xml", true
	}
	for cur := e; cur != nil; cur = cur.parent {
		for _, a := range cur.Attrs {
			if !a.IsNamespaceDecl() || a.Value != uri {
				continue
			}
			prefix := a.declaredPrefix()
			if prefix == "" && !allowDefault {
				continue
			}
			// A closer declaration may shadow this one.
			if bound, ok := e.LookupNamespace(prefix); ok && bound == uri {
				return prefix, true
			}
		}
	}
	return "", false
}

func (e *Element) localDecl(prefix string) (string, bool) {
	for _, a := range e.Attrs {
		if a.IsNamespaceDecl() && a.declaredPrefix() == prefix {
			return a.Value, true
		}
	}
	return "", false
}

// ensurePrefix returns a prefix bound to uri at e, declaring one on e when
// nothing in scope binds it.
func (e *Element) ensurePrefix(uri, hint string, allowDefault bool) string {
	if uri == NamespaceXML {
		return "xml"
	}
	if hint != "" || allowDefault {
		if bound, ok := e.LookupNamespace(hint); ok && bound == uri {
			return hint
		}
	}
	if prefix, ok := e.lookupPrefix(uri, allowDefault); ok {
		return prefix
	}
	prefix := hint
	if prefix == "" {
		prefix, _ = prefixFor(uri)
	}
	if _, taken := e.localDecl(prefix); taken || prefix == "" || prefix == "xml" {
		prefix = e.freePrefix()
	}
	e.Attrs = append(e.Attrs, Attr{
		Name:   Name{Space: NamespaceXMLNS, Local: prefix},
		Prefix: "xmlns",
		Value:  uri,
	})
	return prefix
}

func (e *Element) freePrefix() string {
	for i := 0; ; i++ {
		candidate := fmt.Sprintf("ns%d", i)
		if _, ok := e.LookupNamespace(candidate); !ok {
			return candidate
		}
	}
}

// bindNamespaces makes every name in the subtree rooted at e resolvable in
// its new position.
func (e *Element) bindNamespaces() {
	if e.Name.Space != "" {
		e.Prefix = e.ensurePrefix(e.Name.Space, e.Prefix, true)
	} else {
		e.Prefix = ""
		if def, _ := e.LookupNamespace(""); def != "" {
			e.Attrs = append(e.Attrs, Attr{
				Name:  Name{Space: NamespaceXMLNS, Local: "xmlns"},
				Value: "",
			})
		}
	}
	for i := range e.Attrs {
		a := &e.Attrs[i]
		if a.IsNamespaceDecl() {
			continue
		}
		if a.Name.Space == "" {
			a.Prefix = ""
			continue
		}
		a.Prefix = e.ensurePrefix(a.Name.Space, a.Prefix, false)
	}
	for _, child := range e.children {
		if el, ok := child.(*Element); ok {
			el.bindNamespaces()
		}
	}
}

func (e *Element) adopt(n Node) {
	el, ok := n.(*Element)
	if !ok {
		return
	}
	for cur := e; cur != nil; cur = cur.parent {
		if cur == el {
			panic("oxml: cannot insert an element into its own subtree")
		}
	}
	if el.parent != nil {
		el.parent.RemoveChild(el)
	}
	el.parent = e
}

// indexOf searches from the end; insertions usually target the last
// children.
func (e *Element) indexOf(n Node) int {
	for i := len(e.children) - 1; i >= 0; i-- {
		if e.children[i] == n {
			return i
		}
	}
	return -1
}

// appendParsed appends without namespace reconciliation; parsed prefixes are
// already correct for their position.
func (e *Element) appendParsed(n Node) {
	if el, ok := n.(*Element); ok {
		el.parent = e
	}
	e.children = append(e.children, n)
}

func describe(n Node) string {
	switch v := n.(type) {
	case *Element:
		return v.Name.String()
	case *CharData:
		return "text node"
	case *Comment:
		return "comment"
	case *ProcInst:
		return "processing instruction " + v.Target
	default:
		return "node"
	}
}
