package oxml

// Name is a namespace-qualified name. Space holds the namespace URI, not the
// prefix used in the source document.
type Name struct {
	Space string
	Local string
}

// String returns the name in Clark notation, {uri}local.
func (n Name) String() string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}

// Attr is an attribute of an element. Namespace declarations are kept as
// attributes too (Prefix "xmlns", or Local "xmlns" for the default
// namespace) so they render back in their original position.
type Attr struct {
	Name   Name
	Prefix string
	Value  string
}

// IsNamespaceDecl reports whether the attribute declares a namespace.
func (a Attr) IsNamespaceDecl() bool {
	return a.Name.Space == NamespaceXMLNS
}

// declaredPrefix returns the prefix bound by a namespace declaration. The
// default namespace declaration binds the empty prefix.
func (a Attr) declaredPrefix() string {
	if a.Prefix == "" {
		return ""
	}
	return a.Name.Local
}

// Node is anything that can appear as a child of an element.
type Node interface {
	isNode()
}

// CharData is a text node. CDATA sections are folded into plain text.
type CharData struct {
	Data string
}

// Comment is an XML comment node.
type Comment struct {
	Data string
}

// ProcInst is a processing instruction node.
type ProcInst struct {
	Target string
	Inst   string
}

func (*Element) isNode()  {}
func (*CharData) isNode() {}
func (*Comment) isNode()  {}
func (*ProcInst) isNode() {}
