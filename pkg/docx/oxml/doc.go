// Package oxml provides the generic element tree that go-docx projects its
// typed document API onto.
//
// A DOCX document part is an XML file whose vocabulary is far larger than
// what go-docx models. Rather than unmarshaling into structs and losing
// whatever the structs do not name, oxml keeps the whole tree: elements,
// attributes, namespace declarations, comments and whitespace. The typed
// layer in package docx only ever holds references into this tree.
//
// # Structure Organization
//
//   - types.go: Name, Attr and the Node kinds (Element, CharData, Comment, ProcInst)
//   - element.go: Element navigation and mutation
//   - parse.go: Parse, strict namespace-aware parsing
//   - render.go: Render and RenderOptions
//   - namespaces.go: namespace URIs, conventional prefixes, W and QN helpers
//   - body.go, paragraph.go: operations on w:body and w:p elements
//
// # Namespaces
//
// Names carry namespace URIs, not prefixes. Prefixes read from the source are
// kept on each Element and Attr and written back unchanged. Elements created
// with NewElement get a prefix when they are inserted: an in-scope binding
// for their namespace is reused, otherwise the conventional prefix (w, r,
// mc, ...) is declared on the new element.
//
// Example:
//
//	root, err := oxml.Parse(data)
//	if err != nil {
//	    return err
//	}
//	body := oxml.DocumentBody(root)
//	p := oxml.AddP(body)
//	oxml.AddR(p, "Hello, world!")
//	out, err := oxml.Render(root, oxml.RenderOptions{Encoding: "UTF-8", Standalone: true})
package oxml
