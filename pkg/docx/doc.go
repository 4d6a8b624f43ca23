// Package docx loads, edits and saves the main document part of Microsoft
// Word (.docx) files without losing anything it does not understand.
//
// # Quick Start
//
//	f, err := docx.OpenFile("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	body, err := f.Document().Body()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	body.AddParagraph().AddText("Appendix")
//	for _, p := range body.Paragraphs() {
//	    fmt.Println(p.Text())
//	}
//
//	if err := f.SaveFile("report.docx"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Parts and Views
//
// Document is the document part: it owns the parsed element tree of
// word/document.xml (see package oxml) along with its part name and content
// type. Body and Paragraph are views. They hold a reference to an element in
// that tree and nothing else, so two views of the same element always agree,
// and a change through one is seen by the other. Views are cheap; Document.Body
// builds a new one on every call.
//
// Everything the views do not model (styles, section properties, tables,
// foreign namespaces, markup compatibility blocks) stays in the tree and is
// written back by Document.Blob with its prefixes, attribute order and
// whitespace intact. The XML declaration is always
//
//	<?xml version='1.0' encoding='UTF-8' standalone='yes'?>
//
// # Working Without a Package
//
// Load works on a bare document part, for callers that manage the zip
// container themselves:
//
//	doc, err := docx.Load("/word/document.xml", docx.ContentTypeDocumentMain, blob)
//
// # Configuration
//
// Logging and read limits come from the environment (DOCX_LOG_LEVEL,
// DOCX_LOG_FORMAT, DOCX_MAX_PART_SIZE) or from SetGlobalConfig.
//
// None of the types in this package are safe for concurrent use.
package docx
