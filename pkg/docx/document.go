package docx

import (
	"log/slog"

	"github.com/benjaminschreck/go-docx/pkg/docx/oxml"
)

// Content types of the main document part.
const (
	ContentTypeDocumentMain  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ContentTypeTemplateMain  = "application/vnd.openxmlformats-officedocument.wordprocessingml.template.main+xml"
	ContentTypeDocumentMacro = "application/vnd.ms-word.document.macroEnabled.main+xml"
)

// blobOptions is the serialization Word expects for a document part: UTF-8,
// no added whitespace, and a standalone declaration.
var blobOptions = oxml.RenderOptions{
	Encoding:    "UTF-8",
	PrettyPrint: false,
	Standalone:  true,
}

// Document is the main document part of a WordprocessingML package. It owns
// the parsed element tree; the Body and Paragraph values it hands out are
// views into that tree.
type Document struct {
	partName    string
	contentType string
	element     *oxml.Element
}

// Load parses blob and returns the document part it describes. A malformed
// blob yields the *oxml.ParseError from the parser as is, and no Document.
func Load(partName, contentType string, blob []byte) (*Document, error) {
	if partName == "" {
		return nil, NewDocumentError("load", partName, ErrInvalidPart)
	}
	if contentType == "" {
		return nil, NewDocumentError("load", partName, ErrInvalidPart)
	}

	element, err := oxml.Parse(blob)
	if err != nil {
		return nil, err
	}

	GetLogger().Debug("loaded document part",
		slog.String("partname", partName),
		slog.String("content_type", contentType),
		slog.Int("bytes", len(blob)),
	)
	return newDocument(partName, contentType, element), nil
}

func newDocument(partName, contentType string, element *oxml.Element) *Document {
	return &Document{
		partName:    partName,
		contentType: contentType,
		element:     element,
	}
}

// PartName returns the part name, e.g. "/word/document.xml".
func (d *Document) PartName() string {
	return d.partName
}

// ContentType returns the part's content type.
func (d *Document) ContentType() string {
	return d.contentType
}

// Element returns the w:document root element.
func (d *Document) Element() *oxml.Element {
	return d.element
}

// Body returns a new view over the document body. It fails with
// ErrMalformedDocument when the root has no w:body child.
func (d *Document) Body() (*Body, error) {
	body := oxml.DocumentBody(d.element)
	if body == nil {
		return nil, NewDocumentError("body", d.partName, ErrMalformedDocument)
	}
	return newBody(body), nil
}

// Blob serializes the current state of the element tree. It is computed on
// every call, so it always reflects mutations made through any view.
func (d *Document) Blob() ([]byte, error) {
	blob, err := oxml.Render(d.element, blobOptions)
	if err != nil {
		return nil, NewDocumentError("serialize", d.partName, err)
	}
	GetLogger().Debug("serialized document part",
		slog.String("partname", d.partName),
		slog.Int("bytes", len(blob)),
	)
	return blob, nil
}
