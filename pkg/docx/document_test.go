package docx

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-docx/pkg/docx/oxml"
)

const (
	testPartName = "/word/document.xml"
	wDecl        = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`
	partDecl     = "<?xml version='1.0' encoding='UTF-8' standalone='yes'?>\n"
)

func documentXML(inner string) []byte {
	return []byte(`<w:document ` + wDecl + `><w:body>` + inner + `</w:body></w:document>`)
}

func loadDocument(t *testing.T, inner string) *Document {
	t.Helper()
	doc, err := Load(testPartName, ContentTypeDocumentMain, documentXML(inner))
	require.NoError(t, err)
	return doc
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		partName    string
		contentType string
		blob        []byte
		wantErr     error
		wantParse   bool
	}{
		{
			name:        "main document",
			partName:    testPartName,
			contentType: ContentTypeDocumentMain,
			blob:        documentXML(`<w:p/>`),
		},
		{
			name:        "template content type",
			partName:    "/word/template.xml",
			contentType: ContentTypeTemplateMain,
			blob:        documentXML(``),
		},
		{
			name:        "macro-enabled content type",
			partName:    testPartName,
			contentType: ContentTypeDocumentMacro,
			blob:        documentXML(`<w:p/>`),
		},
		{
			name:        "document without body still loads",
			partName:    testPartName,
			contentType: ContentTypeDocumentMain,
			blob:        []byte(`<w:document ` + wDecl + `/>`),
		},
		{
			name:        "empty part name",
			partName:    "",
			contentType: ContentTypeDocumentMain,
			blob:        documentXML(``),
			wantErr:     ErrInvalidPart,
		},
		{
			name:        "empty content type",
			partName:    testPartName,
			contentType: "",
			blob:        documentXML(``),
			wantErr:     ErrInvalidPart,
		},
		{
			name:        "malformed blob",
			partName:    testPartName,
			contentType: ContentTypeDocumentMain,
			blob:        []byte(`<w:document ` + wDecl + `><w:body>`),
			wantParse:   true,
		},
		{
			name:        "not xml",
			partName:    testPartName,
			contentType: ContentTypeDocumentMain,
			blob:        []byte(`PK\x03\x04`),
			wantParse:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Load(tt.partName, tt.contentType, tt.blob)
			switch {
			case tt.wantErr != nil:
				assert.Nil(t, doc)
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantParse:
				assert.Nil(t, doc)
				var parseErr *oxml.ParseError
				assert.True(t, errors.As(err, &parseErr), "want *oxml.ParseError, got %T", err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.partName, doc.PartName())
				assert.Equal(t, tt.contentType, doc.ContentType())
				assert.Equal(t, oxml.W("document"), doc.Element().Name)
			}
		})
	}
}

func TestDocument_Body(t *testing.T) {
	doc := loadDocument(t, `<w:p/>`)

	body, err := doc.Body()
	require.NoError(t, err)
	assert.Same(t, oxml.DocumentBody(doc.Element()), body.Element())

	again, err := doc.Body()
	require.NoError(t, err)
	assert.Same(t, body.Element(), again.Element(), "views share the underlying element")
}

func TestDocument_BodyMissing(t *testing.T) {
	doc, err := Load(testPartName, ContentTypeDocumentMain, []byte(`<w:document `+wDecl+`/>`))
	require.NoError(t, err)

	body, err := doc.Body()
	assert.Nil(t, body)
	assert.ErrorIs(t, err, ErrMalformedDocument)

	var docErr *DocumentError
	require.True(t, errors.As(err, &docErr))
	assert.Equal(t, "body", docErr.Operation)
	assert.Equal(t, testPartName, docErr.PartName)
}

func TestDocument_Blob(t *testing.T) {
	doc := loadDocument(t, `<w:p><w:r><w:t>Hi</w:t></w:r></w:p>`)

	first, err := doc.Blob()
	require.NoError(t, err)
	second, err := doc.Blob()
	require.NoError(t, err)
	assert.Equal(t, first, second, "blob is stable without mutation")

	assert.Equal(t, partDecl+string(documentXML(`<w:p><w:r><w:t>Hi</w:t></w:r></w:p>`)), string(first))
	assert.NotContains(t, string(first[len(partDecl):]), "\n", "no pretty printing")
}

func TestDocument_BlobReflectsMutation(t *testing.T) {
	doc := loadDocument(t, ``)
	before, err := doc.Blob()
	require.NoError(t, err)

	body, err := doc.Body()
	require.NoError(t, err)
	body.AddParagraph()

	after, err := doc.Blob()
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
	assert.Equal(t, partDecl+string(documentXML(`<w:p/>`)), string(after))
}

func TestDocument_BlobError(t *testing.T) {
	doc := loadDocument(t, ``)
	body, err := doc.Body()
	require.NoError(t, err)
	body.AddParagraph().AddText("bad\x00")

	blob, err := doc.Blob()
	assert.Nil(t, blob)
	assert.ErrorIs(t, err, oxml.ErrInvalidCharacter)

	var docErr *DocumentError
	require.True(t, errors.As(err, &docErr))
	assert.Equal(t, "serialize", docErr.Operation)
}

func TestDocument_Scenario(t *testing.T) {
	doc := loadDocument(t, ``)

	body, err := doc.Body()
	require.NoError(t, err)
	assert.Empty(t, body.Paragraphs())

	body.AddParagraph()
	assert.Len(t, body.Paragraphs(), 1)

	body.ClearContent()
	assert.Empty(t, body.Paragraphs())

	blob, err := doc.Blob()
	require.NoError(t, err)
	require.NotEmpty(t, blob)
	assert.True(t, bytes.HasPrefix(blob, []byte(partDecl)))

	reloaded, err := Load(doc.PartName(), doc.ContentType(), blob)
	require.NoError(t, err)
	reblob, err := reloaded.Blob()
	require.NoError(t, err)
	assert.Equal(t, blob, reblob)
}
