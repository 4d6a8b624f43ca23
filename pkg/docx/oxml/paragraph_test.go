package oxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paragraph(t *testing.T, inner string) *Element {
	t.Helper()
	root := mustParse(t, `<w:p `+wDecl+` xmlns:r="`+NamespaceR+`">`+inner+`</w:p>`)
	return root
}

func TestPText(t *testing.T) {
	tests := []struct {
		name  string
		inner string
		want  string
	}{
		{name: "empty", inner: ``, want: ""},
		{name: "single run", inner: `<w:r><w:t>Hello</w:t></w:r>`, want: "Hello"},
		{name: "several runs", inner: `<w:r><w:t>Hello, </w:t></w:r><w:r><w:t>world</w:t></w:r>`, want: "Hello, world"},
		{name: "tabs and breaks", inner: `<w:r><w:t>a</w:t><w:tab/><w:t>b</w:t><w:br/><w:t>c</w:t><w:cr/></w:r>`, want: "a\tb\nc\n"},
		{name: "hyperlink", inner: `<w:hyperlink r:id="rId1"><w:r><w:t>link</w:t></w:r></w:hyperlink>`, want: "link"},
		{name: "properties ignored", inner: `<w:pPr><w:pStyle w:val="Title"/></w:pPr><w:r><w:rPr><w:b/></w:rPr><w:t>x</w:t></w:r>`, want: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PText(paragraph(t, tt.inner)))
		})
	}
}

func TestAddR(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "plain", text: "abc", want: `<w:r><w:t>abc</w:t></w:r>`},
		{name: "edge whitespace", text: " abc ", want: `<w:r><w:t xml:space="preserve"> abc </w:t></w:r>`},
		{name: "escaped", text: "a<b", want: `<w:r><w:t>a&lt;b</w:t></w:r>`},
		{name: "empty", text: "", want: `<w:r/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParse(t, `<w:p `+wDecl+`/>`)
			r := AddR(p, tt.text)
			assert.Equal(t, tagR, r.Name)
			assert.Equal(t, `<w:p `+wDecl+`>`+tt.want+`</w:p>`, render(t, p))
			assert.Equal(t, tt.text, PText(p))
		})
	}
}

func TestPStyle(t *testing.T) {
	p := mustParse(t, `<w:p `+wDecl+`><w:r><w:t>x</w:t></w:r></w:p>`)
	assert.Equal(t, "", PStyle(p))

	SetPStyle(p, "Heading1")
	assert.Equal(t, "Heading1", PStyle(p))
	assert.Equal(t, `<w:p `+wDecl+`><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>x</w:t></w:r></w:p>`, render(t, p))

	SetPStyle(p, "Title")
	assert.Equal(t, "Title", PStyle(p))

	SetPStyle(p, "")
	assert.Equal(t, "", PStyle(p))
	assert.Equal(t, `<w:p `+wDecl+`><w:pPr/><w:r><w:t>x</w:t></w:r></w:p>`, render(t, p))
}

func TestSetPStyle_ExistingProperties(t *testing.T) {
	p := mustParse(t, `<w:p `+wDecl+`><w:pPr><w:jc w:val="center"/></w:pPr></w:p>`)
	SetPStyle(p, "Quote")

	pPr := p.FirstChild(W("pPr"))
	require.NotNil(t, pPr)
	children := pPr.ChildElements()
	require.Len(t, children, 2)
	assert.Equal(t, W("pStyle"), children[0].Name)
	assert.Equal(t, W("jc"), children[1].Name)
}
