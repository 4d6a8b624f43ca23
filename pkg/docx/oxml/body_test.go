package oxml

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docWithBody(inner string) string {
	return `<w:document ` + wDecl + `><w:body>` + inner + `</w:body></w:document>`
}

func TestDocumentBody(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantNil bool
	}{
		{name: "document with body", input: docWithBody(""), wantNil: false},
		{name: "document without body", input: `<w:document ` + wDecl + `/>`, wantNil: true},
		{name: "wrong root", input: `<w:body ` + wDecl + `/>`, wantNil: true},
		{name: "body in another namespace", input: `<w:document ` + wDecl + `><body/></w:document>`, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := DocumentBody(mustParse(t, tt.input))
			assert.Equal(t, tt.wantNil, body == nil)
		})
	}
	assert.Nil(t, DocumentBody(nil))
}

func TestAddP(t *testing.T) {
	tests := []struct {
		name  string
		inner string
		want  string
	}{
		{
			name:  "empty body",
			inner: ``,
			want:  `<w:p/>`,
		},
		{
			name:  "after existing paragraphs",
			inner: `<w:p><w:r><w:t>a</w:t></w:r></w:p>`,
			want:  `<w:p><w:r><w:t>a</w:t></w:r></w:p><w:p/>`,
		},
		{
			name:  "before trailing sectPr",
			inner: `<w:p/><w:sectPr/>`,
			want:  `<w:p/><w:p/><w:sectPr/>`,
		},
		{
			name:  "after tables",
			inner: `<w:tbl/><w:sectPr/>`,
			want:  `<w:tbl/><w:p/><w:sectPr/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustParse(t, docWithBody(tt.inner))
			body := DocumentBody(root)
			p := AddP(body)
			assert.Equal(t, tagP, p.Name)
			assert.Same(t, body, p.Parent())
			assert.Equal(t, docWithBody(tt.want), render(t, root))
		})
	}
}

func TestPs(t *testing.T) {
	body := DocumentBody(mustParse(t, docWithBody(`<w:p/><w:tbl><w:tr><w:tc><w:p/></w:tc></w:tr></w:tbl><w:p/><w:sectPr/>`)))
	assert.Len(t, Ps(body), 2, "only direct children count")

	empty := DocumentBody(mustParse(t, docWithBody(``)))
	assert.NotNil(t, Ps(empty))
	assert.Empty(t, Ps(empty))
}

func TestSectPr(t *testing.T) {
	body := DocumentBody(mustParse(t, docWithBody(`<w:p/><w:sectPr/>`)))
	assert.NotNil(t, SectPr(body))

	body = DocumentBody(mustParse(t, docWithBody(`<w:sectPr/><w:p/>`)))
	assert.Nil(t, SectPr(body))
}

func TestClearContent(t *testing.T) {
	tests := []struct {
		name  string
		inner string
		want  string
	}{
		{name: "empty", inner: ``, want: ``},
		{name: "paragraphs only", inner: `<w:p/><w:p/>`, want: ``},
		{name: "keeps sectPr", inner: `<w:p/><w:tbl/><w:sectPr><w:pgSz w:w="1"/></w:sectPr>`, want: `<w:sectPr><w:pgSz w:w="1"/></w:sectPr>`},
		{name: "drops text and comments", inner: "\n<!--c--><w:p/>\n<w:sectPr/>", want: `<w:sectPr/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustParse(t, docWithBody(tt.inner))
			ClearContent(DocumentBody(root))
			assert.Equal(t, docWithBody(tt.want), render(t, root))
		})
	}
}

func TestClearContent_LargeBody(t *testing.T) {
	const n = 100000
	root := mustParse(t, docWithBody(strings.Repeat(`<w:p/>`, n)+`<w:sectPr/>`))
	body := DocumentBody(root)
	ps := Ps(body)
	require.Len(t, ps, n)

	started := time.Now()
	ClearContent(body)
	elapsed := time.Since(started)

	assert.Empty(t, Ps(body))
	require.NotNil(t, SectPr(body))
	assert.Len(t, body.Children(), 1)
	assert.Nil(t, ps[0].Parent())
	assert.Nil(t, ps[n-1].Parent())
	assert.Less(t, elapsed, 2*time.Second, "clearing must be linear in the number of children")
}

func BenchmarkClearContent(b *testing.B) {
	data := []byte(docWithBody(strings.Repeat(`<w:p/>`, 10000) + `<w:sectPr/>`))
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		root, err := Parse(data)
		if err != nil {
			b.Fatal(err)
		}
		body := DocumentBody(root)
		b.StartTimer()
		ClearContent(body)
	}
}

func TestNewDocument(t *testing.T) {
	root := NewDocument()
	body := DocumentBody(root)
	require.NotNil(t, body)
	assert.Empty(t, Ps(body))

	sectPr := SectPr(body)
	require.NotNil(t, sectPr)
	pgSz := sectPr.FirstChild(W("pgSz"))
	require.NotNil(t, pgSz)
	w, _ := pgSz.Attr(W("w"))
	assert.Equal(t, "12240", w)

	out := render(t, root)
	assert.Contains(t, out, `<w:document `+wDecl+` xmlns:r="`+NamespaceR+`"><w:body><w:sectPr><w:pgSz w:w="12240" w:h="15840"/>`)

	reparsed := mustParse(t, out)
	assert.Equal(t, out, render(t, reparsed))
}
