package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the root command with an isolated home directory and returns
// its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"DOCX_LOG_LEVEL", "DOCX_LOG_FORMAT", "DOCX_MAX_PART_SIZE", "DOCX_OUTPUT_FORMAT"} {
		t.Setenv(key, "")
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "docx version "+version+"\n", out)
}

func TestNewAddParagraphs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")

	_, err := run(t, "new", path, "--text", "Title text", "--style", "Title")
	require.NoError(t, err)

	out, err := run(t, "add", path, "-t", "first", "-t", "second")
	require.NoError(t, err)
	assert.Equal(t, "added 2 paragraph(s), 3 total\n", out)

	out, err = run(t, "paragraphs", path)
	require.NoError(t, err)
	assert.Equal(t, "0\t[Title]\tTitle text\n1\tfirst\n2\tsecond\n", out)

	out, err = run(t, "paragraphs", path, "--format", "yaml")
	require.NoError(t, err)
	var views []paragraphView
	require.NoError(t, yaml.Unmarshal([]byte(out), &views))
	assert.Equal(t, []paragraphView{
		{Index: 0, Style: "Title", Text: "Title text"},
		{Index: 1, Text: "first"},
		{Index: 2, Text: "second"},
	}, views)
}

func TestAdd_Output(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.docx")
	out := filepath.Join(dir, "out.docx")

	_, err := run(t, "new", in)
	require.NoError(t, err)
	_, err = run(t, "add", in, "-t", "only in output", "-o", out)
	require.NoError(t, err)

	text, err := run(t, "paragraphs", in)
	require.NoError(t, err)
	assert.Empty(t, text)

	text, err = run(t, "paragraphs", out)
	require.NoError(t, err)
	assert.Equal(t, "0\tonly in output\n", text)
}

func TestAdd_RequiresText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	_, err := run(t, "new", path)
	require.NoError(t, err)

	_, err = run(t, "add", path)
	assert.ErrorContains(t, err, "--text is required")
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	_, err := run(t, "new", path, "-t", "a", "-t", "b")
	require.NoError(t, err)

	out, err := run(t, "clear", path)
	require.NoError(t, err)
	assert.Equal(t, "cleared 2 paragraph(s)\n", out)

	out, err = run(t, "xml", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "<w:p>")
	assert.Contains(t, out, "<w:sectPr>")
}

func TestXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	_, err := run(t, "new", path, "-t", "hello")
	require.NoError(t, err)

	out, err := run(t, "xml", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<?xml version='1.0' encoding='UTF-8' standalone='yes'?>\n<w:document"))
	assert.Contains(t, out, "<w:p><w:r><w:t>hello</w:t></w:r></w:p>")

	pretty, err := run(t, "xml", path, "--pretty")
	require.NoError(t, err)
	assert.Contains(t, pretty, "\n  <w:body>\n")
}

func TestParts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	_, err := run(t, "new", path)
	require.NoError(t, err)

	out, err := run(t, "parts", path, "--format", "yaml")
	require.NoError(t, err)
	var views []partView
	require.NoError(t, yaml.Unmarshal([]byte(out), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "/_rels/.rels", views[0].Name)
	assert.Equal(t, "/word/document.xml", views[1].Name)
	assert.Contains(t, views[1].ContentType, "wordprocessingml.document.main+xml")

	out, err = run(t, "parts", path)
	require.NoError(t, err)
	assert.Contains(t, out, "/word/document.xml")
}

func TestConfigCommands(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")

	_, err := run(t, "--config", cfg, "config", "show")
	assert.Error(t, err, "an explicit config file must exist")

	out, err := run(t, "--config", cfg, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, "wrote "+cfg+"\n", out)

	require.NoError(t, os.WriteFile(cfg, []byte("output_format: yaml\n"), 0o644))

	out, err = run(t, "--config", cfg, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "output_format: yaml")

	_, err = run(t, "--config", cfg, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	out, err = run(t, "--config", cfg, "--log-level", "debug", "config", "init", "--force")
	require.NoError(t, err)
	assert.Equal(t, "wrote "+cfg+"\n", out)

	content, err := os.ReadFile(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(content), "log_level: debug")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "chatty", "version")
	assert.Error(t, err)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := run(t, "paragraphs", filepath.Join(t.TempDir(), "missing.docx"))
	assert.Error(t, err)
}
