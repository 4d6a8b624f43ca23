package docx

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/benjaminschreck/go-docx/pkg/docx/opc"
	"github.com/benjaminschreck/go-docx/pkg/docx/oxml"
)

const defaultDocumentPartName = "/word/document.xml"

// File is a .docx package together with its loaded main document part.
type File struct {
	pkg *opc.Package
	doc *Document
}

// Open reads a .docx archive and loads its main document part.
func Open(r io.ReaderAt, size int64) (*File, error) {
	config := GetGlobalConfig()
	pkg, err := opc.Open(r, size, opc.Options{MaxPartSize: config.MaxPartSize})
	if err != nil {
		return nil, err
	}
	return fromPackage(pkg)
}

// OpenFile reads a .docx file from disk.
func OpenFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	f, err := Open(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, err
	}
	GetLogger().Debug("opened document", slog.String("path", path), slog.Int("bytes", len(content)))
	return f, nil
}

func fromPackage(pkg *opc.Package) (*File, error) {
	partName, err := pkg.MainDocumentPartName()
	if err != nil {
		return nil, err
	}
	part, err := pkg.Part(partName)
	if err != nil {
		return nil, err
	}
	doc, err := Load(part.Name, part.ContentType, part.Blob)
	if err != nil {
		return nil, NewDocumentError("load", part.Name, err)
	}
	GetLogger().Debug("loaded package",
		slog.String("main_part", part.Name),
		slog.Int("parts", len(pkg.PartNames())),
	)
	return &File{pkg: pkg, doc: doc}, nil
}

// New returns a minimal document: an empty body with default section
// properties, the content types manifest and the package relationship.
func New() (*File, error) {
	doc := newDocument(defaultDocumentPartName, ContentTypeDocumentMain, oxml.NewDocument())
	blob, err := doc.Blob()
	if err != nil {
		return nil, err
	}
	rels, err := opc.MarshalRelationships([]opc.Relationship{{
		ID:     "rId1",
		Type:   opc.RelTypeOfficeDocument,
		Target: "word/document.xml",
	}})
	if err != nil {
		return nil, NewDocumentError("create", "", err)
	}

	pkg := opc.New()
	pkg.AddPart(opc.RelsPartName("/"), opc.ContentTypeRelationships, rels)
	pkg.AddPart(doc.PartName(), doc.ContentType(), blob)
	return &File{pkg: pkg, doc: doc}, nil
}

// Document returns the main document part.
func (f *File) Document() *Document {
	return f.doc
}

// Package returns the underlying package.
func (f *File) Package() *opc.Package {
	return f.pkg
}

// sync stores the document part's current serialization in the package.
func (f *File) sync() error {
	blob, err := f.doc.Blob()
	if err != nil {
		return err
	}
	if err := f.pkg.SetBlob(f.doc.PartName(), blob); err != nil {
		return NewDocumentError("save", f.doc.PartName(), err)
	}
	return nil
}

// Write writes the package, including any changes made to the document, as
// a .docx archive.
func (f *File) Write(w io.Writer) error {
	if err := f.sync(); err != nil {
		return err
	}
	return f.pkg.Write(w)
}

// SaveFile writes the package to path, replacing any existing file.
func (f *File) SaveFile(path string) error {
	if err := f.sync(); err != nil {
		return err
	}
	if err := f.pkg.SaveFile(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	GetLogger().Debug("saved document", slog.String("path", path))
	return nil
}
