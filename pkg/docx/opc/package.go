package opc

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxPartSize is used when Options.MaxPartSize is zero.
const DefaultMaxPartSize int64 = 256 << 20

// Options controls how a package is read.
type Options struct {
	// MaxPartSize caps the decompressed size of each part.
	MaxPartSize int64
}

// Part is a single part of the package. Name is the absolute part name, e.g.
// "/word/document.xml".
type Part struct {
	Name        string
	ContentType string
	Blob        []byte

	method   uint16
	modified time.Time
}

// Package is an Open Packaging Conventions container held in memory.
type Package struct {
	parts        []*Part
	index        map[string]*Part
	contentTypes *contentTypes
}

// New returns an empty package.
func New() *Package {
	return &Package{
		index:        make(map[string]*Part),
		contentTypes: newContentTypes(),
	}
}

// Open reads a package from a zip archive.
func Open(r io.ReaderAt, size int64, opts Options) (*Package, error) {
	maxSize := opts.MaxPartSize
	if maxSize <= 0 {
		maxSize = DefaultMaxPartSize
	}

	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, &PackageError{Operation: "open", Cause: fmt.Errorf("failed to read zip file: %w", err)}
	}

	pkg := New()
	var manifest []byte
	for _, file := range zipReader.File {
		if strings.HasSuffix(file.Name, "/") {
			continue
		}
		content, err := readZipFile(file, maxSize)
		if err != nil {
			return nil, &PackageError{Operation: "open", Path: file.Name, Cause: err}
		}
		if file.Name == contentTypesName {
			manifest = content
			continue
		}
		pkg.appendPart(&Part{
			Name:     "/" + file.Name,
			Blob:     content,
			method:   file.Method,
			modified: file.Modified,
		})
	}

	if manifest == nil {
		return nil, &PackageError{Operation: "open", Cause: fmt.Errorf("not a valid package: missing %s", contentTypesName)}
	}
	ct, err := parseContentTypes(manifest)
	if err != nil {
		return nil, &PackageError{Operation: "open", Path: contentTypesName, Cause: err}
	}
	pkg.contentTypes = ct
	for _, part := range pkg.parts {
		part.ContentType = ct.lookup(part.Name)
	}
	return pkg, nil
}

// OpenFile reads a package from a file on disk.
func OpenFile(path string, opts Options) (*Package, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &PackageError{Operation: "open", Path: path, Cause: err}
	}
	return Open(bytes.NewReader(content), int64(len(content)), opts)
}

func readZipFile(file *zip.File, maxSize int64) ([]byte, error) {
	if file.UncompressedSize64 > uint64(maxSize) {
		return nil, fmt.Errorf("%w: %d bytes", ErrPartTooLarge, file.UncompressedSize64)
	}
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part: %w", err)
	}
	defer rc.Close()

	// The header size can lie; bound the actual read as well.
	content, err := io.ReadAll(io.LimitReader(rc, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read part: %w", err)
	}
	if int64(len(content)) > maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrPartTooLarge, maxSize)
	}
	return content, nil
}

func (p *Package) appendPart(part *Part) {
	p.parts = append(p.parts, part)
	p.index[strings.ToLower(part.Name)] = part
}

// PartNames returns the part names in archive order.
func (p *Package) PartNames() []string {
	names := make([]string, len(p.parts))
	for i, part := range p.parts {
		names[i] = part.Name
	}
	return names
}

// Part returns the part with the given name. Part names compare without
// regard to case.
func (p *Package) Part(partName string) (*Part, error) {
	part, ok := p.index[strings.ToLower(partName)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPartNotFound, partName)
	}
	return part, nil
}

// AddPart adds a part, or replaces the blob and content type of an existing
// part with the same name.
func (p *Package) AddPart(partName, contentType string, blob []byte) *Part {
	p.contentTypes.set(partName, contentType)
	if part, ok := p.index[strings.ToLower(partName)]; ok {
		part.ContentType = contentType
		part.Blob = blob
		return part
	}
	part := &Part{
		Name:        partName,
		ContentType: contentType,
		Blob:        blob,
		method:      zip.Deflate,
	}
	p.appendPart(part)
	return part
}

// SetBlob replaces the content of an existing part.
func (p *Package) SetBlob(partName string, blob []byte) error {
	part, err := p.Part(partName)
	if err != nil {
		return err
	}
	part.Blob = blob
	return nil
}

// Relationships returns the relationships whose source is partName; use "/"
// for the package relationships. A missing relationships part is not an
// error.
func (p *Package) Relationships(partName string) ([]Relationship, error) {
	part, err := p.Part(RelsPartName(partName))
	if err != nil {
		return []Relationship{}, nil
	}
	return ParseRelationships(part.Blob)
}

// MainDocumentPartName follows the package's officeDocument relationship to
// the main document part. Packages without that relationship fall back to
// "/word/document.xml" when it exists.
func (p *Package) MainDocumentPartName() (string, error) {
	rels, err := p.Relationships("/")
	if err != nil {
		return "", &PackageError{Operation: "resolve main document", Cause: err}
	}
	for _, rel := range rels {
		if rel.IsExternal() {
			continue
		}
		if rel.Type == RelTypeOfficeDocument || rel.Type == RelTypeStrictOfficeDocument {
			name := ResolveTarget("/", rel.Target)
			if _, err := p.Part(name); err != nil {
				return "", &PackageError{Operation: "resolve main document", Path: name, Cause: err}
			}
			return name, nil
		}
	}
	if _, err := p.Part("/word/document.xml"); err == nil {
		return "/word/document.xml", nil
	}
	return "", ErrNoMainDocument
}

// Write serializes the package as a zip archive. The content types manifest
// comes first, followed by the parts in their original order. Parts keep
// their compression method when it is Store or Deflate and are deflated
// otherwise.
func (p *Package) Write(w io.Writer) error {
	manifest, err := p.contentTypes.blob()
	if err != nil {
		return &PackageError{Operation: "write", Path: contentTypesName, Cause: err}
	}

	zw := zip.NewWriter(w)
	if err := writeZipEntry(zw, &zip.FileHeader{Name: contentTypesName, Method: zip.Deflate}, manifest); err != nil {
		return &PackageError{Operation: "write", Path: contentTypesName, Cause: err}
	}
	for _, part := range p.parts {
		method := part.method
		if method != zip.Store && method != zip.Deflate {
			method = zip.Deflate
		}
		header := &zip.FileHeader{
			Name:     strings.TrimPrefix(part.Name, "/"),
			Method:   method,
			Modified: part.modified,
		}
		if err := writeZipEntry(zw, header, part.Blob); err != nil {
			return &PackageError{Operation: "write", Path: part.Name, Cause: err}
		}
	}
	if err := zw.Close(); err != nil {
		return &PackageError{Operation: "write", Cause: err}
	}
	return nil
}

func writeZipEntry(zw *zip.Writer, header *zip.FileHeader, content []byte) error {
	fw, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = fw.Write(content)
	return err
}

// SaveFile writes the package to path. The archive is written to a uniquely
// named temporary file in the same directory and renamed over path, so a
// failed save never leaves a truncated file behind.
func (p *Package) SaveFile(path string) (err error) {
	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return &PackageError{Operation: "save", Path: path, Cause: err}
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if err = p.Write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return &PackageError{Operation: "save", Path: path, Cause: err}
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return &PackageError{Operation: "save", Path: path, Cause: err}
	}
	return nil
}
