package opc

import (
	"encoding/xml"
	"fmt"
	"path"
	"strings"
)

// Relationship types that locate the main document part.
const (
	RelTypeOfficeDocument       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeStrictOfficeDocument = "http://purl.oclc.org/ooxml/officeDocument/relationships/officeDocument"

	namespaceRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// Relationship represents a relationship in the package
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// IsExternal reports whether the target lies outside the package.
func (r Relationship) IsExternal() bool {
	return r.TargetMode == "External"
}

// Relationships represents the collection of relationships
type Relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Namespace    string         `xml:"xmlns,attr"`
	Relationship []Relationship `xml:"Relationship"`
}

// ParseRelationships decodes a relationships part.
func ParseRelationships(blob []byte) ([]Relationship, error) {
	var rels Relationships
	if err := xml.Unmarshal(blob, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships: %w", err)
	}
	return rels.Relationship, nil
}

// MarshalRelationships encodes a relationships part.
func MarshalRelationships(rels []Relationship) ([]byte, error) {
	data, err := xml.Marshal(Relationships{
		Namespace:    namespaceRelationships,
		Relationship: rels,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal relationships: %w", err)
	}
	return append([]byte(xml.Header), data...), nil
}

// RelsPartName returns the relationships part name for a source part, e.g.
// "/word/document.xml" -> "/word/_rels/document.xml.rels". The package
// itself ("/") maps to "/_rels/.rels".
func RelsPartName(partName string) string {
	if partName == "/" || partName == "" {
		return "/_rels/.rels"
	}
	dir, base := path.Split(partName)
	return path.Join(dir, "_rels", base+".rels")
}

// ResolveTarget turns a relationship target into an absolute part name,
// relative to the part that owns the relationship.
func ResolveTarget(sourcePartName, target string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(target)
	}
	base := "/"
	if sourcePartName != "/" && sourcePartName != "" {
		base = path.Dir(sourcePartName)
	}
	return path.Join(base, target)
}
