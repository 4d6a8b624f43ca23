package opc

import (
	"encoding/xml"
	"fmt"
	"path"
	"strings"
)

const (
	contentTypesName      = "[Content_Types].xml"
	namespaceContentTypes = "http://schemas.openxmlformats.org/package/2006/content-types"

	// ContentTypeRelationships is the content type of relationships parts.
	ContentTypeRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	// ContentTypeXML is the default content type of .xml parts.
	ContentTypeXML = "application/xml"
)

type contentTypeDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type contentTypeOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type contentTypesXML struct {
	XMLName   xml.Name              `xml:"Types"`
	Namespace string                `xml:"xmlns,attr"`
	Defaults  []contentTypeDefault  `xml:"Default"`
	Overrides []contentTypeOverride `xml:"Override"`
}

// contentTypes is the [Content_Types].xml manifest. The original bytes are
// written back unless the manifest was changed.
type contentTypes struct {
	defaults  []contentTypeDefault
	overrides []contentTypeOverride
	raw       []byte
	dirty     bool
}

func newContentTypes() *contentTypes {
	return &contentTypes{
		defaults: []contentTypeDefault{
			{Extension: "rels", ContentType: ContentTypeRelationships},
			{Extension: "xml", ContentType: ContentTypeXML},
		},
		dirty: true,
	}
}

func parseContentTypes(blob []byte) (*contentTypes, error) {
	var doc contentTypesXML
	if err := xml.Unmarshal(blob, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse content types: %w", err)
	}
	return &contentTypes{
		defaults:  doc.Defaults,
		overrides: doc.Overrides,
		raw:       blob,
	}, nil
}

// lookup resolves the content type of a part: an Override for the part name
// wins over a Default for its extension. Both comparisons ignore case.
func (ct *contentTypes) lookup(partName string) string {
	for _, o := range ct.overrides {
		if strings.EqualFold(o.PartName, partName) {
			return o.ContentType
		}
	}
	ext := strings.TrimPrefix(path.Ext(partName), ".")
	for _, d := range ct.defaults {
		if strings.EqualFold(d.Extension, ext) {
			return d.ContentType
		}
	}
	return ""
}

// set records contentType for partName, adding an Override unless the
// extension default already yields it.
func (ct *contentTypes) set(partName, contentType string) {
	if ct.lookup(partName) == contentType {
		return
	}
	for i := range ct.overrides {
		if strings.EqualFold(ct.overrides[i].PartName, partName) {
			ct.overrides[i].ContentType = contentType
			ct.dirty = true
			return
		}
	}
	ct.overrides = append(ct.overrides, contentTypeOverride{PartName: partName, ContentType: contentType})
	ct.dirty = true
}

func (ct *contentTypes) blob() ([]byte, error) {
	if !ct.dirty && ct.raw != nil {
		return ct.raw, nil
	}
	data, err := xml.Marshal(contentTypesXML{
		Namespace: namespaceContentTypes,
		Defaults:  ct.defaults,
		Overrides: ct.overrides,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal content types: %w", err)
	}
	return append([]byte(xml.Header), data...), nil
}
