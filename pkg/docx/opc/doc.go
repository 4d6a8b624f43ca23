// Package opc reads and writes Open Packaging Conventions containers, the
// zip archives that hold the parts of a .docx file.
//
// A Package keeps every part in memory together with its content type
// (resolved from [Content_Types].xml) and preserves archive order and
// compression settings when written back. Relationship parts are exposed as
// ordinary parts; Relationships and MainDocumentPartName decode them.
package opc
