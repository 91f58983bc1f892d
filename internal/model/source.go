// Package model defines the data structures for header synchronization.
package model

// Path represents a file system path.
type Path string

// ZoneKind tags one of the three contiguous regions of a source file.
type ZoneKind string

const (
	// ZoneLicense is the leading copyright/SPDX comment run.
	ZoneLicense ZoneKind = "license"

	// ZoneDoc is the module doc-comment block between license and code.
	ZoneDoc ZoneKind = "doc"

	// ZoneBody is everything below the doc block. Its lines are never
	// rewritten, reordered or trimmed.
	ZoneBody ZoneKind = "body"
)

// Zone is an ordered run of lines with its kind tag.
type Zone struct {
	Kind  ZoneKind
	Lines []string
}

// SourceFile is a candidate file: its path plus full text content.
// Read once before processing, replaced once at the end if changed.
type SourceFile struct {
	Path Path
	Text string
}
