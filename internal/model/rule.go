package model

// LayerLabel is the coarse architectural classification assigned to a
// file by its path.
type LayerLabel string

// LayerRule maps a path substring to a layer label. Rules are evaluated
// in order against the lowercased, separator-normalized path; the first
// match wins.
type LayerRule struct {
	Pattern string
	Label   LayerLabel
}

// ReferenceRule maps a path substring to a design-decision record
// identifier. Unlike layer rules there is no early exit: every matching
// rule contributes its identifier, in table order.
type ReferenceRule struct {
	Pattern string
	ID      string
}
