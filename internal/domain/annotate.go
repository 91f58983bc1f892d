package domain

import (
	"strings"

	m "github.com/mouse-blink/archdoc/internal/model"
)

// Synchronize is the per-file core: it splits text into zones,
// synthesizes the doc block the file should carry and reassembles the
// result. The body zone is preserved byte-for-byte; re-running on the
// produced text reports unchanged.
//
// Classification tables are injected as pure functions so callers (and
// tests) control the path-to-layer and path-to-reference mappings.
func Synchronize(path m.Path, text string, classify LayerFunc, resolve ReferenceFunc) m.FileResult {
	lines := strings.Split(text, "\n")

	license, doc, body, _ := splitZones(lines)

	doc = synthesizeDocBlock(doc, moduleDisplayName(path), classify(path), resolve(path))

	out := make([]string, 0, len(license.Lines)+len(doc.Lines)+1+len(body.Lines))
	out = append(out, license.Lines...)
	out = append(out, doc.Lines...)

	if len(doc.Lines) > 0 {
		out = append(out, "")
	}

	out = append(out, body.Lines...)

	newText := strings.Join(out, "\n")
	if newText == text {
		return m.FileResult{Path: path, Outcome: m.OutcomeUnchanged}
	}

	return m.FileResult{Path: path, Outcome: m.OutcomeChanged, NewText: newText}
}

// AddLicense is the header-only mode: it prepends the license header to
// files missing the SPDX marker and leaves everything else, including
// the doc block, untouched.
func AddLicense(path m.Path, text string) m.FileResult {
	if strings.Contains(text, SPDXMarker) {
		return m.FileResult{Path: path, Outcome: m.OutcomeUnchanged}
	}

	header := strings.Join(licenseHeader(), "\n")

	return m.FileResult{
		Path:    path,
		Outcome: m.OutcomeChanged,
		NewText: header + "\n" + text,
	}
}
