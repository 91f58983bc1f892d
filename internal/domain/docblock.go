package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/archdoc/internal/model"
)

// synthesizeDocBlock produces the doc zone that should exist after
// processing. Three cases:
//
//   - empty doc zone: synthesize a full block (summary, purpose,
//     Architecture heading, Layer/Purpose bullets, References bullet
//     when refs are non-empty);
//   - doc zone without an Architecture heading: append the heading and
//     bullets to the existing lines;
//   - heading already present: leave everything untouched except for
//     inserting a References bullet at the end of the bullet run that
//     follows the heading, and only when refs are non-empty and no
//     references bullet exists yet.
//
// The last case makes the function idempotent: its own output always
// carries the heading and, once inserted, the references bullet.
func synthesizeDocBlock(doc m.Zone, module string, layer m.LayerLabel, refs []string) m.Zone {
	if hasArchHeading(doc.Lines) {
		return m.Zone{Kind: m.ZoneDoc, Lines: insertReferencesBullet(doc.Lines, refs)}
	}

	lower := strings.ToLower(module)

	var out []string

	if len(doc.Lines) == 0 {
		out = []string{
			docPrefix + " " + module,
			docPrefix,
			fmt.Sprintf("%s Provides %s functionality for the system.", docPrefix, lower),
			docPrefix,
			archHeading,
			docPrefix,
			fmt.Sprintf("%s - **Layer:** %s", docPrefix, layer),
			fmt.Sprintf("%s - **Purpose:** Implements %s", docPrefix, lower),
		}
	} else {
		out = append(out, doc.Lines...)
		out = append(out,
			docPrefix,
			archHeading,
			docPrefix,
			fmt.Sprintf("%s - **Layer:** %s", docPrefix, layer),
			fmt.Sprintf("%s - **Purpose:** Implements internal responsibilities for %s", docPrefix, lower),
		)
	}

	if len(refs) > 0 {
		out = append(out, referencesBullet(refs))
	}

	return m.Zone{Kind: m.ZoneDoc, Lines: out}
}

// insertReferencesBullet appends a References bullet to the end of the
// contiguous bullet run following the Architecture heading. The doc
// lines are returned unmodified when refs is empty or a references
// bullet is already present anywhere in the zone.
func insertReferencesBullet(lines []string, refs []string) []string {
	if len(refs) == 0 || hasReferencesBullet(lines) {
		return lines
	}

	at := archHeadingIndex(lines) + 1
	for at < len(lines) && strings.HasPrefix(lines[at], bulletPrefix) {
		at++
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	out = append(out, referencesBullet(refs))
	out = append(out, lines[at:]...)

	return out
}

func referencesBullet(refs []string) string {
	return fmt.Sprintf("%s - **Related ADRs:** %s", docPrefix, strings.Join(refs, ", "))
}

func hasArchHeading(lines []string) bool {
	return archHeadingIndex(lines) >= 0
}

func archHeadingIndex(lines []string) int {
	for i, line := range lines {
		if strings.Contains(line, archHeading) {
			return i
		}
	}

	return -1
}

func hasReferencesBullet(lines []string) bool {
	for _, line := range lines {
		if strings.Contains(line, referencesMarker) {
			return true
		}
	}

	return false
}
