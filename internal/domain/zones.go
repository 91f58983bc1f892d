package domain

import (
	"strings"

	m "github.com/mouse-blink/archdoc/internal/model"
)

// scanState names the phases of the zone-splitting cursor.
type scanState int

const (
	scanningLicense scanState = iota
	scanningDoc
	inBody
)

// splitZones partitions a file's lines into the three contiguous zones:
// license header, doc block and code body. licensed reports whether an
// existing license run was consumed; when it is false the returned
// license zone is the synthesized header template.
//
// The body zone is the untouched tail of the input: its lines, order
// and internal blank lines are preserved exactly. The only lines ever
// dropped are blank lines at the doc/body boundary, which the merger
// replaces with a single separator.
func splitZones(lines []string) (license, doc, body m.Zone, licensed bool) {
	license.Kind = m.ZoneLicense
	doc.Kind = m.ZoneDoc
	body.Kind = m.ZoneBody

	idx := 0
	state := scanningLicense

	for state == scanningLicense && idx < len(lines) {
		line := lines[idx]

		switch {
		case isLicenseLine(line):
			licensed = true
			license.Lines = append(license.Lines, line)
			idx++
		case isBlank(line) && licensed && idx < 2:
			// A blank interleaved into the first lines of the header
			// stays with the header.
			license.Lines = append(license.Lines, line)
			idx++
		default:
			state = scanningDoc
		}
	}

	if licensed {
		// Keep a single blank separating the header from whatever
		// follows, so re-running on our own output is a no-op.
		if idx < len(lines) && isBlank(lines[idx]) {
			license.Lines = append(license.Lines, lines[idx])
			idx++
		}
	} else {
		license.Lines = licenseHeader()
	}

	state = scanningDoc

	for state == scanningDoc && idx < len(lines) {
		line := lines[idx]

		switch {
		case hasDocPrefix(line):
			doc.Lines = append(doc.Lines, line)
			idx++
		case isBlank(line):
			// Leading blanks are dropped; interior and trailing blanks
			// are consumed and the trailing run trimmed below.
			if len(doc.Lines) > 0 {
				doc.Lines = append(doc.Lines, line)
			}
			idx++
		default:
			state = inBody
		}
	}

	for len(doc.Lines) > 0 && isBlank(doc.Lines[len(doc.Lines)-1]) {
		doc.Lines = doc.Lines[:len(doc.Lines)-1]
	}

	body.Lines = lines[idx:]

	return license, doc, body, licensed
}

func hasDocPrefix(line string) bool {
	return strings.HasPrefix(line, docPrefix)
}
