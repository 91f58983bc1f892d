package domain

import (
	"path/filepath"
	"strings"
	"unicode"

	m "github.com/mouse-blink/archdoc/internal/model"
)

// Recognized line prefixes. The tool targets Rust sources, so the set
// is fixed: line comments for the license header and inner doc
// comments for the module documentation block.
const (
	copyrightPrefix = "// Copyright (c)"
	spdxPrefix      = "// SPDX-License-Identifier"
	docPrefix       = "//!"

	copyrightLine = "// Copyright (c) 2026 100monkeys.ai"
	spdxLine      = "// SPDX-License-Identifier: AGPL-3.0"

	archHeading  = "//! # Architecture"
	bulletPrefix = "//! - "

	// referencesMarker is the coarse presence check for an existing
	// Related-ADRs bullet. It matches anywhere in the doc zone,
	// including inside prose; stricter detection would change which
	// files get a second bullet.
	referencesMarker = "Related ADRs"
)

// SPDXMarker is the sole signal that a file is already licensed.
// No further validation of header correctness is performed.
const SPDXMarker = "SPDX-License-Identifier: AGPL-3.0"

// licenseHeader returns the fixed header template: copyright line,
// license identifier line and one blank separator line.
func licenseHeader() []string {
	return []string{copyrightLine, spdxLine, ""}
}

func isLicenseLine(line string) bool {
	return strings.HasPrefix(line, copyrightPrefix) || strings.HasPrefix(line, spdxPrefix)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// moduleDisplayName derives the human-readable module name used in the
// synthesized doc block: base filename, extension stripped, underscores
// turned into spaces, title-cased ("embedding_client.rs" becomes
// "Embedding Client").
func moduleDisplayName(path m.Path) string {
	base := filepath.Base(normalizePath(string(path)))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")

	words := strings.Split(base, " ")
	for i, word := range words {
		if word == "" {
			continue
		}

		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}
