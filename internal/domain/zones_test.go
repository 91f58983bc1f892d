package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func splitText(text string) (license, doc, body []string, licensed bool) {
	l, d, b, ok := splitZones(strings.Split(text, "\n"))
	return l.Lines, d.Lines, b.Lines, ok
}

func TestSplitZones_NoLicenseSynthesizesHeader(t *testing.T) {
	license, doc, body, licensed := splitText("fn main() {}")

	assert.False(t, licensed)
	assert.Equal(t, []string{copyrightLine, spdxLine, ""}, license)
	assert.Empty(t, doc)
	assert.Equal(t, []string{"fn main() {}"}, body)
}

func TestSplitZones_LicenseFollowedByCode(t *testing.T) {
	// No blank separator, no doc comments: the body must start exactly
	// at the first code line.
	license, doc, body, licensed := splitText(
		copyrightLine + "\n" + spdxLine + "\nfn main() {}",
	)

	assert.True(t, licensed)
	assert.Equal(t, []string{copyrightLine, spdxLine}, license)
	assert.Empty(t, doc)
	assert.Equal(t, []string{"fn main() {}"}, body)
}

func TestSplitZones_BlankAfterHeaderStaysWithHeader(t *testing.T) {
	license, doc, body, licensed := splitText(
		copyrightLine + "\n" + spdxLine + "\n\nfn main() {}",
	)

	assert.True(t, licensed)
	assert.Equal(t, []string{copyrightLine, spdxLine, ""}, license)
	assert.Empty(t, doc)
	assert.Equal(t, []string{"fn main() {}"}, body)
}

func TestSplitZones_BlankInterleavedInHeader(t *testing.T) {
	license, _, body, licensed := splitText(
		copyrightLine + "\n\n" + spdxLine + "\nfn main() {}",
	)

	assert.True(t, licensed)
	assert.Equal(t, []string{copyrightLine, "", spdxLine}, license)
	assert.Equal(t, []string{"fn main() {}"}, body)
}

func TestSplitZones_DocRun(t *testing.T) {
	text := strings.Join([]string{
		copyrightLine,
		spdxLine,
		"",
		"//! Runtime",
		"//!",
		"//! Container runtime plumbing.",
		"",
		"",
		"fn start() {}",
		"",
		"fn stop() {}",
	}, "\n")

	license, doc, body, licensed := splitText(text)

	assert.True(t, licensed)
	assert.Len(t, license, 3)
	// Trailing blanks are trimmed from the doc zone.
	assert.Equal(t, []string{"//! Runtime", "//!", "//! Container runtime plumbing."}, doc)
	// Body keeps its own internal blank lines untouched.
	assert.Equal(t, []string{"fn start() {}", "", "fn stop() {}"}, body)
}

func TestSplitZones_LeadingBlanksBeforeDocDropped(t *testing.T) {
	_, doc, body, _ := splitText("\n\n//! Notes\nfn f() {}")

	assert.Equal(t, []string{"//! Notes"}, doc)
	assert.Equal(t, []string{"fn f() {}"}, body)
}

func TestSplitZones_InteriorDocBlankKept(t *testing.T) {
	_, doc, _, _ := splitText("//! A\n\n//! B\nfn f() {}")

	assert.Equal(t, []string{"//! A", "", "//! B"}, doc)
}

func TestSplitZones_EmptyInput(t *testing.T) {
	license, doc, body, licensed := splitText("")

	assert.False(t, licensed)
	assert.Equal(t, []string{copyrightLine, spdxLine, ""}, license)
	assert.Empty(t, doc)
	assert.Empty(t, body)
}

func TestSplitZones_BodyIsExactSuffix(t *testing.T) {
	bodyText := "fn a() {\n\n    let x = 1;\n}\n\n\nmod b;"
	text := copyrightLine + "\n" + spdxLine + "\n\n//! Doc\n\n" + bodyText

	_, _, body, _ := splitText(text)

	assert.Equal(t, bodyText, strings.Join(body, "\n"))
	assert.True(t, strings.HasSuffix(text, strings.Join(body, "\n")))
}
