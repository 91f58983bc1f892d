package model

// Outcome classifies what happened to a single file.
type Outcome string

const (
	// OutcomeUnchanged means the file already carried the expected
	// header and doc block byte-for-byte.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeChanged means new text was produced (and written, unless
	// the run was a dry run).
	OutcomeChanged Outcome = "changed"
	// OutcomeFailed means the file could not be read or written.
	OutcomeFailed Outcome = "failed"
)

// FileResult holds the synchronization result for a single source file.
type FileResult struct {
	Path    Path
	Outcome Outcome
	NewText string // populated only when Outcome is OutcomeChanged
	Err     error  // populated only when Outcome is OutcomeFailed
}

// Summary aggregates a whole run.
type Summary struct {
	Scanned int
	Changed int
	Failed  int
}
