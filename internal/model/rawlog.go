package model

// RawLine is one line of a simulation log, newline stripped.
type RawLine struct {
	Number int // 1-based
	Text   string
	// Unterminated is set on a final line that ended at EOF without a
	// newline. A simulator still writing the log leaves one behind.
	Unterminated bool
}
