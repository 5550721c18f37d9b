package snips

import "fmt"

// InvalidMarkerError reports a line that looks like a snips reference
// but does not parse as one.
type InvalidMarkerError struct {
	Line int
	Text string
}

func (e *InvalidMarkerError) Error() string {
	return fmt.Sprintf("invalid marker format at line %d: %s\n  expected <!-- snips: path/to/file.ext --> or <!-- snips: path/to/file.ext#snippet_name -->",
		e.Line, e.Text)
}

// SourceUnreadableError reports a referenced source file that could not
// be read.
type SourceUnreadableError struct {
	Path string
	Err  error
}

func (e *SourceUnreadableError) Error() string {
	return fmt.Sprintf("cannot read source file %s: %v", e.Path, e.Err)
}

func (e *SourceUnreadableError) Unwrap() error { return e.Err }
