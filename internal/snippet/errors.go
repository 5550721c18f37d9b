package snippet

import (
	"fmt"
	"strings"
)

// NotFoundError reports a snippet name with no start marker in the
// scanned source.
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	available := "none"
	if len(e.Available) > 0 {
		available = strings.Join(e.Available, ", ")
	}

	return fmt.Sprintf("snippet %q not found (available snippets: %s)", e.Name, available)
}

// UnterminatedError reports a start marker with no matching end, or a
// second start for a name that is still open.
type UnterminatedError struct {
	Name string
}

func (e *UnterminatedError) Error() string {
	return fmt.Sprintf("unterminated snippet %q", e.Name)
}

// DanglingEndError reports a named end marker with no preceding start.
type DanglingEndError struct {
	Name string
}

func (e *DanglingEndError) Error() string {
	return fmt.Sprintf("snips-end for %q has no matching snips-start", e.Name)
}

// DuplicateError reports two complete start/end pairs for the same name
// in one file.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate snippet name %q", e.Name)
}
