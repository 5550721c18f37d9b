// Package marker recognizes snips markers: snips-start/snips-end pairs
// embedded in source comments, and snips references in markdown HTML
// comments. Classification keys on the marker keyword alone, so the
// surrounding comment syntax (//, #, --, ...) does not matter.
package marker

import (
	"regexp"
	"strings"
)

// Kind classifies a source-side marker line.
type Kind int

const (
	// None means the line carries no snips marker.
	None Kind = iota
	// Start opens a named snippet.
	Start
	// End closes a snippet. The name may be empty (anonymous end).
	End
)

// idChars is the character class for snippet identifiers.
const idChars = `[\w-]`

var (
	reStart = regexp.MustCompile(`snips-start:\s*(` + idChars + `+)\s*$`)
	reEnd   = regexp.MustCompile(`snips-end(?::(?:\s*(` + idChars + `+))?)?\s*$`)
	reRef   = regexp.MustCompile(`^(\s*)<!--\s*snips:\s*([^#\s]+)(?:#(` + idChars + `+))?\s*-->\s*$`)
)

// refPrefix is the sniff test for documentation reference lines. Lines
// matching the prefix but not the full grammar are invalid markers, not
// plain text.
const refPrefix = "<!-- snips:"

// ParseSource classifies one source line. For Start the returned name is
// the snippet identifier; for End it may be empty when the marker is
// anonymous (`snips-end` or `snips-end:`).
func ParseSource(line string) (Kind, string) {
	if m := reStart.FindStringSubmatch(line); m != nil {
		return Start, m[1]
	}

	if m := reEnd.FindStringSubmatch(line); m != nil {
		return End, m[1]
	}

	return None, ""
}

// Reference is a documentation-side marker naming a source file and an
// optional snippet within it.
type Reference struct {
	Indent string
	Path   string
	Name   string
}

// String renders the canonical marker text, without indentation.
func (r Reference) String() string {
	if r.Name != "" {
		return "<!-- snips: " + r.Path + "#" + r.Name + " -->"
	}

	return "<!-- snips: " + r.Path + " -->"
}

// IsReferenceLine reports whether the line looks like a snips reference.
// A true result does not guarantee the line parses; see ParseReference.
func IsReferenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), refPrefix)
}

// ParseReference parses a documentation reference line.
func ParseReference(line string) (Reference, bool) {
	m := reRef.FindStringSubmatch(line)
	if m == nil {
		return Reference{}, false
	}

	return Reference{Indent: m[1], Path: m[2], Name: m[3]}, true
}
