// Package snippet locates and extracts named snippets from source files.
package snippet

import (
	"strings"

	"github.com/ezerfernandes/snips/internal/marker"
)

// Lines splits source text into lines, normalizing CRLF endings and
// dropping the empty element a trailing newline would produce.
func Lines(source string) []string {
	lines := strings.Split(source, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}

// WholeFile returns every line of the source verbatim, marker comments
// included.
func WholeFile(source string) []string {
	return Lines(source)
}

// Names lists the snippet names that have a start marker, in order of
// first appearance. Repeated start markers for a name count once.
func Names(source string) []string {
	var names []string

	seen := make(map[string]bool)

	for _, line := range Lines(source) {
		if kind, name := marker.ParseSource(line); kind == marker.Start && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	return names
}

// Extract returns the body of the named snippet with common indentation
// stripped. The marker lines themselves are never part of the result.
//
// An end marker closes the snippet when it names the same snippet or
// carries no name at all; end markers for other names are body text, so
// differently-named ranges may nest or interleave freely.
func Extract(source, name string) ([]string, error) {
	var (
		body         []string
		open, closed bool
	)

	for _, line := range Lines(source) {
		kind, n := marker.ParseSource(line)

		switch {
		case open:
			if kind == marker.Start && n == name {
				return nil, &UnterminatedError{Name: name}
			}

			if kind == marker.End && (n == "" || n == name) {
				open = false
				closed = true

				continue
			}

			body = append(body, line)
		case closed:
			if kind == marker.Start && n == name {
				return nil, &DuplicateError{Name: name}
			}
		default:
			if kind == marker.Start && n == name {
				open = true
			} else if kind == marker.End && n == name {
				return nil, &DanglingEndError{Name: name}
			}
		}
	}

	if open {
		return nil, &UnterminatedError{Name: name}
	}

	if !closed {
		return nil, &NotFoundError{Name: name, Available: Names(source)}
	}

	return Dedent(body), nil
}

// Dedent strips the minimum leading-whitespace width found among the
// non-blank lines from every non-blank line. Blank lines pass through
// unchanged, and relative indentation between lines is preserved.
func Dedent(lines []string) []string {
	width := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if width < 0 || n < width {
			width = n
		}
	}

	if width <= 0 {
		return lines
	}

	out := make([]string, len(lines))

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = line
		} else {
			out[i] = line[width:]
		}
	}

	return out
}
