package mdscan

import (
	"regexp"
	"strings"

	"github.com/google/shlex"
)

// Meta holds key-value metadata parsed from a fence's info string, the
// words after the language tag (`go file=main.go region=body`).
type Meta map[string]string

// Get returns the value for key, or "" when absent.
func (m Meta) Get(key string) string {
	if m == nil {
		return ""
	}

	return m[key]
}

var reBraces = regexp.MustCompile(`^\s*{(.*)}$`)

// parseMeta splits the info-string remainder into key=value pairs.
// Values may be quoted; a surrounding brace pair is tolerated. Words
// without '=' are ignored.
func parseMeta(input string) (Meta, error) {
	if strings.TrimSpace(input) == "" {
		return Meta{}, nil
	}

	if sub := reBraces.FindStringSubmatch(input); sub != nil {
		input = sub[1]
	}

	words, err := shlex.Split(input)
	if err != nil {
		return nil, err
	}

	meta := make(Meta)

	for _, word := range words {
		if idx := strings.IndexRune(word, '='); idx >= 0 {
			meta[word[:idx]] = word[idx+1:]
		}
	}

	return meta, nil
}
