// Package snips reconciles snippet references in markdown documents
// against the source files they point at.
package snips

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ezerfernandes/snips/internal/lang"
	"github.com/ezerfernandes/snips/internal/marker"
	"github.com/ezerfernandes/snips/internal/snippet"
)

// Reference is one documentation marker, located by its 1-based line.
type Reference struct {
	marker.Reference
	Line int
}

// State is the per-reference synchronization outcome.
type State int

const (
	// Unchanged means the existing fence already matches the source.
	Unchanged State = iota
	// Replaced means the fence content or language tag was rewritten.
	Replaced
	// Inserted means no fence followed the marker and one was added.
	Inserted
	// Failed means the reference could not be resolved.
	Failed
)

// Result records what reconciliation decided for one reference. Old and
// New hold the fence body before and after, for diff rendering.
type Result struct {
	Ref   Reference
	State State
	Old   string
	New   string
	Err   error
}

// Outcome is the result of reconciling one document.
type Outcome struct {
	// Doc is the reconciled document text. When Errored, it is the
	// input text unchanged.
	Doc string
	// Changed reports whether Doc differs from the input.
	Changed bool
	// Results lists every reference in document order.
	Results []Result
}

// InSync reports whether every reference resolved to Unchanged.
func (o *Outcome) InSync() bool {
	for _, r := range o.Results {
		if r.State != Unchanged {
			return false
		}
	}

	return true
}

// Errors returns the collected per-reference errors.
func (o *Outcome) Errors() []error {
	var errs []error

	for _, r := range o.Results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}

	return errs
}

// Errored reports whether any reference failed to resolve.
func (o *Outcome) Errored() bool {
	for _, r := range o.Results {
		if r.Err != nil {
			return true
		}
	}

	return false
}

// ResolveReferences scans a document and returns every well-formed
// reference marker in order, whether or not a fence follows it.
func ResolveReferences(doc string) []Reference {
	var refs []Reference

	for i, line := range snippet.Lines(doc) {
		if !marker.IsReferenceLine(line) {
			continue
		}

		if ref, ok := marker.ParseReference(line); ok {
			refs = append(refs, Reference{Reference: ref, Line: i + 1})
		}
	}

	return refs
}

// Reconcile resolves every reference in doc against the source files
// reachable from base and synchronizes the fenced blocks. One
// reference's failure never prevents resolution of the others; errors
// are collected into the outcome. When any reference failed, Doc is the
// input unchanged so callers never persist a partially synced document.
//
// Untouched lines keep their original bytes, terminators included; only
// tool-owned fence lines are emitted with the document's dominant
// line-break convention. A document whose references are all in sync
// therefore renders byte-identical to its input.
func Reconcile(doc, base string, cache *Cache) *Outcome {
	eol := "\n"
	if strings.Contains(doc, "\r\n") {
		eol = "\r\n"
	}

	raw := strings.SplitAfter(doc, "\n")
	if n := len(raw); n > 0 && raw[n-1] == "" {
		raw = raw[:n-1]
	}

	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSuffix(strings.TrimSuffix(l, "\n"), "\r")
	}

	var (
		out     strings.Builder
		results []Result
	)

	writeRaw := func(from, to int) {
		for k := from; k < to; k++ {
			out.WriteString(raw[k])
		}
	}

	writeNew := func(block []string) {
		if s := out.String(); s != "" && !strings.HasSuffix(s, "\n") {
			out.WriteString(eol)
		}

		for _, l := range block {
			out.WriteString(l)
			out.WriteString(eol)
		}
	}

	for i := 0; i < len(lines); {
		line := lines[i]

		if !marker.IsReferenceLine(line) {
			writeRaw(i, i+1)
			i++

			continue
		}

		ref, ok := marker.ParseReference(line)
		if !ok {
			results = append(results, Result{
				Ref:   Reference{Line: i + 1},
				State: Failed,
				Err:   &InvalidMarkerError{Line: i + 1, Text: strings.TrimSpace(line)},
			})
			writeRaw(i, i+1)
			i++

			continue
		}

		res := Result{Ref: Reference{Reference: ref, Line: i + 1}}

		next, found, closed := takeFence(lines, i+1)
		oldBlock := lines[i+1 : next]
		newBlock, err := resolveBlock(ref, base, cache)

		switch {
		case err != nil:
			res.State = Failed
			res.Err = err

			writeRaw(i, next)
		case !found:
			res.State = Inserted
			res.New = innerContent(newBlock, true)

			writeRaw(i, i+1)
			writeNew(newBlock)
		case equalLines(oldBlock, newBlock):
			res.State = Unchanged

			writeRaw(i, next)
		default:
			res.State = Replaced
			res.Old = innerContent(oldBlock, closed)
			res.New = innerContent(newBlock, true)

			writeRaw(i, i+1)
			writeNew(newBlock)
		}

		results = append(results, res)
		i = next
	}

	rendered := out.String()
	if !strings.HasSuffix(doc, "\n") {
		rendered = strings.TrimSuffix(rendered, eol)
	}

	outcome := &Outcome{Doc: rendered, Changed: rendered != doc, Results: results}

	if outcome.Errored() {
		outcome.Doc = doc
		outcome.Changed = false
	}

	return outcome
}

// takeFence inspects the fenced block opening at lines[start], if any.
// It returns the index of the first line after the block, whether a
// fence opens at start, and whether that fence has a closing line. A
// fence left unclosed runs to the end of the document.
func takeFence(lines []string, start int) (next int, found, closed bool) {
	if start >= len(lines) {
		return start, false, false
	}

	trimmed := strings.TrimLeft(lines[start], " \t")
	if !strings.HasPrefix(trimmed, "```") {
		return start, false, false
	}

	ticks := 0
	for ticks < len(trimmed) && trimmed[ticks] == '`' {
		ticks++
	}

	closing := strings.Repeat("`", ticks)

	for k := start + 1; k < len(lines); k++ {
		if strings.TrimSpace(lines[k]) == closing {
			return k + 1, true, true
		}
	}

	return len(lines), true, false
}

// resolveBlock extracts the referenced content and renders the full
// replacement fence, mirroring the reference marker's indentation.
func resolveBlock(ref marker.Reference, base string, cache *Cache) ([]string, error) {
	target := filepath.FromSlash(ref.Path)
	if !filepath.IsAbs(target) {
		target = filepath.Join(base, target)
	}

	src, err := cache.Load(target)
	if err != nil {
		return nil, err
	}

	var body []string

	if ref.Name == "" {
		body = snippet.WholeFile(src)
	} else {
		body, err = snippet.Extract(src, ref.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ref.Path, err)
		}
	}

	tag, _ := lang.Classify(ref.Path)

	return renderFence(ref.Indent, tag, body), nil
}

// renderFence builds the fence lines for a block. Blank body lines stay
// unindented so the document carries no trailing whitespace.
func renderFence(indent, tag string, body []string) []string {
	out := make([]string, 0, len(body)+2)
	out = append(out, indent+"```"+tag)

	for _, l := range body {
		if strings.TrimSpace(l) == "" {
			out = append(out, l)
		} else {
			out = append(out, indent+l)
		}
	}

	return append(out, indent+"```")
}

// innerContent joins a fence's body lines, excluding the opening fence
// and, when the fence is closed, the closing one.
func innerContent(block []string, closed bool) string {
	if len(block) == 0 {
		return ""
	}

	body := block[1:]
	if closed && len(body) > 0 {
		body = body[:len(body)-1]
	}

	return strings.Join(body, "\n")
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
