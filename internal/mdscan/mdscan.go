// Package mdscan inventories the fenced code blocks of a markdown
// document, noting which ones are managed by a snips reference.
package mdscan

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/ezerfernandes/snips/internal/marker"
)

// Block describes one fenced code block.
type Block struct {
	Lang      string
	Meta      Meta
	Code      []byte
	StartLine int
	EndLine   int
	// Managed is true when the line above the fence is a snips
	// reference; Ref then holds its canonical marker text.
	Managed bool
	Ref     string
}

var reInfo = regexp.MustCompile(`\s*(\S+)\s*(.*)\s*`)

// Scan parses a markdown document and returns its fenced code blocks in
// document order. The source is never modified.
func Scan(source []byte) ([]*Block, error) {
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source)).OwnerDocument()

	docLines := strings.Split(string(source), "\n")

	var blocks []*Block

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering || node.Kind() != ast.KindFencedCodeBlock {
			return ast.WalkContinue, nil
		}

		fcb, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		block, berr := inventory(fcb, source)
		if berr != nil {
			return ast.WalkStop, berr
		}

		if block.StartLine > 1 && block.StartLine-2 < len(docLines) {
			if ref, k := marker.ParseReference(docLines[block.StartLine-2]); k {
				block.Managed = true
				block.Ref = ref.String()
			}
		}

		blocks = append(blocks, block)

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

func inventory(fcb *ast.FencedCodeBlock, source []byte) (*Block, error) {
	block := &Block{Code: code(fcb, source)}
	block.StartLine, block.EndLine = lineSpan(fcb, source)

	if fcb.Info != nil {
		info := reInfo.FindSubmatch(fcb.Info.Text(source))
		if info != nil {
			block.Lang = string(info[1])

			meta, err := parseMeta(string(info[2]))
			if err != nil {
				return nil, err
			}

			block.Meta = meta
		}
	}

	return block, nil
}

// lineSpan returns the 1-based lines of the opening and closing fences.
func lineSpan(fcb *ast.FencedCodeBlock, source []byte) (int, int) {
	var start, end int

	lines := fcb.Lines()

	if fcb.Info != nil {
		start = lineAt(source, fcb.Info.Segment.Start)
	} else if lines.Len() > 0 {
		start = lineAt(source, lines.At(0).Start) - 1
	}

	if lines.Len() > 0 {
		end = lineAt(source, lines.At(lines.Len()-1).Stop)
	} else if start > 0 {
		end = start + 1
	}

	return start, end
}

func lineAt(source []byte, offset int) int {
	line := 1

	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
		}
	}

	return line
}

func code(fcb *ast.FencedCodeBlock, source []byte) []byte {
	var buff bytes.Buffer

	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buff.Write(seg.Value(source))
	}

	return buff.Bytes()
}
