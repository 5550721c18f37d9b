package snippet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	src := "// before\n" +
		"// snips-start: foo\n" +
		"    fn a() {\n" +
		"        println!(\"hi\");\n" +
		"    }\n" +
		"// snips-end: foo\n" +
		"// after\n"

	lines, err := Extract(src, "foo")
	require.NoError(t, err)
	assert.Equal(t, []string{"fn a() {", "    println!(\"hi\");", "}"}, lines)
}

func TestExtractAnonymousEnd(t *testing.T) {
	for _, end := range []string{"// snips-end:", "// snips-end"} {
		src := "// snips-start: foo\nfn a(){}\n" + end + "\n"

		lines, err := Extract(src, "foo")
		require.NoError(t, err)
		assert.Equal(t, []string{"fn a(){}"}, lines)
	}
}

func TestExtractEmptySnippet(t *testing.T) {
	lines, err := Extract("// snips-start: foo\n// snips-end: foo\n", "foo")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestExtractNestedNames(t *testing.T) {
	src := "// snips-start: outer\n" +
		"a\n" +
		"// snips-start: inner\n" +
		"b\n" +
		"// snips-end: inner\n" +
		"c\n" +
		"// snips-end: outer\n"

	outer, err := Extract(src, "outer")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "// snips-start: inner", "b", "// snips-end: inner", "c"}, outer)

	inner, err := Extract(src, "inner")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, inner)
}

func TestExtractInterleavedNames(t *testing.T) {
	src := "// snips-start: a\n" +
		"one\n" +
		"// snips-start: b\n" +
		"two\n" +
		"// snips-end: a\n" +
		"three\n" +
		"// snips-end: b\n"

	a, err := Extract(src, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "// snips-start: b", "two"}, a)

	b, err := Extract(src, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"two", "// snips-end: a", "three"}, b)
}

func TestExtractNotFound(t *testing.T) {
	src := "// snips-start: a\nx\n// snips-end: a\n// snips-start: b\ny\n// snips-end: b\n"

	_, err := Extract(src, "missing")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Name)
	assert.Equal(t, []string{"a", "b"}, notFound.Available)
	assert.Contains(t, err.Error(), "a, b")
}

func TestExtractNotFoundNoneAvailable(t *testing.T) {
	_, err := Extract("fn main(){}\n", "foo")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "none")
}

func TestExtractUnterminated(t *testing.T) {
	_, err := Extract("// snips-start: foo\nfn a(){}\n", "foo")

	var unterminated *UnterminatedError
	require.ErrorAs(t, err, &unterminated)
	assert.Equal(t, "foo", unterminated.Name)
}

func TestExtractMismatchedEndName(t *testing.T) {
	// An end marker for a different name does not close the snippet.
	_, err := Extract("// snips-start: A\nfn a(){}\n// snips-end: B\n", "A")

	var unterminated *UnterminatedError
	require.ErrorAs(t, err, &unterminated)
	assert.Equal(t, "A", unterminated.Name)
}

func TestExtractRestartWhileOpen(t *testing.T) {
	src := "// snips-start: foo\nx\n// snips-start: foo\ny\n// snips-end: foo\n"

	_, err := Extract(src, "foo")

	var unterminated *UnterminatedError
	require.ErrorAs(t, err, &unterminated)
}

func TestExtractDanglingEnd(t *testing.T) {
	_, err := Extract("fn a(){}\n// snips-end: foo\n", "foo")

	var dangling *DanglingEndError
	require.ErrorAs(t, err, &dangling)
	assert.Equal(t, "foo", dangling.Name)
}

func TestExtractDuplicate(t *testing.T) {
	src := "// snips-start: foo\nx\n// snips-end: foo\n" +
		"// snips-start: foo\ny\n// snips-end: foo\n"

	_, err := Extract(src, "foo")

	var duplicate *DuplicateError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, "foo", duplicate.Name)
}

func TestWholeFileVerbatim(t *testing.T) {
	src := "// snips-start: foo\n    indented\n// snips-end: foo\n"

	assert.Equal(t, []string{"// snips-start: foo", "    indented", "// snips-end: foo"}, WholeFile(src))
}

func TestWholeFileEmpty(t *testing.T) {
	assert.Empty(t, WholeFile(""))
}

func TestNames(t *testing.T) {
	src := "// snips-start: a\n// snips-end: a\n# snips-start: b\n# snips-end\n"

	assert.Equal(t, []string{"a", "b"}, Names(src))
	assert.Nil(t, Names("no markers\n"))
}

func TestNamesRepeatedStartListedOnce(t *testing.T) {
	src := "// snips-start: a\nx\n// snips-end: a\n// snips-start: a\ny\n// snips-end: a\n"

	assert.Equal(t, []string{"a"}, Names(src))

	_, err := Extract(src, "missing")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{"a"}, notFound.Available)
}

func TestDedent(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"uniform",
			[]string{"    a", "    b"},
			[]string{"a", "b"},
		},
		{
			"relative indent preserved",
			[]string{"    fn a() {", "        x", "    }"},
			[]string{"fn a() {", "    x", "}"},
		},
		{
			"minimum wins",
			[]string{"    a", " b"},
			[]string{"   a", "b"},
		},
		{
			"blank lines unaffected",
			[]string{"    a", "", "    b"},
			[]string{"a", "", "b"},
		},
		{
			"tabs",
			[]string{"\ta", "\t\tb"},
			[]string{"a", "\tb"},
		},
		{
			"no indent",
			[]string{"a", "  b"},
			[]string{"a", "  b"},
		},
		{
			"empty",
			nil,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dedent(tt.in))
		})
	}
}

// Shifting every line by a constant amount of leading whitespace must
// not change the extraction result.
func TestDedentShiftInvariance(t *testing.T) {
	body := "fn a() {\n    x\n}\n"

	plain := "// snips-start: f\n" + body + "// snips-end: f\n"

	var shifted string
	shifted = "// snips-start: f\n"
	shifted += "    fn a() {\n        x\n    }\n"
	shifted += "// snips-end: f\n"

	a, err := Extract(plain, "f")
	require.NoError(t, err)

	b, err := Extract(shifted, "f")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestLinesCRLF(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Lines("a\r\nb\r\n"))
}
