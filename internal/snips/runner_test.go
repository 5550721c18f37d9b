package snips_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezerfernandes/snips/internal/snips"
)

func TestRunnerWrite(t *testing.T) {
	mfs := sourceFS(t, map[string]string{
		"code.rs":  "fn main(){}\n",
		"dirty.md": "<!-- snips: code.rs -->\n```\nold\n```\n",
		"clean.md": "<!-- snips: code.rs -->\n```rust\nfn main(){}\n```\n",
	})

	written := map[string]string{}

	runner := &snips.Runner{
		Mode: snips.Write,
		ReadFile: func(path string) ([]byte, error) {
			return mfs.ReadFile(filepath.ToSlash(path))
		},
		WriteFile: func(path string, data []byte) error {
			written[path] = string(data)

			return nil
		},
	}

	outcomes := runner.Run([]string{"dirty.md", "clean.md"})

	require.Len(t, outcomes, 2)
	assert.Equal(t, "dirty.md", outcomes[0].Path)
	assert.Equal(t, "clean.md", outcomes[1].Path)

	assert.True(t, outcomes[0].Written)
	assert.False(t, outcomes[1].Written)

	require.Contains(t, written, "dirty.md")
	assert.Contains(t, written["dirty.md"], "```rust\nfn main(){}\n```")
	assert.NotContains(t, written, "clean.md")
}

func TestRunnerNeverWritesErroredDocuments(t *testing.T) {
	mfs := sourceFS(t, map[string]string{
		"code.rs": "fn main(){}\n",
		"bad.md":  "<!-- snips: code.rs#missing -->\n```\nold\n```\n",
		"good.md": "<!-- snips: code.rs -->\n```\nold\n```\n",
	})

	written := map[string]string{}

	runner := &snips.Runner{
		Mode: snips.Write,
		ReadFile: func(path string) ([]byte, error) {
			return mfs.ReadFile(filepath.ToSlash(path))
		},
		WriteFile: func(path string, data []byte) error {
			written[path] = string(data)

			return nil
		},
	}

	outcomes := runner.Run([]string{"bad.md", "good.md"})

	assert.True(t, outcomes[0].Failed())
	assert.False(t, outcomes[0].Written)

	// One document's errors never block the others.
	assert.False(t, outcomes[1].Failed())
	assert.True(t, outcomes[1].Written)

	assert.NotContains(t, written, "bad.md")
	assert.Contains(t, written, "good.md")
}

func TestRunnerCheckDoesNotWrite(t *testing.T) {
	mfs := sourceFS(t, map[string]string{
		"code.rs":  "fn main(){}\n",
		"dirty.md": "<!-- snips: code.rs -->\n```\nold\n```\n",
	})

	runner := &snips.Runner{
		Mode: snips.Check,
		ReadFile: func(path string) ([]byte, error) {
			return mfs.ReadFile(filepath.ToSlash(path))
		},
		WriteFile: func(path string, _ []byte) error {
			t.Fatalf("unexpected write to %s", path)

			return nil
		},
	}

	outcomes := runner.Run([]string{"dirty.md"})

	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].Written)
	assert.False(t, outcomes[0].Outcome.InSync())
}

func TestRunnerUnreadableDocument(t *testing.T) {
	mfs := sourceFS(t, map[string]string{
		"code.rs": "fn main(){}\n",
		"ok.md":   "<!-- snips: code.rs -->\n```rust\nfn main(){}\n```\n",
	})

	runner := &snips.Runner{
		Mode: snips.Check,
		ReadFile: func(path string) ([]byte, error) {
			return mfs.ReadFile(filepath.ToSlash(path))
		},
	}

	outcomes := runner.Run([]string{"missing.md", "ok.md"})

	assert.True(t, outcomes[0].Failed())
	assert.Nil(t, outcomes[0].Outcome)

	assert.False(t, outcomes[1].Failed())
	assert.True(t, outcomes[1].Outcome.InSync())
}
