// Package lang maps source file paths to markdown fence language tags.
package lang

import (
	"path/filepath"
	"strings"
)

// tags maps lowercase file extensions to the label markdown renderers
// use for syntax highlighting.
var tags = map[string]string{
	"bash":     "bash",
	"c":        "c",
	"cc":       "cpp",
	"clj":      "clojure",
	"cmake":    "cmake",
	"cpp":      "cpp",
	"cs":       "csharp",
	"css":      "css",
	"dart":     "dart",
	"diff":     "diff",
	"elm":      "elm",
	"erl":      "erlang",
	"ex":       "elixir",
	"exs":      "elixir",
	"fish":     "fish",
	"go":       "go",
	"gradle":   "groovy",
	"groovy":   "groovy",
	"h":        "c",
	"hpp":      "cpp",
	"hs":       "haskell",
	"html":     "html",
	"ini":      "ini",
	"java":     "java",
	"js":       "javascript",
	"json":     "json",
	"jsx":      "jsx",
	"kt":       "kotlin",
	"lua":      "lua",
	"md":       "markdown",
	"markdown": "markdown",
	"ml":       "ocaml",
	"nix":      "nix",
	"php":      "php",
	"pl":       "perl",
	"proto":    "protobuf",
	"ps1":      "powershell",
	"py":       "python",
	"r":        "r",
	"rb":       "ruby",
	"rs":       "rust",
	"scala":    "scala",
	"scss":     "scss",
	"sh":       "shell",
	"sql":      "sql",
	"swift":    "swift",
	"tf":       "hcl",
	"toml":     "toml",
	"ts":       "typescript",
	"tsx":      "tsx",
	"vim":      "vim",
	"xml":      "xml",
	"yaml":     "yaml",
	"yml":      "yaml",
	"zig":      "zig",
	"zsh":      "zsh",
}

// basenames covers well-known files without an extension.
var basenames = map[string]string{
	"dockerfile": "dockerfile",
	"makefile":   "makefile",
}

// Classify returns the fence language tag for a source path. A miss is
// not an error; callers emit an untagged fence.
func Classify(path string) (string, bool) {
	base := strings.ToLower(filepath.Base(path))
	if tag, ok := basenames[base]; ok {
		return tag, true
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	tag, ok := tags[ext]

	return tag, ok
}
