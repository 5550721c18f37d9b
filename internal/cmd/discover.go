package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// resolveFiles returns the documents to process: the explicit arguments
// when given, otherwise the markdown files of the working directory.
func resolveFiles(args []string, cfg config) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	names, err := discover(os.DirFS(cwd), cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("no markdown files found in %s", cwd)
	}

	return names, nil
}

// discover lists the files directly under fsys whose names match any
// include pattern and no exclude pattern, sorted.
func discover(fsys fs.FS, include, exclude []string) ([]string, error) {
	incs, err := compileGlobs(include)
	if err != nil {
		return nil, err
	}

	excs, err := compileGlobs(exclude)
	if err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var names []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if matchAny(incs, name) && !matchAny(excs, name) {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names, nil
}

// compileGlobs compiles patterns for case-insensitive matching; both
// patterns and candidate names are folded to lower case.
func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, p := range patterns {
		g, err := glob.Compile(strings.ToLower(p))
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}

		globs = append(globs, g)
	}

	return globs, nil
}

func matchAny(globs []glob.Glob, name string) bool {
	lower := strings.ToLower(name)

	for _, g := range globs {
		if g.Match(lower) {
			return true
		}
	}

	return false
}

// relPath is filepath.Rel restricted to paths inside base.
func relPath(base, path string) (string, error) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", err
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path, nil
	}

	return rel, nil
}
