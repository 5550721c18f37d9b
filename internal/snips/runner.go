package snips

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Mode selects what a run does with reconciliation outcomes.
type Mode int

const (
	// Write rewrites out-of-sync documents in place.
	Write Mode = iota
	// Check never mutates and reports whether documents are in sync.
	Check
	// Diff never mutates and reports old/new block pairs.
	Diff
)

// FileOutcome pairs one document with its reconciliation outcome. Err
// is set for document-level failures (unreadable document, failed
// write); reference-level errors live in Outcome.Results.
type FileOutcome struct {
	Path    string
	Outcome *Outcome
	Err     error
	Written bool
}

// Failed reports whether the outcome carries any error.
func (f *FileOutcome) Failed() bool {
	return f.Err != nil || (f.Outcome != nil && f.Outcome.Errored())
}

// WriteFileFunc persists a reconciled document.
type WriteFileFunc func(path string, data []byte) error

// Runner reconciles a batch of documents. Documents are independent
// units of work and are processed concurrently; the source cache is
// shared so all references to one file see an identical snapshot.
// Results come back in input order, keeping output deterministic.
type Runner struct {
	Mode      Mode
	ReadFile  ReadFileFunc
	WriteFile WriteFileFunc
}

// Run reconciles every document. Errors in one document never abort
// the others. In Write mode a document is only written when it changed
// and resolved without errors.
func (r *Runner) Run(paths []string) []FileOutcome {
	readFile := r.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	writeFile := r.WriteFile
	if writeFile == nil {
		writeFile = func(path string, data []byte) error {
			return os.WriteFile(path, data, 0o644)
		}
	}

	cache := NewCache(readFile)
	outcomes := make([]FileOutcome, len(paths))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		i, path := i, path

		g.Go(func() error {
			fo := FileOutcome{Path: path}

			data, err := readFile(path)
			if err != nil {
				fo.Err = fmt.Errorf("cannot read %s: %w", path, err)
				outcomes[i] = fo

				return nil
			}

			fo.Outcome = Reconcile(string(data), filepath.Dir(path), cache)

			if r.Mode == Write && fo.Outcome.Changed && !fo.Outcome.Errored() {
				if werr := writeFile(path, []byte(fo.Outcome.Doc)); werr != nil {
					fo.Err = fmt.Errorf("cannot write %s: %w", path, werr)
				} else {
					fo.Written = true
				}
			}

			outcomes[i] = fo

			return nil
		})
	}

	_ = g.Wait()

	return outcomes
}
