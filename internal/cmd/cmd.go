// Package cmd implements the snips command line interface.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezerfernandes/snips/internal/snips"
)

const rootHelp = `Keep markdown code blocks in sync with their source files.

Documentation references a source file (or a named snippet within it)
with an HTML comment followed by a fenced code block:

    <!-- snips: src/example.go#setup -->
    ` + "```go" + `
    ...
    ` + "```" + `

Named snippets are delimited in the source file by comment markers:

    // snips-start: setup
    ...
    // snips-end: setup

Running snips rewrites every referenced fence from the current source
content, dedenting snippets and tagging the fence for highlighting.
Without file arguments, markdown files in the current directory are
processed.`

// errSilent signals a non-zero exit whose details were already printed.
var errSilent = errors.New("silent")

type statusFunc func(format string, args ...interface{})

type options struct {
	quiet  bool
	check  bool
	diff   bool
	status statusFunc
}

func (o *options) createStatus(w io.Writer) {
	if o.quiet {
		o.status = func(string, ...interface{}) {}

		return
	}

	o.status = func(format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}
}

// Execute runs the CLI and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}

		return 1
	}

	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:           "snips [flags] [files...]",
		Short:         "Keep markdown code blocks in sync with their source files",
		Long:          rootHelp,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVar(&opts.quiet, "quiet", false, "suppress non-error output")
	cmd.Flags().BoolVar(&opts.check, "check", false, "don't write changes, exit non-zero if files are out of sync")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "show diffs instead of writing changes")
	cmd.MarkFlagsMutuallyExclusive("check", "diff")

	cmd.AddCommand(listCmd())

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Quiet {
		opts.quiet = true
	}

	opts.createStatus(cmd.OutOrStdout())

	files, err := resolveFiles(args, cfg)
	if err != nil {
		return err
	}

	mode := snips.Write

	switch {
	case opts.check:
		mode = snips.Check
	case opts.diff:
		mode = snips.Diff
	}

	runner := &snips.Runner{Mode: mode}
	outcomes := runner.Run(files)

	if mode == snips.Diff {
		renderDiffs(cmd.OutOrStdout(), outcomes)
	} else {
		renderReport(opts, mode, outcomes)
	}

	var failed, outOfSync bool

	stderr := cmd.ErrOrStderr()

	for i := range outcomes {
		fo := &outcomes[i]

		if fo.Err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", fo.Err)

			failed = true
		}

		if fo.Outcome == nil {
			continue
		}

		for _, rerr := range fo.Outcome.Errors() {
			fmt.Fprintf(stderr, "Error: %s: %v\n", displayPath(fo.Path), rerr)

			failed = true
		}

		if !fo.Outcome.InSync() {
			outOfSync = true
		}
	}

	if failed || (mode == snips.Check && outOfSync) {
		return errSilent
	}

	return nil
}

func displayPath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := relPath(cwd, path)
	if err != nil {
		return path
	}

	return rel
}
