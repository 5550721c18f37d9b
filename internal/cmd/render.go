package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/ezerfernandes/snips/internal/snips"
)

var (
	styleFile      = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	styleBullet    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleUpdated   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleOutOfSync = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleErr       = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	styleDim       = lipgloss.NewStyle().Faint(true)
)

// renderReport prints the per-file, per-marker summary for Write and
// Check runs.
func renderReport(opts *options, mode snips.Mode, outcomes []snips.FileOutcome) {
	for i := range outcomes {
		fo := &outcomes[i]
		if fo.Outcome == nil {
			continue
		}

		opts.status("%s\n", styleFile.Render(displayPath(fo.Path)))

		if len(fo.Outcome.Results) == 0 {
			opts.status("  %s\n", styleDim.Render("(no snippets found)"))

			continue
		}

		for _, res := range fo.Outcome.Results {
			opts.status("  %s %s\n", styleBullet.Render("↳"), markerLabel(res, mode))
		}
	}
}

func markerLabel(res snips.Result, mode snips.Mode) string {
	text := res.Ref.String()
	if res.Ref.Path == "" {
		text = fmt.Sprintf("(line %d)", res.Ref.Line)
	}

	switch {
	case res.Err != nil:
		return styleErr.Render(text) + " [error]"
	case res.State == snips.Unchanged:
		return styleDim.Render(text)
	case mode == snips.Check:
		return styleOutOfSync.Render(text) + " [out of sync]"
	default:
		return styleUpdated.Render(text) + " [updated]"
	}
}

// renderDiffs prints a unified diff for every out-of-sync reference.
func renderDiffs(w io.Writer, outcomes []snips.FileOutcome) {
	for i := range outcomes {
		fo := &outcomes[i]
		if fo.Outcome == nil {
			continue
		}

		for _, res := range fo.Outcome.Results {
			if res.Err != nil || res.State == snips.Unchanged {
				continue
			}

			name := res.Ref.Path
			if res.Ref.Name != "" {
				name += "#" + res.Ref.Name
			}

			udiff := difflib.UnifiedDiff{ //nolint:exhaustruct
				A:        difflib.SplitLines(res.Old),
				B:        difflib.SplitLines(res.New),
				FromFile: name,
				ToFile:   name,
				Context:  3,
			}

			text, err := difflib.GetUnifiedDiffString(udiff)
			if err != nil {
				continue
			}

			fmt.Fprint(w, text)
			fmt.Fprintln(w)
		}
	}
}
