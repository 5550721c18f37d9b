package cmd

import (
	"fmt"
	"os"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/ezerfernandes/snips/internal/mdscan"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [files...]",
		Aliases: []string{"ls"},
		Short:   "List fenced code blocks and their snips references",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			files, err := resolveFiles(args, cfg)
			if err != nil {
				return err
			}

			tbl := table.New("FILE", "LINES", "LANG", "MANAGED", "REFERENCE").
				WithWriter(cmd.OutOrStdout())

			for _, path := range files {
				src, err := os.ReadFile(path)
				if err != nil {
					return err
				}

				blocks, err := mdscan.Scan(src)
				if err != nil {
					return fmt.Errorf("%s: %w", displayPath(path), err)
				}

				for _, b := range blocks {
					managed := ""
					if b.Managed {
						managed = "yes"
					}

					tbl.AddRow(displayPath(path),
						fmt.Sprintf("%d-%d", b.StartLine, b.EndLine),
						b.Lang, managed, b.Ref)
				}
			}

			tbl.Print()

			return nil
		},

		DisableAutoGenTag: true,
	}

	return cmd
}
