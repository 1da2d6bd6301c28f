package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ovenreader/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view FILE",
	Short: "Browse a cook report in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newParser()
		if err != nil {
			return err
		}

		rec, err := p.Parse(NormalizePath(args[0]))
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		return ui.Show(GetContext(), &ui.Viewer{
			Record:     rec,
			ShowHelp:   cfg.View.ShowHelp,
			SparkWidth: cfg.View.SparklineWidth,
		})
	},
}
