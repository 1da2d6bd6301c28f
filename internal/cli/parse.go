package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ovenreader/internal/logging"
	"ovenreader/internal/parser"
	"ovenreader/internal/report"
)

var flagFormat string

var parseCmd = &cobra.Command{
	Use:   "parse FILE...",
	Short: "Parse cook reports and print their summaries",
	Long: `Parse one or more cook reports. Each report is printed as text, JSON
or YAML. A report that fails to parse is reported on stderr and the
remaining files are still processed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	format := cfg.OutputFormat()
	if flagFormat != "" {
		f, err := report.ParseFormat(flagFormat)
		if err != nil {
			return err
		}
		format = f
	}

	p, err := newParser()
	if err != nil {
		return err
	}
	return parseReports(cmd.OutOrStdout(), cmd.ErrOrStderr(), p, format, args)
}

// parseReports renders every path in order and fails if any report failed
func parseReports(out, errOut io.Writer, p *parser.Parser, format report.Format, paths []string) error {
	failed := 0
	for _, path := range paths {
		rec, err := p.Parse(NormalizePath(path))
		if err != nil {
			failed++
			logging.Warn("report rejected", "path", path, "error", err)
			fmt.Fprintf(errOut, "%s: %s: %v\n", path, parser.KindOf(err), err)
			continue
		}
		if err := report.Write(out, rec, format); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d reports failed to parse", failed, len(paths))
	}
	return nil
}

func init() {
	parseCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "output format: text, json or yaml (default from config)")
}
