package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"ovenreader/internal/logging"
	"ovenreader/internal/parser"
	"ovenreader/internal/report"
)

const (
	replWelcome    = "\nWelcome to OvenReader!\n\n"
	replPrompt     = "Enter a valid file path or [Q] to quit: "
	replTerminated = "Session terminated."
)

// runREPL prompts for report paths on in until the user quits, input
// ends or ctx is cancelled. A bad report never ends the session.
func runREPL(ctx context.Context, in io.Reader, out io.Writer, p *parser.Parser, format report.Format) error {
	fmt.Fprint(out, replWelcome)

	lines, readErr := readLines(ctx, in)
	for {
		if ctx.Err() != nil {
			fmt.Fprintln(out, replTerminated)
			return nil
		}

		fmt.Fprint(out, replPrompt)
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			fmt.Fprintln(out, replTerminated)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				fmt.Fprintln(out, replTerminated)
				return readErr()
			}
			line = l
		}

		path := NormalizePath(line)
		if path == "" {
			continue
		}
		if strings.EqualFold(path, "q") {
			fmt.Fprintln(out, replTerminated)
			return nil
		}

		rec, err := p.Parse(path)
		if err != nil {
			kind := parser.KindOf(err)
			logging.Debug("report rejected", "path", path, "kind", kind.String(), "error", err)
			fmt.Fprintf(out, "Invalid input (%s): %v\n", kind, err)
			continue
		}
		logging.Info("report parsed", "path", path, "stages", len(rec.Stages()), "duration", rec.Duration())
		if err := report.Write(out, rec, format); err != nil {
			return err
		}
	}
}

// readLines scans in on its own goroutine so a blocked read never delays
// cancellation. The returned error is valid once lines is closed. A read
// still blocked when ctx ends is abandoned with the goroutine.
func readLines(ctx context.Context, in io.Reader) (<-chan string, func() error) {
	lines := make(chan string)
	var scanErr error
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr = scanner.Err()
	}()
	return lines, func() error { return scanErr }
}

// NormalizePath strips surrounding whitespace and one pair of matching
// quotes, as left behind when a path is pasted from a file manager.
func NormalizePath(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}
