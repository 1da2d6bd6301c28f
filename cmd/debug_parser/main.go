package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ovenreader/internal/parser"
	"ovenreader/internal/report"
)

var verbose = flag.Bool("v", false, "Print parser debug logs to stderr")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: debug_parser [-v] REPORT.txt")
		os.Exit(2)
	}
	path := flag.Arg(0)

	fmt.Println("=== OvenReader Line Trace ===")
	fmt.Printf("File: %s\n\n", path)

	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Error opening report: %v\n", err)
		os.Exit(1)
	}
	lines, err := parser.ReadLines(f)
	f.Close()
	if err != nil {
		fmt.Printf("Error reading report: %v\n", err)
		os.Exit(1)
	}

	// Replay the stage data through a machine of our own so each
	// transition can be printed next to the line that caused it
	machine := parser.NewStateMachine(nil)
	for i, line := range lines {
		kind := parser.Classify(i, line)
		fmt.Printf("%4d  %-12s %q\n", i+1, kind, line)
		if kind != parser.KindStageData {
			continue
		}

		ev, err := parser.NewStageEvent(i, line)
		if err != nil {
			fmt.Printf("      !! %v\n", err)
			continue
		}
		before := machine.GetContext().StageIndex
		if err := machine.ProcessEvent(ev); err != nil {
			fmt.Printf("      !! %v\n", err)
			continue
		}
		ctx := machine.GetContext()
		fmt.Printf("      %-6s marker=%d clock=%s  stage %d -> %d  state=%s  stages=%d\n",
			ev.Kind, ev.Marker, ev.Clock, before, ctx.StageIndex, ctx.State, len(ctx.Stages))
	}

	opts := []parser.Option{}
	if *verbose {
		opts = append(opts, parser.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	fmt.Println()
	rec, err := parser.New(opts...).Parse(path)
	if err != nil {
		fmt.Printf("Parse failed (%s): %v\n", parser.KindOf(err), err)
		os.Exit(1)
	}
	fmt.Print(report.Text(rec))
}
