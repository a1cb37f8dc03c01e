// SPDX-License-Identifier: MIT

// Command phigo evaluates φ-calculus program files by dataization.
//
// Each argument names a .phi file holding one object per line in the
// textual surface form. Files are evaluated concurrently, one
// single-threaded engine per file, and results print in argument order.
//
// Exit codes: 0 on success, 1 when any file fails to parse, 2 when any
// dataization fails.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/phigo/emu"
	"github.com/katalvlaran/phigo/perf"
)

const (
	exitOK      = 0
	exitParse   = 1
	exitDataize = 2
)

// result is the outcome of one file's evaluation.
type result struct {
	file  string
	value emu.Data
	stats *perf.Perf
	err   error
	code  int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run wires the command, evaluates the files, and reports the worst exit
// code.
func run(args []string, out, errOut io.Writer) int {
	var (
		dontDelete bool
		snapshots  bool
		showStats  bool
		verbose    bool
	)
	code := exitOK
	root := &cobra.Command{
		Use:           "phigo [file...]",
		Short:         "Evaluate φ-calculus programs by dataization",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, files []string) error {
			logger := zap.NewNop()
			if verbose || snapshots {
				dev, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer func() { _ = dev.Sync() }()
				logger = dev
			}
			results := make([]result, len(files))
			var g errgroup.Group
			for i, file := range files {
				g.Go(func() error {
					results[i] = evaluate(file, logger, dontDelete, snapshots)

					return nil
				})
			}
			_ = g.Wait()
			for _, r := range results {
				report(out, errOut, r, showStats)
				if r.code > code {
					code = r.code
				}
			}

			return nil
		},
	}
	root.Flags().BoolVar(&dontDelete, "dont-delete", false, "keep finished baskets in the pool")
	root.Flags().BoolVar(&snapshots, "snapshots", false, "log the engine dump after every cycle")
	root.Flags().BoolVar(&showStats, "stats", false, "print perf counters after each result")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(errOut, color.RedString("error: %v", err))

		return exitParse
	}

	return code
}

// evaluate reads, parses, and dataizes one program file.
func evaluate(file string, logger *zap.Logger, dontDelete, snapshots bool) result {
	text, err := os.ReadFile(file)
	if err != nil {
		return result{file: file, err: err, code: exitParse}
	}
	e, err := emu.Parse(string(text))
	if err != nil {
		return result{file: file, err: err, code: exitParse}
	}
	e.SetLogger(logger.With(zap.String("file", file)))
	e.Opt(emu.StopWhenStuck)
	e.Opt(emu.StopWhenTooManyCycles)
	if dontDelete {
		e.Opt(emu.DontDelete)
	}
	if snapshots {
		e.Opt(emu.LogSnapshots)
	}
	d, stats, err := e.Dataize()
	if err != nil {
		return result{file: file, err: err, code: exitDataize}
	}

	return result{file: file, value: d, stats: stats, code: exitOK}
}

// report prints one file's outcome.
func report(out, errOut io.Writer, r result, showStats bool) {
	if r.err != nil {
		fmt.Fprintf(errOut, "%s: %s\n", r.file, color.RedString("%v", r.err))

		return
	}
	fmt.Fprintf(out, "%s: %s (%d)\n", r.file, color.GreenString(r.value.Hex()), r.value)
	if showStats {
		fmt.Fprintln(out, r.stats)
	}
}
