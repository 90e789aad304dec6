// Package main provides the logsum CLI for summarizing JSONL log files by level.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"logsum/internal/format"
	"logsum/internal/loader"
	"logsum/internal/summary"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "logsum: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		formatFlag   string
		forceColor   bool
		forceNoColor bool
	)

	cmd := &cobra.Command{
		Use:           "logsum <file>",
		Short:         "Summarize a newline-delimited JSON log file by level",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if forceColor && forceNoColor {
				return errors.New("--color and --no-color cannot be used together")
			}

			result, err := loader.Load(args[0])
			if err != nil {
				return err
			}

			errs := cmd.ErrOrStderr()
			for _, warn := range result.Warnings {
				fmt.Fprintln(errs, warn) //nolint:errcheck
			}

			out := cmd.OutOrStdout()
			useColor := forceColor || (!forceNoColor && format.ShouldUseColor(out))
			outFile, _ := out.(*os.File)

			return format.WriteSummary(out, summary.Summarize(result.Records), format.Options{
				Source:   filepath.Base(args[0]),
				Format:   strings.ToLower(formatFlag),
				UseColor: useColor,
				OutFile:  outFile,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&formatFlag, "format", "text", "output format: text, table, json, or jsonl")
	flags.BoolVar(&forceColor, "color", false, "force-enable ANSI colors even when stdout is not a TTY")
	flags.BoolVar(&forceNoColor, "no-color", false, "disable ANSI colors regardless of terminal detection")

	return cmd
}
