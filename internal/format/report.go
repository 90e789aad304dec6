// Package format renders level summaries in the supported output formats.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"

	"logsum/internal/summary"
)

const (
	levelFieldWidth = 10
	ruleWidth       = 50
)

// Options controls how a summary report is rendered.
type Options struct {
	// Source is the display name of the input file (base name, not path).
	Source string
	// Format selects the renderer: text, table, json, or jsonl.
	Format string
	// UseColor enables ANSI colors for the text format.
	UseColor bool
	// OutFile, when non-nil, is used for terminal width detection.
	OutFile *os.File
}

// WriteSummary writes the level summary to w in the requested format.
func WriteSummary(w io.Writer, sum summary.Summary, opts Options) error {
	switch strings.ToLower(opts.Format) {
	case "", "text":
		return writeSummaryText(w, sum, opts)
	case "table":
		return writeSummaryTable(w, sum, opts)
	case "json":
		return writeSummaryJSON(w, sum, opts)
	case "jsonl":
		return writeSummaryJSONL(w, sum)
	default:
		return fmt.Errorf("unsupported format: %s", opts.Format)
	}
}

func writeSummaryText(w io.Writer, sum summary.Summary, opts Options) error {
	if sum.IsEmpty() {
		_, err := fmt.Fprintln(w, "No valid log entries found.")
		return err
	}

	rule := strings.Repeat("━", ruleWidth)
	if _, err := fmt.Fprintf(w, "\n📊 Log Level Summary for '%s'\n", opts.Source); err != nil {
		return err
	}
	fmt.Fprintln(w, rule) //nolint:errcheck

	for _, entry := range sum.Sorted() {
		label := runewidth.FillRight(entry.Level, levelFieldWidth)
		if opts.UseColor {
			label = colorize(levelColor(entry.Level), label)
		}
		fmt.Fprintf(w, "%s: %d\n", label, entry.Count) //nolint:errcheck
	}

	fmt.Fprintln(w, rule) //nolint:errcheck
	_, err := fmt.Fprintf(w, "%s: %d\n\n", runewidth.FillRight("Total", levelFieldWidth), sum.Total())
	return err
}

func writeSummaryTable(w io.Writer, sum summary.Summary, opts Options) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)

	// Levels coerced from arbitrary JSON can be long; keep the column
	// within the terminal.
	levelWidth := determineWidth(opts.OutFile) - 16
	if levelWidth < 16 {
		levelWidth = 16
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: levelWidth},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignCenter},
	})

	tw.AppendHeader(table.Row{"Level", "Count"})
	for _, entry := range sum.Sorted() {
		tw.AppendRow(table.Row{entry.Level, entry.Count})
	}
	if sum.IsEmpty() {
		tw.AppendRow(table.Row{"(no entries)", 0})
	}
	tw.AppendFooter(table.Row{"Total", sum.Total()})

	_ = tw.Render()
	return nil
}

type summaryPayload struct {
	Source string               `json:"source"`
	Levels []summary.LevelCount `json:"levels"`
	Total  int                  `json:"total"`
}

func writeSummaryJSON(w io.Writer, sum summary.Summary, opts Options) error {
	payload := summaryPayload{
		Source: opts.Source,
		Levels: sum.Sorted(),
		Total:  sum.Total(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func writeSummaryJSONL(w io.Writer, sum summary.Summary) error {
	enc := json.NewEncoder(w)
	for _, entry := range sum.Sorted() {
		if err := enc.Encode(entry); err != nil {
			return err
		}
	}
	return nil
}
