package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Print writes the snapshot as a table.
// @param f: io.Writer used for writing the table
// @param style: pretty print table style. Use style.NewDefaultTableStyle() to get default one.
// @param withColor: whether to print the title with color
func (e *Engine) Print(f io.Writer, style *table.Style, withColor bool) {
	var write func(io.Writer, string, ...interface{})
	if withColor {
		write = color.New(color.FgHiYellow).FprintfFunc()
	} else {
		write = func(a io.Writer, format string, args ...interface{}) {
			fmt.Fprintf(a, format, args...)
		}
	}

	write(f, "---- %s %s Indicators ---\n", e.Symbol, e.Interval)

	t := table.NewWriter()
	t.SetOutputMirror(f)
	if style != nil {
		t.SetStyle(*style)
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 40, WidthMaxEnforcer: text.WrapText},
		{Number: 3, Align: text.AlignRight},
	})
	t.AppendHeader(table.Row{"id", "name", "value", "time", "ready", "samples"})

	for _, row := range e.Snapshot() {
		value, at := "-", "-"
		if !row.Current.Time.IsZero() {
			value = fmt.Sprintf("%.6f", row.Current.Value)
			at = row.Current.Time.Format(time.RFC3339)
		}
		t.AppendRow(table.Row{row.ID, row.Name, value, at, row.Ready, row.Samples})
	}

	t.Render()
}
