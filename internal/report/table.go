// Package report renders profiling results.
//
// The computational packages know nothing about presentation; this
// package defines the capability interfaces (TableRenderer,
// ChartRenderer) and the built-in text and HTML implementations the CLI
// wires up.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/born-ml/scope/internal/profile"
)

// TableRenderer renders a statistics table.
type TableRenderer interface {
	RenderTable(t *profile.Table) error
}

// TextTable renders statistics as an aligned text grid with
// thousands-separated numbers and a totals footer.
type TextTable struct {
	w       io.Writer
	printer *message.Printer
}

// NewTextTable creates a text renderer writing to w.
func NewTextTable(w io.Writer) *TextTable {
	return &TextTable{
		w:       w,
		printer: message.NewPrinter(language.English),
	}
}

// RenderTable writes one row per layer plus the aggregate sums.
func (t *TextTable) RenderTable(table *profile.Table) error {
	fmt.Fprintf(t.w, "%s  input=%v\n\n", table.Network, table.Input)

	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tATTRS\tIN VOLUME\tOUT VOLUME\tWEIGHT VOLUME\tMACS")
	fmt.Fprintln(tw, "----\t----\t-----\t---------\t----------\t-------------\t----")
	for _, row := range table.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Name, row.Kind, row.Attrs,
			t.num(row.InputVolume), t.num(row.OutputVolume),
			t.num(row.WeightVolume), t.num(row.MACs))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(t.w, "\nTotal input volume:  %s\n", t.num(table.TotalInputVolume))
	fmt.Fprintf(t.w, "Total output volume: %s\n", t.num(table.TotalOutputVolume))
	fmt.Fprintf(t.w, "Total weight volume: %s\n", t.num(table.TotalWeightVolume))
	fmt.Fprintf(t.w, "Total MACs:          %s\n", t.num(table.TotalMACs))
	return nil
}

// RenderMagnitudes writes one magnitude per line. Unsorted vectors keep
// the channel index alignment, sorted ones are rank-ordered.
func (t *TextTable) RenderMagnitudes(name string, mags []float64, sorted bool) error {
	label := "channel"
	if sorted {
		label = "rank"
	}
	fmt.Fprintf(t.w, "%s  (%d filters)\n", name, len(mags))
	for i, m := range mags {
		fmt.Fprintf(t.w, "%s %4d  %.6f\n", label, i, m)
	}
	return nil
}

// RenderRanks writes (channel, magnitude) pairs in ascending magnitude
// order, preserving the permutation a plain sorted vector discards.
func (t *TextTable) RenderRanks(name string, ranks []profile.FilterRank) error {
	fmt.Fprintf(t.w, "%s  (%d filters, ascending)\n", name, len(ranks))
	for i, r := range ranks {
		fmt.Fprintf(t.w, "rank %4d  channel %4d  %.6f\n", i, r.Channel, r.Magnitude)
	}
	return nil
}

func (t *TextTable) num(v int64) string {
	return t.printer.Sprintf("%d", v)
}
