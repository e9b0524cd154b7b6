package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/born-ml/scope/internal/profile"
)

// ChartRenderer renders per-layer and per-channel series as charts.
type ChartRenderer interface {
	// Bar renders one labeled integer series (per-layer volumes, MACs).
	Bar(title string, labels []string, values []int64) error

	// Line renders one float series against its index (magnitudes).
	Line(title string, values []float64) error
}

// HTMLReport accumulates charts into a single HTML page.
//
// The zero value is not usable; create with NewHTMLReport and call
// Close to flush the page.
type HTMLReport struct {
	w    io.Writer
	page *components.Page
}

// NewHTMLReport creates an HTML chart renderer writing to w.
func NewHTMLReport(w io.Writer) *HTMLReport {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	return &HTMLReport{w: w, page: page}
}

// Bar adds a bar chart of one integer series to the page.
func (h *HTMLReport) Bar(title string, labels []string, values []int64) error {
	if len(labels) != len(values) {
		return fmt.Errorf("bar %q: %d labels for %d values", title, len(labels), len(values))
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: v}
	}
	bar.SetXAxis(labels).AddSeries(title, data)

	h.page.AddCharts(bar)
	return nil
}

// Line adds a line chart of one float series to the page, indexed from 0.
func (h *HTMLReport) Line(title string, values []float64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	labels := make([]string, len(values))
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		labels[i] = fmt.Sprintf("%d", i)
		data[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(labels).AddSeries(title, data)

	h.page.AddCharts(line)
	return nil
}

// Close renders the accumulated page.
func (h *HTMLReport) Close() error {
	return h.page.Render(h.w)
}

// ProfileCharts renders the standard comparison charts for one
// statistics table: feature-map footprints, weight footprints, and
// compute per layer.
func ProfileCharts(c ChartRenderer, table *profile.Table) error {
	labels := make([]string, len(table.Rows))
	input := make([]int64, len(table.Rows))
	output := make([]int64, len(table.Rows))
	weights := make([]int64, len(table.Rows))
	macs := make([]int64, len(table.Rows))
	for i, row := range table.Rows {
		labels[i] = row.Name
		input[i] = row.InputVolume
		output[i] = row.OutputVolume
		weights[i] = row.WeightVolume
		macs[i] = row.MACs
	}

	if err := c.Bar("Input feature map volume", labels, input); err != nil {
		return err
	}
	if err := c.Bar("Output feature map volume", labels, output); err != nil {
		return err
	}
	if err := c.Bar("Weight volume", labels, weights); err != nil {
		return err
	}
	return c.Bar("MACs", labels, macs)
}
