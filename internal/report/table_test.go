package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scope/internal/profile"
	"github.com/born-ml/scope/internal/tensor"
)

func sampleTable() *profile.Table {
	return &profile.Table{
		Network: "lenet5",
		Input:   tensor.Shape{1, 28, 28},
		Rows: []profile.LayerStats{
			{Name: "conv1", Kind: "conv", Attrs: "k=(5,5)",
				InputVolume: 784, OutputVolume: 3456, WeightVolume: 150, MACs: 86400},
			{Name: "fc1", Kind: "linear",
				InputVolume: 256, OutputVolume: 120, WeightVolume: 30720, MACs: 30720},
		},
		TotalInputVolume:  1040,
		TotalOutputVolume: 3576,
		TotalWeightVolume: 30870,
		TotalMACs:         117120,
	}
}

func TestTextTable_RenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextTable(&buf).RenderTable(sampleTable()))
	out := buf.String()

	assert.Contains(t, out, "lenet5  input=[1 28 28]")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "WEIGHT VOLUME")
	assert.Contains(t, out, "conv1")
	assert.Contains(t, out, "fc1")

	// Numbers carry thousands separators.
	assert.Contains(t, out, "86,400")
	assert.Contains(t, out, "30,720")
	assert.Contains(t, out, "Total weight volume: 30,870")
	assert.Contains(t, out, "Total MACs:          117,120")

	// One header, one rule, two rows, blank line, four totals.
	rows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "conv1") || strings.HasPrefix(line, "fc1") {
			rows++
		}
	}
	assert.Equal(t, 2, rows)
}

func TestTextTable_RenderTable_Empty(t *testing.T) {
	table := &profile.Table{Network: "pool-only", Input: tensor.Shape{3, 8, 8}}

	var buf bytes.Buffer
	require.NoError(t, NewTextTable(&buf).RenderTable(table))

	assert.Contains(t, buf.String(), "Total MACs:          0")
}

func TestTextTable_RenderMagnitudes(t *testing.T) {
	var buf bytes.Buffer
	tt := NewTextTable(&buf)

	require.NoError(t, tt.RenderMagnitudes("conv1.weight", []float64{0, 2, 1}, false))
	out := buf.String()
	assert.Contains(t, out, "conv1.weight  (3 filters)")
	assert.Contains(t, out, "channel    0  0.000000")
	assert.Contains(t, out, "channel    1  2.000000")

	buf.Reset()
	require.NoError(t, tt.RenderMagnitudes("conv1.weight", []float64{0, 1, 2}, true))
	assert.Contains(t, buf.String(), "rank    2  2.000000")
	assert.NotContains(t, buf.String(), "channel")
}

func TestTextTable_RenderRanks(t *testing.T) {
	ranks := []profile.FilterRank{
		{Channel: 2, Magnitude: 0.5},
		{Channel: 0, Magnitude: 1.25},
	}

	var buf bytes.Buffer
	require.NoError(t, NewTextTable(&buf).RenderRanks("conv1.weight", ranks))
	out := buf.String()

	assert.Contains(t, out, "conv1.weight  (2 filters, ascending)")
	assert.Contains(t, out, "rank    0  channel    2  0.500000")
	assert.Contains(t, out, "rank    1  channel    0  1.250000")
}
