// Package profile computes per-layer statistics and filter-magnitude
// rankings over a model.
//
// Both entry points are pure functions over read-only inputs:
//   - Collect walks a network's layers for a fixed input shape and
//     produces one statistics row per weighted layer plus aggregates.
//   - FilterMagnitudes reduces one weight tensor to per-output-channel
//     L1-style magnitudes.
package profile

import (
	"fmt"

	"github.com/born-ml/scope/internal/nn"
	"github.com/born-ml/scope/internal/tensor"
)

// LayerStats describes one weighted layer of a network for a fixed
// input shape. Immutable once computed.
type LayerStats struct {
	// Name is the layer's name within its network.
	Name string

	// Kind is the layer type ("conv" or "linear").
	Kind string

	// Attrs is a compact attribute descriptor used as a grouping key,
	// e.g. "k=(3,3)" for a convolution. Empty for linear layers.
	Attrs string

	// InputVolume is the element count of the feature map entering the
	// layer (batch excluded).
	InputVolume int64

	// OutputVolume is the element count of the feature map the layer
	// produces (batch excluded).
	OutputVolume int64

	// WeightVolume is the element count of the layer's weight tensor.
	WeightVolume int64

	// MACs is the multiply-accumulate count of one forward pass through
	// the layer: OutputVolume * kh * kw * in_channels for convolutions,
	// in_features * out_features for fully connected layers.
	MACs int64
}

// Table is the ordered per-layer statistics of one network, with
// aggregate sums over all rows. Recomputed on demand, never persisted.
type Table struct {
	// Network is the profiled network's name.
	Network string

	// Input is the representative input shape the table was computed for.
	Input tensor.Shape

	// Rows holds one entry per weighted layer, in execution order.
	Rows []LayerStats

	TotalInputVolume  int64
	TotalOutputVolume int64
	TotalWeightVolume int64
	TotalMACs         int64
}

// Filter returns the sub-table of rows whose attribute descriptor
// equals attrs, preserving execution order, with aggregates recomputed
// over the kept rows. The descriptor is a stable equality key, so
// "k=(3,3)" selects exactly the 3x3-kernel convolutions.
func (t *Table) Filter(attrs string) *Table {
	filtered := &Table{
		Network: t.Network,
		Input:   t.Input.Clone(),
	}
	for _, row := range t.Rows {
		if row.Attrs != attrs {
			continue
		}
		filtered.Rows = append(filtered.Rows, row)
		filtered.TotalInputVolume += row.InputVolume
		filtered.TotalOutputVolume += row.OutputVolume
		filtered.TotalWeightVolume += row.WeightVolume
		filtered.TotalMACs += row.MACs
	}
	return filtered
}

// Collect walks the network's layers in execution order for the given
// input shape and produces the statistics table.
//
// Only convolutional and fully connected layers contribute rows; layers
// without weight tensors (pooling, activations, flatten) advance the
// propagated shape but are excluded by construction. Any shape-inference
// failure aborts the collection: either a full table is produced or none.
func Collect(net *nn.Network, input tensor.Shape) (*Table, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("input shape: %w", err)
	}

	table := &Table{
		Network: net.Name(),
		Input:   input.Clone(),
	}

	shape := input
	for _, layer := range net.Layers() {
		out, err := layer.OutputShape(shape)
		if err != nil {
			return nil, fmt.Errorf("evaluate %s: %w", layer.Name(), err)
		}

		if row, ok := layerRow(layer, shape, out); ok {
			table.Rows = append(table.Rows, row)
			table.TotalInputVolume += row.InputVolume
			table.TotalOutputVolume += row.OutputVolume
			table.TotalWeightVolume += row.WeightVolume
			table.TotalMACs += row.MACs
		}

		shape = out
	}

	return table, nil
}

// layerRow builds the statistics row for one layer, or reports false
// for layers without a weight tensor.
func layerRow(layer nn.Layer, in, out tensor.Shape) (LayerStats, bool) {
	switch l := layer.(type) {
	case *nn.Conv2D:
		k := l.KernelSize()
		weightVolume := int64(l.Weight().NumElements())
		outputVolume := int64(out.NumElements())
		// MACs = output elements x per-element reuse (kh*kw*in_channels),
		// which equals weight volume x output spatial positions.
		macs := outputVolume * int64(k[0]*k[1]*l.InChannels())
		return LayerStats{
			Name:         l.Name(),
			Kind:         l.Kind().String(),
			Attrs:        fmt.Sprintf("k=(%d,%d)", k[0], k[1]),
			InputVolume:  int64(in.NumElements()),
			OutputVolume: outputVolume,
			WeightVolume: weightVolume,
			MACs:         macs,
		}, true
	case *nn.Linear:
		weightVolume := int64(l.Weight().NumElements())
		return LayerStats{
			Name:         l.Name(),
			Kind:         l.Kind().String(),
			InputVolume:  int64(in.NumElements()),
			OutputVolume: int64(out.NumElements()),
			WeightVolume: weightVolume,
			// One accumulation per weight applied to each output element.
			MACs: weightVolume,
		}, true
	default:
		return LayerStats{}, false
	}
}
