package profile

import (
	"fmt"
	"math"
	"sort"

	"github.com/born-ml/scope/internal/tensor"
)

// FilterRank pairs an output channel with its magnitude, so rankings
// can be reported without losing the channel correspondence.
type FilterRank struct {
	Channel   int
	Magnitude float64
}

// FilterMagnitudes computes the L1-style magnitude of every output
// channel of the named weight tensor: the tensor is viewed as
// (out_channels, rest) and each channel reduces to the mean of absolute
// values along the rest axis.
//
// With sorted=false the result is parallel-indexed to the tensor's
// output-channel axis. With sorted=true the values are returned in
// ascending order and the channel correspondence is lost; use
// RankFilters to keep it.
func FilterMagnitudes(params map[string]*tensor.RawTensor, name string, sorted bool) ([]float64, error) {
	mags, err := channelMagnitudes(params, name)
	if err != nil {
		return nil, err
	}
	if sorted {
		sort.Float64s(mags)
	}
	return mags, nil
}

// RankFilters returns every output channel of the named weight tensor
// with its magnitude, sorted ascending by magnitude (ties broken by
// channel index). This preserves the permutation that the sorted
// magnitude vector discards.
func RankFilters(params map[string]*tensor.RawTensor, name string) ([]FilterRank, error) {
	mags, err := channelMagnitudes(params, name)
	if err != nil {
		return nil, err
	}

	ranks := make([]FilterRank, len(mags))
	for i, m := range mags {
		ranks[i] = FilterRank{Channel: i, Magnitude: m}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Magnitude != ranks[j].Magnitude {
			return ranks[i].Magnitude < ranks[j].Magnitude
		}
		return ranks[i].Channel < ranks[j].Channel
	})
	return ranks, nil
}

// WeightNames returns the parameter names eligible for magnitude
// ranking (at least two dimensions), sorted lexicographically. This is
// the feed for a selection widget over a model's weight tensors.
func WeightNames(params map[string]*tensor.RawTensor) []string {
	var names []string
	for name, t := range params {
		if len(t.Shape()) >= 2 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// channelMagnitudes resolves the named tensor and reduces it to one
// mean-absolute value per output channel, in channel order.
func channelMagnitudes(params map[string]*tensor.RawTensor, name string) ([]float64, error) {
	t, ok := params[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParameterNotFound, name)
	}

	shape := t.Shape()
	if len(shape) < 2 {
		return nil, fmt.Errorf("%w: %q has shape %v", ErrTooFewDims, name, shape)
	}

	outChannels := shape[0]
	rest := t.NumElements() / outChannels

	mags := make([]float64, outChannels)
	switch t.DType() {
	case tensor.Float32:
		data := t.AsFloat32()
		for c := 0; c < outChannels; c++ {
			var sum float64
			for _, v := range data[c*rest : (c+1)*rest] {
				sum += math.Abs(float64(v))
			}
			mags[c] = sum / float64(rest)
		}
	case tensor.Float64:
		data := t.AsFloat64()
		for c := 0; c < outChannels; c++ {
			var sum float64
			for _, v := range data[c*rest : (c+1)*rest] {
				sum += math.Abs(v)
			}
			mags[c] = sum / float64(rest)
		}
	default:
		return nil, fmt.Errorf("parameter %q: unsupported dtype %s", name, t.DType())
	}

	return mags, nil
}
