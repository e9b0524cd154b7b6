package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scope/internal/tensor"
)

// scenarioParams builds a (4 out-channels, 3 in-channels, 3x3 kernel)
// weight tensor with known per-channel magnitudes plus a 1-D bias:
// channel 0 all zeros, channel 1 all 2s, channel 2 all 1s, channel 3
// all 3s.
func scenarioParams(t *testing.T) map[string]*tensor.RawTensor {
	t.Helper()

	const rest = 3 * 3 * 3
	data := make([]float32, 4*rest)
	fill := []float32{0, 2, 1, 3}
	for c, v := range fill {
		for i := 0; i < rest; i++ {
			data[c*rest+i] = v
		}
	}

	weight, err := tensor.FromFloat32(data, tensor.Shape{4, 3, 3, 3})
	require.NoError(t, err)
	bias, err := tensor.FromFloat32([]float32{1, 2, 3, 4}, tensor.Shape{4})
	require.NoError(t, err)

	return map[string]*tensor.RawTensor{
		"conv1.weight": weight,
		"conv1.bias":   bias,
	}
}

func TestFilterMagnitudes_Unsorted(t *testing.T) {
	mags, err := FilterMagnitudes(scenarioParams(t), "conv1.weight", false)
	require.NoError(t, err)

	// Channel order preserved.
	assert.Equal(t, []float64{0, 2, 1, 3}, mags)
}

func TestFilterMagnitudes_Sorted(t *testing.T) {
	mags, err := FilterMagnitudes(scenarioParams(t), "conv1.weight", true)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 2, 3}, mags)
}

func TestFilterMagnitudes_Length(t *testing.T) {
	params := scenarioParams(t)

	for _, sorted := range []bool{false, true} {
		mags, err := FilterMagnitudes(params, "conv1.weight", sorted)
		require.NoError(t, err)
		// One magnitude per output channel, sorted or not.
		assert.Len(t, mags, 4)
	}
}

func TestFilterMagnitudes_SortIdempotent(t *testing.T) {
	params := scenarioParams(t)

	once, err := FilterMagnitudes(params, "conv1.weight", true)
	require.NoError(t, err)
	twice, err := FilterMagnitudes(params, "conv1.weight", true)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestFilterMagnitudes_NegativeWeights(t *testing.T) {
	weight, err := tensor.FromFloat32([]float32{-1, -3, 2, 2}, tensor.Shape{2, 2})
	require.NoError(t, err)
	params := map[string]*tensor.RawTensor{"fc.weight": weight}

	mags, err := FilterMagnitudes(params, "fc.weight", false)
	require.NoError(t, err)

	// Mean of absolute values, not of raw values.
	assert.Equal(t, []float64{2, 2}, mags)
}

func TestFilterMagnitudes_MissingParameter(t *testing.T) {
	_, err := FilterMagnitudes(scenarioParams(t), "conv9.weight", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParameterNotFound)
}

func TestFilterMagnitudes_BiasRejected(t *testing.T) {
	_, err := FilterMagnitudes(scenarioParams(t), "conv1.bias", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooFewDims)
}

func TestRankFilters(t *testing.T) {
	ranks, err := RankFilters(scenarioParams(t), "conv1.weight")
	require.NoError(t, err)

	require.Len(t, ranks, 4)
	assert.Equal(t, []FilterRank{
		{Channel: 0, Magnitude: 0},
		{Channel: 2, Magnitude: 1},
		{Channel: 1, Magnitude: 2},
		{Channel: 3, Magnitude: 3},
	}, ranks)
}

func TestRankFilters_Errors(t *testing.T) {
	params := scenarioParams(t)

	_, err := RankFilters(params, "missing")
	assert.ErrorIs(t, err, ErrParameterNotFound)

	_, err = RankFilters(params, "conv1.bias")
	assert.ErrorIs(t, err, ErrTooFewDims)
}

func TestWeightNames(t *testing.T) {
	params := scenarioParams(t)

	// Bias tensors are ineligible and must not be listed.
	assert.Equal(t, []string{"conv1.weight"}, WeightNames(params))
}

func TestFilterMagnitudes_Float64(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float64)
	require.NoError(t, err)
	data := raw.AsFloat64()
	copy(data, []float64{1, 1, 1, -2, 2, -2})

	mags, err := FilterMagnitudes(map[string]*tensor.RawTensor{"w": raw}, "w", false)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, mags)
}
