// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package profile provides the public profiling API for Scope.
//
// Two independent, pure operations:
//   - Collect: per-layer statistics (volumes, MACs) for a fixed input
//     shape, as an ordered table with aggregate sums
//   - FilterMagnitudes: per-output-channel L1-style magnitudes of one
//     named weight tensor, optionally sorted ascending
//
// Example:
//
//	net, _ := zoo.Build("lenet5", "mnist")
//	table, err := profile.Collect(net, tensor.Shape{1, 28, 28})
//	if err != nil { ... }
//	mags, err := profile.FilterMagnitudes(net.NamedParameters(), "conv1.weight", false)
package profile

import (
	"github.com/born-ml/scope/internal/nn"
	"github.com/born-ml/scope/internal/profile"
	"github.com/born-ml/scope/internal/tensor"
)

// Sentinel errors, matched with errors.Is.
var (
	// ErrParameterNotFound reports a weight-tensor name absent from the
	// model's named-parameter mapping.
	ErrParameterNotFound = profile.ErrParameterNotFound

	// ErrTooFewDims reports a tensor with fewer than two dimensions.
	ErrTooFewDims = profile.ErrTooFewDims
)

// LayerStats describes one weighted layer for a fixed input shape.
type LayerStats = profile.LayerStats

// Table is the ordered per-layer statistics of one network.
type Table = profile.Table

// FilterRank pairs an output channel with its magnitude.
type FilterRank = profile.FilterRank

// Collect produces the statistics table for a network and input shape.
func Collect(net *nn.Network, input tensor.Shape) (*Table, error) {
	return profile.Collect(net, input)
}

// FilterMagnitudes computes per-output-channel mean absolute weights of
// the named tensor, optionally sorted ascending.
func FilterMagnitudes(params map[string]*tensor.RawTensor, name string, sorted bool) ([]float64, error) {
	return profile.FilterMagnitudes(params, name, sorted)
}

// RankFilters returns channels with their magnitudes, sorted ascending
// by magnitude, preserving the channel permutation.
func RankFilters(params map[string]*tensor.RawTensor, name string) ([]FilterRank, error) {
	return profile.RankFilters(params, name)
}

// WeightNames returns the parameter names eligible for magnitude
// ranking, sorted.
func WeightNames(params map[string]*tensor.RawTensor) []string {
	return profile.WeightNames(params)
}
