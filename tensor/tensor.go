// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor types for Scope.
//
// The package defines the shapes and dense weight tensors the profiler
// reads:
//   - Shape: tensor dimensions with volume accounting
//   - RawTensor: dense numeric array with shape and type information
//   - DataType: runtime type of a tensor's elements
//
// Example:
//
//	w, err := tensor.FromFloat32(data, tensor.Shape{16, 6, 5, 5})
//	if err != nil { ... }
//	volume := w.NumElements() // 2400
package tensor

import (
	"github.com/born-ml/scope/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{16, 6, 5, 5} is a 4D tensor with 2400 elements.
type Shape = tensor.Shape

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// RawTensor is a dense numeric array with shape and type information.
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-initialized tensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromFloat32 creates a Float32 tensor holding a copy of data.
//
// Example:
//
//	bias, err := tensor.FromFloat32([]float32{0, 0, 0}, tensor.Shape{3})
func FromFloat32(data []float32, shape Shape) (*RawTensor, error) {
	return tensor.FromFloat32(data, shape)
}
