// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public layer-graph API for Scope.
//
// Networks are ordered layer containers with shape inference and
// named-parameter lookup, the introspection surface the profiler
// consumes:
//
//	net := nn.NewNetwork("tiny",
//	    nn.NewConv2D("conv1", 1, 6, 5, 5, 1, 0, true),
//	    nn.NewReLU("relu1"),
//	    nn.NewMaxPool2D("pool1", 2, 2),
//	    nn.NewFlatten("flatten"),
//	    nn.NewLinear("fc1", 864, 10, true),
//	)
//	out, err := net.OutputShape(tensor.Shape{1, 28, 28})
package nn

import (
	"github.com/born-ml/scope/internal/nn"
)

// ErrShapeMismatch is wrapped by every shape-inference failure.
var ErrShapeMismatch = nn.ErrShapeMismatch

// Layer is the base interface for all network components.
type Layer = nn.Layer

// Kind identifies a layer type.
type Kind = nn.Kind

// Supported layer kinds.
const (
	KindConv    Kind = nn.KindConv
	KindLinear  Kind = nn.KindLinear
	KindMaxPool Kind = nn.KindMaxPool
	KindReLU    Kind = nn.KindReLU
	KindFlatten Kind = nn.KindFlatten
)

// Parameter is a named weight tensor belonging to a layer.
type Parameter = nn.Parameter

// Network is an ordered container of layers forming one model.
type Network = nn.Network

// Conv2D is a 2D convolutional layer.
type Conv2D = nn.Conv2D

// Linear is a fully connected layer.
type Linear = nn.Linear

// MaxPool2D is a 2D max pooling layer.
type MaxPool2D = nn.MaxPool2D

// ReLU is the rectified linear activation.
type ReLU = nn.ReLU

// Flatten collapses any input shape to a single feature dimension.
type Flatten = nn.Flatten

// NewNetwork creates a network from layers in execution order.
func NewNetwork(name string, layers ...Layer) *Network {
	return nn.NewNetwork(name, layers...)
}

// NewConv2D creates a 2D convolutional layer with zero-valued weights.
func NewConv2D(name string, inChannels, outChannels, kernelH, kernelW, stride, padding int, useBias bool) *Conv2D {
	return nn.NewConv2D(name, inChannels, outChannels, kernelH, kernelW, stride, padding, useBias)
}

// NewLinear creates a fully connected layer with zero-valued weights.
func NewLinear(name string, inFeatures, outFeatures int, useBias bool) *Linear {
	return nn.NewLinear(name, inFeatures, outFeatures, useBias)
}

// NewMaxPool2D creates a 2D max pooling layer.
func NewMaxPool2D(name string, kernelSize, stride int) *MaxPool2D {
	return nn.NewMaxPool2D(name, kernelSize, stride)
}

// NewReLU creates a ReLU activation layer.
func NewReLU(name string) *ReLU {
	return nn.NewReLU(name)
}

// NewFlatten creates a Flatten layer.
func NewFlatten(name string) *Flatten {
	return nn.NewFlatten(name)
}
