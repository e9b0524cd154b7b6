// Package nn implements the layer graph the Scope profiler walks.
//
// This package provides the introspection surface of a model:
//   - Layer interface: name, kind, parameters, and shape inference
//   - Parameter: named weight tensors
//   - Conv2D, Linear: layers with weight tensors
//   - MaxPool2D, ReLU, Flatten: weightless layers
//   - Network: ordered layer container with named-parameter lookup
//
// Layers propagate batchless shapes ([C, H, W] for convolutional
// stages, [F] for fully connected stages). No values flow through the
// graph; Scope only needs the shapes a forward pass would produce.
package nn

import (
	"errors"

	"github.com/born-ml/scope/internal/tensor"
)

// ErrShapeMismatch is wrapped by every shape-inference failure.
var ErrShapeMismatch = errors.New("shape mismatch")

// Kind identifies a layer type.
type Kind int

// Supported layer kinds.
const (
	KindConv Kind = iota
	KindLinear
	KindMaxPool
	KindReLU
	KindFlatten
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindConv:
		return "conv"
	case KindLinear:
		return "linear"
	case KindMaxPool:
		return "maxpool"
	case KindReLU:
		return "relu"
	case KindFlatten:
		return "flatten"
	default:
		return "unknown"
	}
}

// Layer is the base interface for all network components.
//
// Every layer must report its identity, infer the output shape a
// forward pass would produce for a given input shape, and expose its
// parameters. Weightless layers return an empty parameter slice.
type Layer interface {
	// Name returns the layer's unique name within its network.
	Name() string

	// Kind returns the layer type.
	Kind() Kind

	// OutputShape infers the output shape for the given input shape.
	//
	// Returns an error wrapping ErrShapeMismatch if the input shape is
	// incompatible with the layer.
	OutputShape(input tensor.Shape) (tensor.Shape, error)

	// Parameters returns the layer's parameters in a stable order,
	// weight first. Returns an empty slice for weightless layers.
	Parameters() []*Parameter
}
