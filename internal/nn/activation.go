package nn

import (
	"github.com/born-ml/scope/internal/tensor"
)

// ReLU is the rectified linear activation.
//
// Activations are element-wise and shape-preserving, so the layer only
// exists to keep the network's execution order faithful to the model.
type ReLU struct {
	name string
}

// NewReLU creates a new ReLU activation layer.
func NewReLU(name string) *ReLU {
	return &ReLU{name: name}
}

// Name returns the layer name.
func (r *ReLU) Name() string {
	return r.name
}

// Kind returns KindReLU.
func (r *ReLU) Kind() Kind {
	return KindReLU
}

// OutputShape returns the input shape unchanged.
func (r *ReLU) OutputShape(input tensor.Shape) (tensor.Shape, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return input.Clone(), nil
}

// Parameters returns an empty slice; ReLU has no parameters.
func (r *ReLU) Parameters() []*Parameter {
	return []*Parameter{}
}

// String returns a string representation of the layer.
func (r *ReLU) String() string {
	return "ReLU()"
}
