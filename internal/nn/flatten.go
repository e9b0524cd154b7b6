package nn

import (
	"fmt"

	"github.com/born-ml/scope/internal/tensor"
)

// Flatten collapses any input shape to a single feature dimension.
//
// It models the reshape between the convolutional and fully connected
// stages of a network: [C, H, W] -> [C*H*W].
type Flatten struct {
	name string
}

// NewFlatten creates a new Flatten layer.
func NewFlatten(name string) *Flatten {
	return &Flatten{name: name}
}

// Name returns the layer name.
func (f *Flatten) Name() string {
	return f.name
}

// Kind returns KindFlatten.
func (f *Flatten) Kind() Kind {
	return KindFlatten
}

// OutputShape returns the 1D shape holding all input elements.
func (f *Flatten) OutputShape(input tensor.Shape) (tensor.Shape, error) {
	if len(input) == 0 {
		return nil, fmt.Errorf("%w: flatten %q expects a non-scalar input",
			ErrShapeMismatch, f.name)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return tensor.Shape{input.NumElements()}, nil
}

// Parameters returns an empty slice; Flatten has no parameters.
func (f *Flatten) Parameters() []*Parameter {
	return []*Parameter{}
}

// String returns a string representation of the layer.
func (f *Flatten) String() string {
	return "Flatten()"
}
