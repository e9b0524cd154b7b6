package nn

import (
	"fmt"

	"github.com/born-ml/scope/internal/tensor"
)

// Linear is a fully connected (dense) layer.
//
// Input shape:  [in_features]
// Weight shape: [out_features, in_features]
// Bias shape:   [out_features]
// Output shape: [out_features]
type Linear struct {
	name        string
	inFeatures  int
	outFeatures int
	useBias     bool

	weight *Parameter // [out_features, in_features]
	bias   *Parameter // [out_features] or nil
}

// NewLinear creates a new Linear layer with zero-valued weights.
// Callers initialize weights afterwards (see XavierFill).
func NewLinear(name string, inFeatures, outFeatures int, useBias bool) *Linear {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("linear: invalid features in=%d, out=%d", inFeatures, outFeatures))
	}

	weight, err := tensor.NewRaw(tensor.Shape{outFeatures, inFeatures}, tensor.Float32)
	if err != nil {
		panic(err)
	}

	var bias *Parameter
	if useBias {
		biasTensor, err := tensor.NewRaw(tensor.Shape{outFeatures}, tensor.Float32)
		if err != nil {
			panic(err)
		}
		bias = NewParameter("bias", biasTensor)
	}

	return &Linear{
		name:        name,
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		useBias:     useBias,
		weight:      NewParameter("weight", weight),
		bias:        bias,
	}
}

// Name returns the layer name.
func (l *Linear) Name() string {
	return l.name
}

// Kind returns KindLinear.
func (l *Linear) Kind() Kind {
	return KindLinear
}

// OutputShape infers the output shape for an [in_features] input.
func (l *Linear) OutputShape(input tensor.Shape) (tensor.Shape, error) {
	if len(input) != 1 {
		return nil, fmt.Errorf("%w: linear %q expects 1D input [features], got %v",
			ErrShapeMismatch, l.name, input)
	}
	if input[0] != l.inFeatures {
		return nil, fmt.Errorf("%w: linear %q expects %d input features, got %d",
			ErrShapeMismatch, l.name, l.inFeatures, input[0])
	}
	return tensor.Shape{l.outFeatures}, nil
}

// Parameters returns [weight, bias] if bias is present, otherwise [weight].
func (l *Linear) Parameters() []*Parameter {
	if l.useBias {
		return []*Parameter{l.weight, l.bias}
	}
	return []*Parameter{l.weight}
}

// Weight returns the weight tensor.
func (l *Linear) Weight() *tensor.RawTensor {
	return l.weight.Tensor()
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}

// String returns a string representation of the layer.
func (l *Linear) String() string {
	return fmt.Sprintf("Linear(in_features=%d, out_features=%d, bias=%v)",
		l.inFeatures, l.outFeatures, l.useBias)
}
