package nn

import (
	"github.com/born-ml/scope/internal/tensor"
)

// Parameter is a named weight tensor belonging to a layer.
//
// Scope reads parameters, it never trains them, so a Parameter is just
// the pairing of a name with a dense tensor.
type Parameter struct {
	name   string            // Parameter name (e.g. "weight", "bias")
	tensor *tensor.RawTensor // The parameter tensor
}

// NewParameter creates a parameter from an initialized tensor.
func NewParameter(name string, t *tensor.RawTensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.RawTensor {
	return p.tensor
}
