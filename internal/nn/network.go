package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/scope/internal/tensor"
)

// Network is an ordered container of layers forming one model.
//
// Layer order is execution order: each layer's output shape becomes the
// next layer's input shape. Layer names must be unique within a network
// because they key the named-parameter mapping.
//
// Example:
//
//	net := nn.NewNetwork("lenet5",
//	    nn.NewConv2D("conv1", 1, 6, 5, 5, 1, 0, true),
//	    nn.NewReLU("relu1"),
//	    nn.NewMaxPool2D("pool1", 2, 2),
//	)
type Network struct {
	name   string
	layers []Layer
}

// NewNetwork creates a network from layers in execution order.
//
// Panics if two layers share a name.
func NewNetwork(name string, layers ...Layer) *Network {
	n := &Network{name: name}
	for _, layer := range layers {
		n.Add(layer)
	}
	return n
}

// Name returns the network name.
func (n *Network) Name() string {
	return n.name
}

// Add appends a layer to the execution order.
//
// Panics if a layer with the same name already exists.
func (n *Network) Add(layer Layer) {
	for _, existing := range n.layers {
		if existing.Name() == layer.Name() {
			panic(fmt.Sprintf("network %q: duplicate layer name %q", n.name, layer.Name()))
		}
	}
	n.layers = append(n.layers, layer)
}

// Layers returns the layers in execution order.
func (n *Network) Layers() []Layer {
	return n.layers
}

// Len returns the number of layers.
func (n *Network) Len() int {
	return len(n.layers)
}

// OutputShape propagates an input shape through every layer and returns
// the final output shape.
//
// Returns the first layer's shape-inference error unchanged, so callers
// can match it against ErrShapeMismatch.
func (n *Network) OutputShape(input tensor.Shape) (tensor.Shape, error) {
	shape := input
	for _, layer := range n.layers {
		out, err := layer.OutputShape(shape)
		if err != nil {
			return nil, err
		}
		shape = out
	}
	return shape, nil
}

// NamedParameters returns every parameter keyed by "<layer>.<param>"
// (e.g. "conv1.weight", "fc3.bias").
func (n *Network) NamedParameters() map[string]*tensor.RawTensor {
	params := make(map[string]*tensor.RawTensor)
	for _, layer := range n.layers {
		for _, p := range layer.Parameters() {
			key := fmt.Sprintf("%s.%s", layer.Name(), p.Name())
			params[key] = p.Tensor()
		}
	}
	return params
}

// String returns a multi-line representation of the architecture.
func (n *Network) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s(\n", n.name)
	for _, layer := range n.layers {
		s, ok := layer.(fmt.Stringer)
		if !ok {
			fmt.Fprintf(&b, "  %s\n", layer.Name())
			continue
		}
		fmt.Fprintf(&b, "  %s: %s\n", layer.Name(), s.String())
	}
	b.WriteString(")")
	return b.String()
}
