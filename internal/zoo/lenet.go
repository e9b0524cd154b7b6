package zoo

import (
	"fmt"

	"github.com/born-ml/scope/internal/nn"
	"github.com/born-ml/scope/internal/tensor"
)

// buildLeNet5 assembles the LeNet-5 layout (LeCun et al., 1998) adapted
// to the dataset's input shape: two conv/pool stages followed by three
// fully connected layers.
func buildLeNet5(in tensor.Shape, classes int) (*nn.Network, error) {
	if len(in) != 3 {
		return nil, fmt.Errorf("lenet5 expects a [C,H,W] input, got %v", in)
	}

	net := nn.NewNetwork("lenet5",
		nn.NewConv2D("conv1", in[0], 6, 5, 5, 1, 0, true),
		nn.NewReLU("relu1"),
		nn.NewMaxPool2D("pool1", 2, 2),
		nn.NewConv2D("conv2", 6, 16, 5, 5, 1, 0, true),
		nn.NewReLU("relu2"),
		nn.NewMaxPool2D("pool2", 2, 2),
		nn.NewFlatten("flatten"),
	)

	// The first fully connected fan-in depends on the input resolution
	// (256 for 28x28 inputs).
	flat, err := net.OutputShape(in)
	if err != nil {
		return nil, err
	}

	net.Add(nn.NewLinear("fc1", flat[0], 120, true))
	net.Add(nn.NewReLU("relu3"))
	net.Add(nn.NewLinear("fc2", 120, 84, true))
	net.Add(nn.NewReLU("relu4"))
	net.Add(nn.NewLinear("fc3", 84, classes, true))
	return net, nil
}

// buildMLP assembles a three-layer perceptron over the flattened input.
func buildMLP(in tensor.Shape, classes int) (*nn.Network, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("mlp expects a non-scalar input, got %v", in)
	}

	return nn.NewNetwork("mlp",
		nn.NewFlatten("flatten"),
		nn.NewLinear("fc1", in.NumElements(), 512, true),
		nn.NewReLU("relu1"),
		nn.NewLinear("fc2", 512, 256, true),
		nn.NewReLU("relu2"),
		nn.NewLinear("fc3", 256, classes, true),
	), nil
}

// buildSimpleNet assembles a small 3x3-conv stack with two pooling
// stages, sized for 32x32-class inputs but shape-agnostic.
func buildSimpleNet(in tensor.Shape, classes int) (*nn.Network, error) {
	if len(in) != 3 {
		return nil, fmt.Errorf("simplenet expects a [C,H,W] input, got %v", in)
	}

	net := nn.NewNetwork("simplenet",
		nn.NewConv2D("conv1", in[0], 32, 3, 3, 1, 1, true),
		nn.NewReLU("relu1"),
		nn.NewConv2D("conv2", 32, 32, 3, 3, 1, 1, true),
		nn.NewReLU("relu2"),
		nn.NewMaxPool2D("pool1", 2, 2),
		nn.NewConv2D("conv3", 32, 64, 3, 3, 1, 1, true),
		nn.NewReLU("relu3"),
		nn.NewConv2D("conv4", 64, 64, 3, 3, 1, 1, true),
		nn.NewReLU("relu4"),
		nn.NewMaxPool2D("pool2", 2, 2),
		nn.NewFlatten("flatten"),
	)

	flat, err := net.OutputShape(in)
	if err != nil {
		return nil, err
	}

	net.Add(nn.NewLinear("fc1", flat[0], 512, true))
	net.Add(nn.NewReLU("relu5"))
	net.Add(nn.NewLinear("fc2", 512, classes, true))
	return net, nil
}
