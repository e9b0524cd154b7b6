package zoo

import (
	"fmt"

	"github.com/born-ml/scope/internal/nn"
	"github.com/born-ml/scope/internal/tensor"
)

// buildAlexNet assembles the AlexNet layout (Krizhevsky et al., 2012):
// five convolutions with three pooling stages, then three fully
// connected layers. Needs large inputs (224x224 for imagenet).
func buildAlexNet(in tensor.Shape, classes int) (*nn.Network, error) {
	if len(in) != 3 {
		return nil, fmt.Errorf("alexnet expects a [C,H,W] input, got %v", in)
	}

	net := nn.NewNetwork("alexnet",
		nn.NewConv2D("conv1", in[0], 64, 11, 11, 4, 2, true),
		nn.NewReLU("relu1"),
		nn.NewMaxPool2D("pool1", 3, 2),
		nn.NewConv2D("conv2", 64, 192, 5, 5, 1, 2, true),
		nn.NewReLU("relu2"),
		nn.NewMaxPool2D("pool2", 3, 2),
		nn.NewConv2D("conv3", 192, 384, 3, 3, 1, 1, true),
		nn.NewReLU("relu3"),
		nn.NewConv2D("conv4", 384, 256, 3, 3, 1, 1, true),
		nn.NewReLU("relu4"),
		nn.NewConv2D("conv5", 256, 256, 3, 3, 1, 1, true),
		nn.NewReLU("relu5"),
		nn.NewMaxPool2D("pool3", 3, 2),
		nn.NewFlatten("flatten"),
	)

	flat, err := net.OutputShape(in)
	if err != nil {
		return nil, err
	}

	net.Add(nn.NewLinear("fc1", flat[0], 4096, true))
	net.Add(nn.NewReLU("relu6"))
	net.Add(nn.NewLinear("fc2", 4096, 4096, true))
	net.Add(nn.NewReLU("relu7"))
	net.Add(nn.NewLinear("fc3", 4096, classes, true))
	return net, nil
}
