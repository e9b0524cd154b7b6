package zoo

import (
	"fmt"

	"github.com/born-ml/scope/internal/nn"
	"github.com/born-ml/scope/internal/tensor"
)

// VGG feature-stage configurations (Simonyan & Zisserman, 2014).
// Positive entries are 3x3 convolution output channels, poolMarker is a
// 2x2 max pooling stage.
const poolMarker = -1

var vggConfigs = map[string][]int{
	"vgg11": {64, poolMarker, 128, poolMarker, 256, 256, poolMarker, 512, 512, poolMarker, 512, 512, poolMarker},
	"vgg16": {64, 64, poolMarker, 128, 128, poolMarker, 256, 256, 256, poolMarker, 512, 512, 512, poolMarker, 512, 512, 512, poolMarker},
}

func buildVGG11(in tensor.Shape, classes int) (*nn.Network, error) {
	return buildVGG("vgg11", in, classes)
}

func buildVGG16(in tensor.Shape, classes int) (*nn.Network, error) {
	return buildVGG("vgg16", in, classes)
}

// buildVGG assembles a VGG variant from its channel configuration: a
// stack of 3x3 same-padding convolutions with pooling stages, then the
// standard 4096-4096-classes classifier head.
func buildVGG(variant string, in tensor.Shape, classes int) (*nn.Network, error) {
	if len(in) != 3 {
		return nil, fmt.Errorf("%s expects a [C,H,W] input, got %v", variant, in)
	}

	cfg, ok := vggConfigs[variant]
	if !ok {
		panic(fmt.Sprintf("vgg: unknown variant %q", variant))
	}

	net := nn.NewNetwork(variant)
	channels := in[0]
	convs, pools := 0, 0
	for _, entry := range cfg {
		if entry == poolMarker {
			pools++
			net.Add(nn.NewMaxPool2D(fmt.Sprintf("pool%d", pools), 2, 2))
			continue
		}
		convs++
		net.Add(nn.NewConv2D(fmt.Sprintf("conv%d", convs), channels, entry, 3, 3, 1, 1, true))
		net.Add(nn.NewReLU(fmt.Sprintf("relu%d", convs)))
		channels = entry
	}
	net.Add(nn.NewFlatten("flatten"))

	flat, err := net.OutputShape(in)
	if err != nil {
		return nil, err
	}

	net.Add(nn.NewLinear("fc1", flat[0], 4096, true))
	net.Add(nn.NewReLU("relu_fc1"))
	net.Add(nn.NewLinear("fc2", 4096, 4096, true))
	net.Add(nn.NewReLU("relu_fc2"))
	net.Add(nn.NewLinear("fc3", 4096, classes, true))
	return net, nil
}
