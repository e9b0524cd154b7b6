package nn

import (
	"fmt"

	"github.com/born-ml/scope/internal/tensor"
)

// Conv2D is a 2D convolutional layer.
//
// Input shape:  [in_channels, height, width]
// Weight shape: [out_channels, in_channels, kernel_h, kernel_w]
// Bias shape:   [out_channels]
// Output shape: [out_channels, out_h, out_w]
//
// Where:
//
//	out_h = (height + 2*padding - kernel_h) / stride + 1
//	out_w = (width + 2*padding - kernel_w) / stride + 1
type Conv2D struct {
	name        string
	inChannels  int
	outChannels int
	kernelSize  [2]int
	stride      int
	padding     int
	useBias     bool

	weight *Parameter // [out_channels, in_channels, kernel_h, kernel_w]
	bias   *Parameter // [out_channels] or nil
}

// NewConv2D creates a new 2D convolutional layer with zero-valued
// weights. Callers initialize weights afterwards (see XavierFill).
//
// Parameters:
//   - name: Layer name, unique within its network
//   - inChannels: Number of input channels
//   - outChannels: Number of output channels (number of filters)
//   - kernelH, kernelW: Kernel dimensions
//   - stride: Stride for convolution (commonly 1 or 2)
//   - padding: Zero padding applied to the input (commonly 0, 1, 2)
//   - useBias: Whether to include a bias term
func NewConv2D(name string, inChannels, outChannels, kernelH, kernelW, stride, padding int, useBias bool) *Conv2D {
	if inChannels <= 0 || outChannels <= 0 {
		panic(fmt.Sprintf("conv2d: invalid channels in=%d, out=%d", inChannels, outChannels))
	}
	if kernelH <= 0 || kernelW <= 0 {
		panic(fmt.Sprintf("conv2d: invalid kernel size h=%d, w=%d", kernelH, kernelW))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("conv2d: invalid stride %d", stride))
	}
	if padding < 0 {
		panic(fmt.Sprintf("conv2d: invalid padding %d", padding))
	}

	weightShape := tensor.Shape{outChannels, inChannels, kernelH, kernelW}
	weight, err := tensor.NewRaw(weightShape, tensor.Float32)
	if err != nil {
		panic(err)
	}

	var bias *Parameter
	if useBias {
		biasTensor, err := tensor.NewRaw(tensor.Shape{outChannels}, tensor.Float32)
		if err != nil {
			panic(err)
		}
		bias = NewParameter("bias", biasTensor)
	}

	return &Conv2D{
		name:        name,
		inChannels:  inChannels,
		outChannels: outChannels,
		kernelSize:  [2]int{kernelH, kernelW},
		stride:      stride,
		padding:     padding,
		useBias:     useBias,
		weight:      NewParameter("weight", weight),
		bias:        bias,
	}
}

// Name returns the layer name.
func (c *Conv2D) Name() string {
	return c.name
}

// Kind returns KindConv.
func (c *Conv2D) Kind() Kind {
	return KindConv
}

// OutputShape infers the output shape for a [C, H, W] input.
func (c *Conv2D) OutputShape(input tensor.Shape) (tensor.Shape, error) {
	if len(input) != 3 {
		return nil, fmt.Errorf("%w: conv2d %q expects 3D input [C,H,W], got %v",
			ErrShapeMismatch, c.name, input)
	}
	if input[0] != c.inChannels {
		return nil, fmt.Errorf("%w: conv2d %q expects %d input channels, got %d",
			ErrShapeMismatch, c.name, c.inChannels, input[0])
	}

	outH := (input[1]+2*c.padding-c.kernelSize[0])/c.stride + 1
	outW := (input[2]+2*c.padding-c.kernelSize[1])/c.stride + 1
	if outH <= 0 || outW <= 0 {
		return nil, fmt.Errorf("%w: conv2d %q kernel (%d,%d) does not fit input %v with stride=%d padding=%d",
			ErrShapeMismatch, c.name, c.kernelSize[0], c.kernelSize[1], input, c.stride, c.padding)
	}

	return tensor.Shape{c.outChannels, outH, outW}, nil
}

// Parameters returns [weight, bias] if bias is present, otherwise [weight].
func (c *Conv2D) Parameters() []*Parameter {
	if c.useBias {
		return []*Parameter{c.weight, c.bias}
	}
	return []*Parameter{c.weight}
}

// Weight returns the weight tensor.
func (c *Conv2D) Weight() *tensor.RawTensor {
	return c.weight.Tensor()
}

// InChannels returns the number of input channels.
func (c *Conv2D) InChannels() int {
	return c.inChannels
}

// OutChannels returns the number of output channels.
func (c *Conv2D) OutChannels() int {
	return c.outChannels
}

// KernelSize returns the kernel size [height, width].
func (c *Conv2D) KernelSize() [2]int {
	return c.kernelSize
}

// Stride returns the stride.
func (c *Conv2D) Stride() int {
	return c.stride
}

// Padding returns the padding.
func (c *Conv2D) Padding() int {
	return c.padding
}

// String returns a string representation of the layer.
func (c *Conv2D) String() string {
	return fmt.Sprintf("Conv2D(in_channels=%d, out_channels=%d, kernel_size=(%d, %d), stride=%d, padding=%d, bias=%v)",
		c.inChannels, c.outChannels,
		c.kernelSize[0], c.kernelSize[1],
		c.stride, c.padding, c.useBias)
}
