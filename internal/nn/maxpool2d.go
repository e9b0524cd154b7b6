package nn

import (
	"fmt"

	"github.com/born-ml/scope/internal/tensor"
)

// MaxPool2D is a 2D max pooling layer.
//
// Max pooling reduces spatial dimensions without learnable parameters,
// so it never contributes a row to the statistics table.
//
// Input shape:  [channels, height, width]
// Output shape: [channels, out_h, out_w]
//
// Where:
//
//	out_h = (height - kernelSize) / stride + 1
//	out_w = (width - kernelSize) / stride + 1
type MaxPool2D struct {
	name       string
	kernelSize int
	stride     int
}

// NewMaxPool2D creates a new 2D max pooling layer.
//
// Common patterns:
//   - NewMaxPool2D(name, 2, 2): Standard 2x2 non-overlapping pooling
//   - NewMaxPool2D(name, 3, 2): Overlapping 3x3 pooling with stride 2
func NewMaxPool2D(name string, kernelSize, stride int) *MaxPool2D {
	if kernelSize <= 0 {
		panic(fmt.Sprintf("maxpool2d: invalid kernel size %d", kernelSize))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("maxpool2d: invalid stride %d", stride))
	}

	return &MaxPool2D{
		name:       name,
		kernelSize: kernelSize,
		stride:     stride,
	}
}

// Name returns the layer name.
func (m *MaxPool2D) Name() string {
	return m.name
}

// Kind returns KindMaxPool.
func (m *MaxPool2D) Kind() Kind {
	return KindMaxPool
}

// OutputShape infers the output shape for a [C, H, W] input.
func (m *MaxPool2D) OutputShape(input tensor.Shape) (tensor.Shape, error) {
	if len(input) != 3 {
		return nil, fmt.Errorf("%w: maxpool2d %q expects 3D input [C,H,W], got %v",
			ErrShapeMismatch, m.name, input)
	}

	outH := (input[1]-m.kernelSize)/m.stride + 1
	outW := (input[2]-m.kernelSize)/m.stride + 1
	if outH <= 0 || outW <= 0 {
		return nil, fmt.Errorf("%w: maxpool2d %q window %d does not fit input %v with stride=%d",
			ErrShapeMismatch, m.name, m.kernelSize, input, m.stride)
	}

	return tensor.Shape{input[0], outH, outW}, nil
}

// Parameters returns an empty slice; MaxPool2D has no parameters.
func (m *MaxPool2D) Parameters() []*Parameter {
	return []*Parameter{}
}

// KernelSize returns the pooling kernel size.
func (m *MaxPool2D) KernelSize() int {
	return m.kernelSize
}

// Stride returns the stride.
func (m *MaxPool2D) Stride() int {
	return m.stride
}

// String returns a string representation of the layer.
func (m *MaxPool2D) String() string {
	return fmt.Sprintf("MaxPool2D(kernel_size=%d, stride=%d)", m.kernelSize, m.stride)
}
