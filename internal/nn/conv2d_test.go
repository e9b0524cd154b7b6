package nn

import (
	"errors"
	"testing"

	"github.com/born-ml/scope/internal/tensor"
)

// TestConv2D_Creation tests Conv2D layer creation.
func TestConv2D_Creation(t *testing.T) {
	conv := NewConv2D("conv1", 1, 6, 5, 5, 1, 0, true)

	if conv.InChannels() != 1 {
		t.Errorf("Expected in_channels=1, got %d", conv.InChannels())
	}
	if conv.OutChannels() != 6 {
		t.Errorf("Expected out_channels=6, got %d", conv.OutChannels())
	}

	kernelSize := conv.KernelSize()
	if kernelSize[0] != 5 || kernelSize[1] != 5 {
		t.Errorf("Expected kernel_size=[5,5], got %v", kernelSize)
	}

	// Check weight shape: [6, 1, 5, 5]
	expectedShape := tensor.Shape{6, 1, 5, 5}
	if !conv.Weight().Shape().Equal(expectedShape) {
		t.Errorf("Weight shape: expected %v, got %v", expectedShape, conv.Weight().Shape())
	}

	params := conv.Parameters()
	if len(params) != 2 {
		t.Errorf("Expected 2 parameters (weight, bias), got %d", len(params))
	}

	// No bias
	convNoBias := NewConv2D("conv2", 1, 6, 5, 5, 1, 0, false)
	if len(convNoBias.Parameters()) != 1 {
		t.Errorf("Expected 1 parameter without bias, got %d", len(convNoBias.Parameters()))
	}
}

// TestConv2D_OutputShape tests shape inference across configurations.
func TestConv2D_OutputShape(t *testing.T) {
	tests := []struct {
		kernelH, kernelW     int
		stride, padding      int
		inputH, inputW       int
		expectedH, expectedW int
	}{
		{5, 5, 1, 0, 28, 28, 24, 24}, // MNIST typical
		{3, 3, 1, 1, 28, 28, 28, 28}, // same padding
		{3, 3, 2, 0, 28, 28, 13, 13}, // stride 2
		{2, 2, 2, 0, 4, 4, 2, 2},     // simple downsample
	}

	for _, tt := range tests {
		conv := NewConv2D("conv", 1, 1, tt.kernelH, tt.kernelW, tt.stride, tt.padding, false)
		out, err := conv.OutputShape(tensor.Shape{1, tt.inputH, tt.inputW})
		if err != nil {
			t.Errorf("OutputShape(kernel=%dx%d): unexpected error %v", tt.kernelH, tt.kernelW, err)
			continue
		}

		expected := tensor.Shape{1, tt.expectedH, tt.expectedW}
		if !out.Equal(expected) {
			t.Errorf("OutputShape(kernel=%dx%d, stride=%d, padding=%d, input=%dx%d): expected %v, got %v",
				tt.kernelH, tt.kernelW, tt.stride, tt.padding, tt.inputH, tt.inputW, expected, out)
		}
	}
}

// TestConv2D_OutputShapeErrors tests the shape-mismatch failures.
func TestConv2D_OutputShapeErrors(t *testing.T) {
	conv := NewConv2D("conv1", 3, 16, 5, 5, 1, 0, true)

	// Wrong rank
	if _, err := conv.OutputShape(tensor.Shape{784}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("1D input: expected ErrShapeMismatch, got %v", err)
	}

	// Wrong channel count
	if _, err := conv.OutputShape(tensor.Shape{1, 28, 28}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("channel mismatch: expected ErrShapeMismatch, got %v", err)
	}

	// Kernel larger than input
	if _, err := conv.OutputShape(tensor.Shape{3, 4, 4}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("kernel does not fit: expected ErrShapeMismatch, got %v", err)
	}
}

func TestLinear_OutputShape(t *testing.T) {
	fc := NewLinear("fc1", 256, 120, true)

	out, err := fc.OutputShape(tensor.Shape{256})
	if err != nil {
		t.Fatalf("OutputShape: unexpected error %v", err)
	}
	if !out.Equal(tensor.Shape{120}) {
		t.Errorf("OutputShape: expected [120], got %v", out)
	}

	if !fc.Weight().Shape().Equal(tensor.Shape{120, 256}) {
		t.Errorf("Weight shape: expected [120 256], got %v", fc.Weight().Shape())
	}

	if _, err := fc.OutputShape(tensor.Shape{16, 4, 4}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("3D input: expected ErrShapeMismatch, got %v", err)
	}
	if _, err := fc.OutputShape(tensor.Shape{128}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("feature mismatch: expected ErrShapeMismatch, got %v", err)
	}
}

func TestMaxPool2D_OutputShape(t *testing.T) {
	pool := NewMaxPool2D("pool1", 2, 2)

	out, err := pool.OutputShape(tensor.Shape{6, 24, 24})
	if err != nil {
		t.Fatalf("OutputShape: unexpected error %v", err)
	}
	if !out.Equal(tensor.Shape{6, 12, 12}) {
		t.Errorf("OutputShape: expected [6 12 12], got %v", out)
	}

	if len(pool.Parameters()) != 0 {
		t.Error("MaxPool2D should have no parameters")
	}

	if _, err := pool.OutputShape(tensor.Shape{256}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("1D input: expected ErrShapeMismatch, got %v", err)
	}
}

func TestFlatten_OutputShape(t *testing.T) {
	flatten := NewFlatten("flatten")

	out, err := flatten.OutputShape(tensor.Shape{16, 4, 4})
	if err != nil {
		t.Fatalf("OutputShape: unexpected error %v", err)
	}
	if !out.Equal(tensor.Shape{256}) {
		t.Errorf("OutputShape: expected [256], got %v", out)
	}
}

func TestReLU_OutputShape(t *testing.T) {
	relu := NewReLU("relu1")

	in := tensor.Shape{6, 24, 24}
	out, err := relu.OutputShape(in)
	if err != nil {
		t.Fatalf("OutputShape: unexpected error %v", err)
	}
	if !out.Equal(in) {
		t.Errorf("OutputShape: expected %v, got %v", in, out)
	}
}
