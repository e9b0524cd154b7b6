package tensor

import "testing"

func TestShape_NumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1}, // scalar
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{16, 6, 5, 5}, 2400},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("NumElements(%v): expected %d, got %d", tt.shape, tt.expected, got)
		}
	}
}

func TestShape_Validate(t *testing.T) {
	if err := (Shape{2, 3, 4}).Validate(); err != nil {
		t.Errorf("Validate valid shape: unexpected error %v", err)
	}
	if err := (Shape{2, 0, 4}).Validate(); err == nil {
		t.Error("Validate zero dimension: expected error, got nil")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("Validate negative dimension: expected error, got nil")
	}
}

func TestShape_Equal(t *testing.T) {
	a := Shape{2, 3}
	if !a.Equal(Shape{2, 3}) {
		t.Error("expected shapes to be equal")
	}
	if a.Equal(Shape{3, 2}) {
		t.Error("expected shapes to differ")
	}
	if a.Equal(Shape{2, 3, 1}) {
		t.Error("expected shapes of different rank to differ")
	}
}

func TestShape_Clone(t *testing.T) {
	a := Shape{2, 3}
	b := a.Clone()
	b[0] = 99
	if a[0] != 2 {
		t.Error("Clone should not share memory with the original")
	}
}

func TestShape_ComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	expected := []int{12, 4, 1}
	for i := range expected {
		if strides[i] != expected[i] {
			t.Errorf("ComputeStrides: expected %v, got %v", expected, strides)
			break
		}
	}
}
