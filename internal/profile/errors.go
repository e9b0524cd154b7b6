package profile

import "errors"

// Sentinel errors for the profiling operations. Callers match them with
// errors.Is to distinguish the failure classes.
var (
	// ErrParameterNotFound reports a weight-tensor name absent from the
	// model's named-parameter mapping.
	ErrParameterNotFound = errors.New("parameter not found")

	// ErrTooFewDims reports a tensor with fewer than two dimensions;
	// per-channel magnitude is undefined for such tensors (e.g. biases).
	ErrTooFewDims = errors.New("tensor has fewer than 2 dimensions")
)
