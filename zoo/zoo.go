// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package zoo provides the public model-provider API for Scope.
//
// Example:
//
//	net, err := zoo.Build("vgg11", "imagenet", zoo.WithSeed(42))
//	if err != nil { ... }
//	input, _ := zoo.InputShape("imagenet") // [3 224 224]
package zoo

import (
	"github.com/born-ml/scope/internal/nn"
	"github.com/born-ml/scope/internal/tensor"
	"github.com/born-ml/scope/internal/zoo"
)

// Option configures Build.
type Option = zoo.Option

// WithSeed sets the weight-initialization seed (default 0).
func WithSeed(seed int64) Option {
	return zoo.WithSeed(seed)
}

// Build assembles the named architecture for the named dataset with
// deterministically initialized weights.
func Build(arch, dataset string, opts ...Option) (*nn.Network, error) {
	return zoo.Build(arch, dataset, opts...)
}

// Architectures returns the known architecture names, sorted.
func Architectures() []string {
	return zoo.Architectures()
}

// Datasets returns the known dataset identifiers, sorted.
func Datasets() []string {
	return zoo.Datasets()
}

// InputShape returns a dataset's representative batchless input shape.
func InputShape(dataset string) (tensor.Shape, error) {
	return zoo.InputShape(dataset)
}

// NumClasses returns a dataset's class count.
func NumClasses(dataset string) (int, error) {
	return zoo.NumClasses(dataset)
}
