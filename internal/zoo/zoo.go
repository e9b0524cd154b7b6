// Package zoo builds named model architectures for profiling.
//
// The zoo is Scope's model provider: given an architecture name and a
// dataset identifier it assembles an nn.Network with deterministic
// Xavier-initialized weights. Datasets fix the representative input
// shape and the class count of the final layer.
package zoo

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/born-ml/scope/internal/nn"
	"github.com/born-ml/scope/internal/tensor"
)

// builder assembles one architecture for a given input shape and class
// count. Builders fail when the architecture cannot process the shape
// (e.g. kernels larger than the feature maps).
type builder func(in tensor.Shape, classes int) (*nn.Network, error)

var architectures = map[string]builder{
	"lenet5":    buildLeNet5,
	"mlp":       buildMLP,
	"simplenet": buildSimpleNet,
	"alexnet":   buildAlexNet,
	"vgg11":     buildVGG11,
	"vgg16":     buildVGG16,
}

type dataset struct {
	input   tensor.Shape
	classes int
}

var datasets = map[string]dataset{
	"mnist":    {input: tensor.Shape{1, 28, 28}, classes: 10},
	"cifar10":  {input: tensor.Shape{3, 32, 32}, classes: 10},
	"imagenet": {input: tensor.Shape{3, 224, 224}, classes: 1000},
}

// Option configures Build.
type Option func(*config)

type config struct {
	seed int64
}

// WithSeed sets the seed for weight initialization. The default seed is
// 0, so repeated builds of the same architecture are identical.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// Architectures returns the known architecture names, sorted.
func Architectures() []string {
	names := make([]string, 0, len(architectures))
	for name := range architectures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Datasets returns the known dataset identifiers, sorted.
func Datasets() []string {
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InputShape returns the representative batchless input shape of a
// dataset.
func InputShape(name string) (tensor.Shape, error) {
	ds, ok := datasets[name]
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q (known: %v)", name, Datasets())
	}
	return ds.input.Clone(), nil
}

// NumClasses returns the class count of a dataset.
func NumClasses(name string) (int, error) {
	ds, ok := datasets[name]
	if !ok {
		return 0, fmt.Errorf("unknown dataset %q (known: %v)", name, Datasets())
	}
	return ds.classes, nil
}

// Build assembles the named architecture for the named dataset and
// initializes its weights.
func Build(arch, ds string, opts ...Option) (*nn.Network, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	build, ok := architectures[arch]
	if !ok {
		return nil, fmt.Errorf("unknown architecture %q (known: %v)", arch, Architectures())
	}
	d, ok := datasets[ds]
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q (known: %v)", ds, Datasets())
	}

	net, err := build(d.input, d.classes)
	if err != nil {
		return nil, fmt.Errorf("build %s for %s: %w", arch, ds, err)
	}

	//nolint:gosec // math/rand for weight initialization (not security-critical)
	nn.InitNetwork(rand.New(rand.NewSource(cfg.seed)), net)
	return net, nil
}
