package zoo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scope/internal/tensor"
)

func TestBuild_AllArchitectures(t *testing.T) {
	// Every architecture paired with a dataset it can process.
	pairs := map[string]string{
		"lenet5":    "mnist",
		"mlp":       "mnist",
		"simplenet": "cifar10",
		"alexnet":   "imagenet",
		"vgg11":     "imagenet",
		"vgg16":     "imagenet",
	}

	for arch, ds := range pairs {
		net, err := Build(arch, ds)
		require.NoError(t, err, "build %s for %s", arch, ds)

		in, err := InputShape(ds)
		require.NoError(t, err)
		classes, err := NumClasses(ds)
		require.NoError(t, err)

		out, err := net.OutputShape(in)
		require.NoError(t, err, "%s output shape", arch)
		assert.True(t, out.Equal(tensor.Shape{classes}),
			"%s: expected [%d] output, got %v", arch, classes, out)
	}
}

func TestBuild_LeNetFanIn(t *testing.T) {
	net, err := Build("lenet5", "mnist")
	require.NoError(t, err)

	// 28x28 input flattens to 16*4*4 = 256 before fc1.
	fc1 := net.NamedParameters()["fc1.weight"]
	require.NotNil(t, fc1)
	assert.True(t, fc1.Shape().Equal(tensor.Shape{120, 256}),
		"fc1.weight: got %v", fc1.Shape())
}

func TestBuild_UnknownArchitecture(t *testing.T) {
	_, err := Build("resnet50", "imagenet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown architecture")
}

func TestBuild_UnknownDataset(t *testing.T) {
	_, err := Build("lenet5", "svhn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dataset")
}

func TestBuild_IncompatibleInput(t *testing.T) {
	// AlexNet's 11x11/stride-4 stem cannot process 28x28 inputs.
	_, err := Build("alexnet", "mnist")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "build alexnet for mnist:"),
		"got %v", err)
}

func TestBuild_Deterministic(t *testing.T) {
	a, err := Build("lenet5", "mnist", WithSeed(7))
	require.NoError(t, err)
	b, err := Build("lenet5", "mnist", WithSeed(7))
	require.NoError(t, err)

	wa := a.NamedParameters()["conv1.weight"].AsFloat32()
	wb := b.NamedParameters()["conv1.weight"].AsFloat32()
	assert.Equal(t, wa, wb)

	c, err := Build("lenet5", "mnist", WithSeed(8))
	require.NoError(t, err)
	wc := c.NamedParameters()["conv1.weight"].AsFloat32()
	assert.NotEqual(t, wa, wc, "different seeds should give different weights")
}

func TestArchitectures(t *testing.T) {
	names := Architectures()
	assert.Equal(t, []string{"alexnet", "lenet5", "mlp", "simplenet", "vgg11", "vgg16"}, names)
}

func TestDatasets(t *testing.T) {
	assert.Equal(t, []string{"cifar10", "imagenet", "mnist"}, Datasets())

	in, err := InputShape("imagenet")
	require.NoError(t, err)
	assert.True(t, in.Equal(tensor.Shape{3, 224, 224}))

	classes, err := NumClasses("cifar10")
	require.NoError(t, err)
	assert.Equal(t, 10, classes)

	_, err = InputShape("coco")
	assert.Error(t, err)
	_, err = NumClasses("coco")
	assert.Error(t, err)
}
