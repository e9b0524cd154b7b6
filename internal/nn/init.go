package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/scope/internal/tensor"
)

// XavierFill fills t with Xavier (Glorot) uniform values.
//
// Values are drawn from U(-bound, bound) with
// bound = sqrt(6/(fan_in + fan_out)). This keeps weight magnitudes in a
// realistic range so magnitude rankings over freshly built models
// resemble rankings over trained ones.
func XavierFill(rng *rand.Rand, fanIn, fanOut int, t *tensor.RawTensor) {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	data := t.AsFloat32()
	for i := range data {
		data[i] = float32((rng.Float64()*2.0 - 1.0) * bound)
	}
}

// ZeroFill fills t with zeros. Commonly used for bias tensors.
func ZeroFill(t *tensor.RawTensor) {
	data := t.AsFloat32()
	for i := range data {
		data[i] = 0
	}
}

// InitNetwork applies Xavier initialization to every weight tensor in
// the network and zeros every bias, using fan-in/fan-out derived from
// each layer's geometry.
func InitNetwork(rng *rand.Rand, n *Network) {
	for _, layer := range n.Layers() {
		switch l := layer.(type) {
		case *Conv2D:
			k := l.KernelSize()
			fanIn := l.InChannels() * k[0] * k[1]
			fanOut := l.OutChannels() * k[0] * k[1]
			XavierFill(rng, fanIn, fanOut, l.Weight())
		case *Linear:
			XavierFill(rng, l.InFeatures(), l.OutFeatures(), l.Weight())
		}
		for _, p := range layer.Parameters() {
			if p.Name() == "bias" {
				ZeroFill(p.Tensor())
			}
		}
	}
}
