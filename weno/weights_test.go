package weno

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// For all finite non-degenerate smoothness inputs the blended weights are
// a convex combination: each in [0,1], summing to one within 1e-10.
func TestWeightConvexity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, blend := range []Blending{JS, Z} {
		for trial := 0; trial < 200; trial++ {
			beta := [3]float64{
				math.Abs(rng.NormFloat64()) * math.Pow(10, float64(rng.Intn(12)-6)),
				math.Abs(rng.NormFloat64()) * math.Pow(10, float64(rng.Intn(12)-6)),
				math.Abs(rng.NormFloat64()) * math.Pow(10, float64(rng.Intn(12)-6)),
			}
			w := blendWeights(blend, 5, beta)
			var sum float64
			for k := 0; k < 3; k++ {
				assert.True(t, w[k] >= 0 && w[k] <= 1)
				sum += w[k]
			}
			assert.InDelta(t, 1, sum, 1.e-10)
		}
	}
}

// A vanishing stencil roughness reduces both blends to the linear base
// weights: the regularization keeps the division finite.
func TestZeroSmoothnessGivesOptimalWeights(t *testing.T) {
	c := optimalWeights(5)
	for _, blend := range []Blending{JS, Z} {
		w := blendWeights(blend, 5, [3]float64{0, 0, 0})
		for k := 0; k < 3; k++ {
			assert.InDelta(t, c[k], w[k], 1.e-12)
		}
	}
}

// With tau5 = 0 (beta0 == beta2) the amplification factor is identically
// one and the Z blend reverts to the linear base weights, whatever beta1.
func TestZDegeneratesWithoutTau(t *testing.T) {
	var (
		beta = [3]float64{0.3, 0.7, 0.3}
		c    = optimalWeights(5)
		wz   = blendWeights(Z, 5, beta)
	)
	var alpha [3]float64
	var sum float64
	for k := 0; k < 3; k++ {
		alpha[k] = c[k] // (1 + 0) amplification
		sum += alpha[k]
	}
	for k := 0; k < 3; k++ {
		assert.InDelta(t, alpha[k]/sum, wz[k], 1.e-12)
	}
}

// Equal roughness across windows (e.g. affine data) also recovers the
// linear weights under JS blending.
func TestEqualSmoothnessJS(t *testing.T) {
	var (
		c = optimalWeights(5)
		w = blendWeights(JS, 5, [3]float64{1, 1, 1})
	)
	for k := 0; k < 3; k++ {
		assert.InDelta(t, c[k], w[k], 1.e-12)
	}
}
