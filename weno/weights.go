package weno

import (
	"math"

	"github.com/oceandyn/gocean/utils"
)

/*
Nonlinear weight blending.

JS:  alpha_w = C_w / (beta_w + eps)^eta
Z:   tau5 = |beta_0 - beta_2|
     alpha_w = C_w * (1 + (tau5 / (beta_w + eps))^eta)

followed by normalization. The output is a convex combination for all
finite inputs: each weight is in [0,1] and they sum to one up to rounding.
For a constant stencil all beta vanish and the weights reduce to the
linear base weights C_w.
*/
func blendWeights(blend Blending, order int, beta [3]float64) (w [3]float64) {
	var (
		c     = optimalWeights(order)
		nw    = windowSize(order)
		alpha [3]float64
		sum   float64
	)
	switch blend {
	case Z:
		tau := math.Abs(beta[0] - beta[nw-1])
		for k := 0; k < nw; k++ {
			r := tau / (beta[k] + epsilon)
			alpha[k] = c[k] * (1 + utils.POW(r, eta))
		}
	default:
		for k := 0; k < nw; k++ {
			alpha[k] = c[k] / utils.POW(beta[k]+epsilon, eta)
		}
	}
	for k := 0; k < nw; k++ {
		sum += alpha[k]
	}
	for k := 0; k < nw; k++ {
		w[k] = alpha[k] / sum
	}
	return
}
