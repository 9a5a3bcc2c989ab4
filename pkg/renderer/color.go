package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-dual-renderer/pkg/core"
)

// maxChannel keeps 256*value below 256
const maxChannel = 0.999

// QuantizeColor averages an accumulated linear color over samples, applies
// gamma 2 and maps each channel to floor(256*clamp(c, 0, 0.999)).
func QuantizeColor(colorSum core.Vec3, samples int) color.RGBA {
	scale := 1.0 / float64(max(samples, 1))
	c := colorSum.Multiply(scale).GammaCorrect(2.0)

	return color.RGBA{
		R: quantizeChannel(c.X),
		G: quantizeChannel(c.Y),
		B: quantizeChannel(c.Z),
		A: 255,
	}
}

func quantizeChannel(v float64) uint8 {
	if math.IsNaN(v) {
		v = 0
	}
	v = max(0, min(maxChannel, v))
	return uint8(256 * v)
}
