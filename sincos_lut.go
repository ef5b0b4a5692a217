// sincos_lut.go - fast sine lookup table for per-cell eigenmode evaluation.
//
// Adapted from the audio engine's oscillator sine table: the eigenmode
// generator evaluates sin() twice per grid cell on every dirty update,
// the same per-sample-in-a-hot-loop shape that originally motivated a
// table instead of calling math.Sin directly.

package chladni

import "math"

const (
	sinLUTSize  = 8192
	sinLUTMask  = sinLUTSize - 1
	twoPi       = 2 * math.Pi
	sinLUTScale = float32(sinLUTSize) / twoPi
)

var sinLUT [sinLUTSize]float32

func init() {
	for i := 0; i < sinLUTSize; i++ {
		phase := float64(i) * twoPi / float64(sinLUTSize)
		sinLUT[i] = float32(math.Sin(phase))
	}
}

// fastSin returns sin(phase) using the lookup table with linear
// interpolation. Any finite phase is accepted; it is wrapped into
// [0, 2π) first.
func fastSin(phase float32) float32 {
	wrapped := math.Mod(float64(phase), twoPi)
	if wrapped < 0 {
		wrapped += twoPi
	}
	phase = float32(wrapped)

	indexF := phase * sinLUTScale
	index := int(indexF)
	frac := indexF - float32(index)

	index &= sinLUTMask
	nextIndex := (index + 1) & sinLUTMask

	return sinLUT[index] + frac*(sinLUT[nextIndex]-sinLUT[index])
}
