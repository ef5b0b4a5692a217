// fft.go - FFT magnitude spectrum used only by the live capture path.
//
// Grounded on emer-auditory's audio/mel.go (other_examples/d85eb1b3_emer-
// auditory__audio-mel.go.go), the one repo in the retrieved pack that
// computes an FFT over audio data, via gonum.org/v1/gonum/dsp/fourier's
// fourier.NewCmplxFFT(n).Coefficients(...). This package's real-valued
// input maps onto fourier.NewFFT's real-to-half-spectrum transform
// instead, avoiding the separate real/imaginary arrays mel.go manages by
// hand for its complex input. The analyser interface (ExtractFeatures,
// BandEnergies) never calls this itself — it always accepts an
// already-computed magnitude array, matching
// SIMULATION/CHLADNI/src/audio.rs's use of the Web Audio API's
// AnalyserNode, which performs the FFT host-side.

package chladni

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// magnitudesDB runs a real-input FFT over a Hann-windowed copy of
// samples (length must be a power of two) and returns dB magnitudes for
// bins [0, len(samples)/2], matching the half-spectrum an AnalyserNode
// exposes.
func magnitudesDB(samples []float32) []float32 {
	n := len(samples)
	if n == 0 || n&(n-1) != 0 {
		return nil
	}

	windowed := make([]float64, n)
	for i, s := range samples {
		window := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		windowed[i] = float64(s) * window
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, windowed)

	out := make([]float32, len(coeffs))
	for k, c := range coeffs {
		mag := math.Hypot(real(c), imag(c)) / float64(n)
		if mag < 1e-12 {
			mag = 1e-12
		}
		out[k] = float32(20 * math.Log10(mag))
	}
	return out
}
