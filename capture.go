// capture.go - live microphone capture and analysis (§6 audio interface).
//
// Backend-pair structure adapted from the teacher's audio output split
// (audio_backend_oto.go / audio_backend_headless.go): a real backend
// behind `!headless` and a no-op twin behind `headless`, selected by
// build tag rather than runtime configuration.

package chladni

import (
	"sync"

	"github.com/charmbracelet/log"
)

const (
	captureFFTSize   = 2048
	captureSmoothing = 0.8
)

// captureBackend is the minimal device-facing surface Analyzer needs.
// The real implementation (capture_portaudio.go) opens the default
// input device via portaudio; the headless implementation
// (capture_headless.go) starts successfully but never delivers samples,
// so tests and CI can exercise Analyzer without real hardware.
type captureBackend interface {
	open(sampleRateHz int, onSamples func([]float32)) error
	close()
}

// Analyzer turns a live microphone stream into the driver features C8
// consumes: dominant frequency, RMS, and four band energies. It owns an
// FFT-size ring buffer of raw samples and an exponentially smoothed
// magnitude spectrum, mirroring a Web Audio AnalyserNode configured with
// fftSize=2048 and smoothingTimeConstant=0.8.
type Analyzer struct {
	mu sync.Mutex

	backend      captureBackend
	sampleRateHz float32
	active       bool

	timeWindow []float32 // latest captureFFTSize samples, newest at the end
	smoothedDB []float32 // smoothed FFT magnitudes in dB
}

// NewAnalyzer constructs an Analyzer bound to the platform capture
// backend (portaudio when built without the headless tag, a no-op
// stand-in otherwise).
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		backend:    newCaptureBackend(),
		timeWindow: make([]float32, captureFFTSize),
	}
}

// StartMicrophone opens the default input device and begins feeding
// this Analyzer. It returns ErrCaptureUnavailable if the device cannot
// be opened.
func (a *Analyzer) StartMicrophone(sampleRateHz int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.backend.open(sampleRateHz, a.onSamples); err != nil {
		log.Error("audio capture device unavailable", "err", err)
		return ErrCaptureUnavailable
	}
	a.sampleRateHz = float32(sampleRateHz)
	a.active = true
	log.Info("audio capture started", "sample_rate_hz", sampleRateHz)
	return nil
}

// Stop disconnects from the capture device.
func (a *Analyzer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.backend.close()
	a.active = false
	log.Info("audio capture stopped")
}

// IsActive reports whether the analyzer is currently attached to a
// capture device.
func (a *Analyzer) IsActive() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// onSamples is the backend callback: it appends newly captured samples
// to the ring window and refreshes the smoothed magnitude spectrum.
func (a *Analyzer) onSamples(samples []float32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	shiftIn(a.timeWindow, samples)

	fresh := magnitudesDB(a.timeWindow)
	if fresh == nil {
		return
	}
	if a.smoothedDB == nil || len(a.smoothedDB) != len(fresh) {
		a.smoothedDB = fresh
		return
	}
	for i, v := range fresh {
		a.smoothedDB[i] = captureSmoothing*a.smoothedDB[i] + (1-captureSmoothing)*v
	}
}

// shiftIn appends src to the end of dst, dropping the oldest
// len(src) samples to keep dst's length constant.
func shiftIn(dst, src []float32) {
	if len(src) >= len(dst) {
		copy(dst, src[len(src)-len(dst):])
		return
	}
	copy(dst, dst[len(src):])
	copy(dst[len(dst)-len(src):], src)
}

// GetDominantFrequency returns the strongest FFT bin's frequency, or
// false if the analyzer is inactive or the signal is below the noise
// floor.
func (a *Analyzer) GetDominantFrequency() (float32, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.active || a.smoothedDB == nil {
		return 0, false
	}
	if !hasDominant(a.smoothedDB) {
		return 0, false
	}
	return dominantFrequency(a.smoothedDB, a.sampleRateHz), true
}

// GetRMS returns the current RMS level in [0, 1], or 0 if inactive.
func (a *Analyzer) GetRMS() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.active {
		return 0
	}
	return computeRMS(a.timeWindow)
}

// GetBandEnergies returns the four band energies, or all zero if
// inactive.
func (a *Analyzer) GetBandEnergies() [4]float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.active || a.smoothedDB == nil {
		return [4]float32{}
	}
	return BandEnergies(a.smoothedDB, a.sampleRateHz)
}

// GetDriverFeatures returns (rms, bands) in one call, the bundle C8
// wires into solver/eigenmode driving inputs.
func (a *Analyzer) GetDriverFeatures() DriverFeatures {
	a.mu.Lock()
	active := a.active
	a.mu.Unlock()
	if !active {
		return DriverFeatures{}
	}
	return DriverFeatures{
		RMS:   a.GetRMS(),
		Bands: a.GetBandEnergies(),
	}
}
