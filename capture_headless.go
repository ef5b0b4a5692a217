//go:build headless

// capture_headless.go - no-op capture backend for headless/CI builds.

package chladni

// headlessBackend opens "successfully" but never calls onSamples, so an
// Analyzer built in a headless environment reports active=true with an
// all-zero signal rather than failing outright.
type headlessBackend struct{}

func newCaptureBackend() captureBackend {
	return &headlessBackend{}
}

func (b *headlessBackend) open(sampleRateHz int, onSamples func([]float32)) error {
	return nil
}

func (b *headlessBackend) close() {}
