//go:build !headless

// capture_portaudio.go - real microphone capture via PortAudio.

package chladni

import "github.com/gordonklaus/portaudio"

// portaudioBackend opens the host's default input device and forwards
// each captured buffer to the Analyzer's onSamples callback.
type portaudioBackend struct {
	stream *portaudio.Stream
}

func newCaptureBackend() captureBackend {
	return &portaudioBackend{}
}

func (b *portaudioBackend) open(sampleRateHz int, onSamples func([]float32)) error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	in := make([]float32, 1024)
	callback := func(inBuf []float32) {
		onSamples(inBuf)
	}

	stream, err := portaudio.OpenDefaultStream(1, 0, float64(sampleRateHz), len(in), callback)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	b.stream = stream
	return nil
}

func (b *portaudioBackend) close() {
	if b.stream != nil {
		b.stream.Stop()
		b.stream.Close()
		b.stream = nil
	}
	portaudio.Terminate()
}
