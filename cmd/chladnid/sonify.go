//go:build !headless

// sonify.go - plays the drive tone through the system audio output,
// constructed the same way the IntuitionEngine emulator's audio_backend_oto.go sets up
// an oto.Context: NewContextOptions -> NewContext -> <-ready -> NewPlayer.

package main

import (
	"io"
	"math"

	"github.com/ebitengine/oto/v3"
)

const sonifySampleRate = 44100

// toneOutput streams a continuous sine wave at a fixed frequency.
type toneOutput struct {
	ctx    *oto.Context
	player *oto.Player
}

func newToneOutput(freqHz float64) (*toneOutput, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sonifySampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	src := &sineReader{freqHz: freqHz}
	player := ctx.NewPlayer(src)
	player.Play()

	return &toneOutput{ctx: ctx, player: player}, nil
}

func (t *toneOutput) Close() {
	if t.player != nil {
		t.player.Close()
	}
}

// sineReader is an io.Reader producing a continuous float32LE sine wave,
// the minimal Read contract oto.Context.NewPlayer needs.
type sineReader struct {
	freqHz float64
	phase  float64
}

func (s *sineReader) Read(p []byte) (int, error) {
	n := len(p) / 4
	for i := 0; i < n; i++ {
		v := float32(math.Sin(s.phase) * 0.2)
		s.phase += 2 * math.Pi * s.freqHz / sonifySampleRate
		if s.phase > 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
		putFloat32LE(p[i*4:], v)
	}
	return n * 4, nil
}

var _ io.Reader = (*sineReader)(nil)

func putFloat32LE(b []byte, v float32) {
	bits := math.Float32bits(v)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}
