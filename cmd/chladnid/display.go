//go:build !headless

// display.go - live ebiten view of the solver's amplitude field,
// structured like the IntuitionEngine emulator's video_backend_ebiten.go: a Game
// with Update/Draw/Layout backed by a mutex-guarded frame buffer.

package main

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/antimony-labs/chladni-sim"
)

type liveView struct {
	solver *chladni.Solver

	mu     sync.Mutex
	frame  *ebiten.Image
	closed bool
}

func newLiveView(s *chladni.Solver) *liveView {
	return &liveView{
		solver: s,
		frame:  ebiten.NewImage(s.Width(), s.Height()),
	}
}

// pump is called once per simulation frame from the headless stepping
// loop to refresh the backing image; Update/Draw then just blit it.
func (v *liveView) pump() {
	v.mu.Lock()
	defer v.mu.Unlock()

	data := v.solver.AmplitudeData()
	w, h := v.solver.Width(), v.solver.Height()

	maxAbs := float32(1e-9)
	for _, a := range data {
		if a < 0 {
			a = -a
		}
		if a > maxAbs {
			maxAbs = a
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := data[y*w+x]
			level := uint8(((a/maxAbs + 1) / 2) * 255)
			v.frame.Set(x, y, color.Gray{Y: level})
		}
	}
}

func (v *liveView) Update() error {
	return nil
}

func (v *liveView) Draw(screen *ebiten.Image) {
	v.mu.Lock()
	defer v.mu.Unlock()
	screen.DrawImage(v.frame, nil)
}

func (v *liveView) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.solver.Width(), v.solver.Height()
}

// run blocks, driving the ebiten window until it is closed. The
// headless stepping loop has already finished by the time this is
// called, so the final frame simply stays on screen.
func (v *liveView) run() {
	ebiten.SetWindowSize(v.solver.Width()*2, v.solver.Height()*2)
	ebiten.SetWindowTitle("chladnid")
	_ = ebiten.RunGame(v)
}
