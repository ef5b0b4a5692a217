// chladnid is a standalone driver for the chladni package: it steps a
// Solver against a sinusoidal point source and reports energy, the way
// ie32to64 is a standalone utility alongside the IntuitionEngine
// library. With the headless build tag it is a pure CLI; otherwise it
// can also open a live ebiten view and play the drive tone.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/antimony-labs/chladni-sim"
)

type cliFlags struct {
	grid       int
	plateSize  float64
	waveSpeed  float64
	damping    float64
	dt         float64
	frames     int
	driveHz    float64
	driveAmp   float64
	outPNG     string
	pngScale   int
	display    bool
	sonify     bool
	reportFreq int
}

func parseFlags() cliFlags {
	var f cliFlags
	flag.IntVar(&f.grid, "grid", 256, "grid width/height in cells")
	flag.Float64Var(&f.plateSize, "platesize", 0.3, "physical plate size in meters")
	flag.Float64Var(&f.waveSpeed, "wavespeed", 100.0, "wave propagation speed")
	flag.Float64Var(&f.damping, "damping", 0.002, "damping coefficient in [0,1]")
	flag.Float64Var(&f.dt, "dt", 1.0/60.0, "time step in seconds")
	flag.IntVar(&f.frames, "frames", 600, "frames to run")
	flag.Float64Var(&f.driveHz, "freq", 220.0, "drive tone frequency in Hz")
	flag.Float64Var(&f.driveAmp, "amp", 80.0, "drive source amplitude")
	flag.StringVar(&f.outPNG, "outpng", "", "write final amplitude field to PNG at path")
	flag.IntVar(&f.pngScale, "pngscale", 1, "PNG supersampling factor relative to grid size")
	flag.BoolVar(&f.display, "display", false, "open a live ebiten view (requires a non-headless build)")
	flag.BoolVar(&f.sonify, "sonify", false, "play the drive tone through the audio output (requires a non-headless build)")
	flag.IntVar(&f.reportFreq, "report-every", 60, "log energy every N frames (0 disables)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: chladnid [options]\n\nDrives a Chladni plate simulation with a sinusoidal point source and\nreports its energy, optionally rendering a live view and sonifying the\ndrive tone.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  chladnid -freq 440 -frames 1200 -outpng plate.png\n")
		fmt.Fprintf(os.Stderr, "  chladnid -display -sonify -freq 733\n")
	}
	flag.Parse()
	return f
}

func main() {
	f := parseFlags()

	s, err := chladni.New(f.grid, f.grid, float32(f.waveSpeed), float32(f.damping))
	if err != nil {
		log.Fatal("failed to construct solver", "err", err)
	}

	plateConstant := chladni.CalculatePlateConstant(float32(f.plateSize), 2.0e11, 0.001, 7850, 0.3)
	m, n := chladni.FrequencyToMode(float32(f.driveHz), plateConstant)
	log.Info("driving plate", "grid", f.grid, "freq_hz", f.driveHz, "nearest_mode", fmt.Sprintf("(%d,%d)", m, n))

	var view *liveView
	if f.display {
		view = newLiveView(s)
		if view == nil {
			log.Warn("display requested but unavailable in this build")
		}
	}

	var tone *toneOutput
	if f.sonify {
		var err error
		tone, err = newToneOutput(f.driveHz)
		if err != nil {
			log.Warn("sonify requested but unavailable", "err", err)
		} else {
			defer tone.Close()
		}
	}

	start := time.Now()
	srcX, srcY := float32(0.5), float32(0.5)
	omega := 2 * math.Pi * f.driveHz

	for frame := 0; frame < f.frames; frame++ {
		drive := float32(math.Sin(omega*s.Time())) * float32(f.driveAmp)
		s.Step(float32(f.dt), srcX, srcY, drive)

		if f.reportFreq > 0 && frame%f.reportFreq == 0 {
			log.Info("stepping", "frame", frame, "time_s", s.Time(), "energy", s.TotalEnergy())
		}
		if view != nil {
			view.pump()
		}
	}
	elapsed := time.Since(start)

	log.Info("done", "frames", f.frames, "elapsed", elapsed.Truncate(time.Millisecond), "final_energy", s.TotalEnergy())

	if f.outPNG != "" {
		if err := writeAmplitudePNG(s, f.outPNG, f.pngScale); err != nil {
			log.Fatal("failed to write PNG", "path", f.outPNG, "err", err)
		}
		log.Info("wrote snapshot", "path", f.outPNG)
	}

	if view != nil {
		view.run()
	}
}

// writeAmplitudePNG renders the solver's amplitude field to a greyscale
// PNG, optionally supersampled by scale using the solver's bilinear
// sampler so a coarse simulation grid still produces a smooth image.
func writeAmplitudePNG(s *chladni.Solver, path string, scale int) error {
	if scale < 1 {
		scale = 1
	}
	outW, outH := s.Width()*scale, s.Height()*scale

	img := image.NewGray(image.Rect(0, 0, outW, outH))

	maxAbs := float32(0)
	for _, v := range s.AmplitudeData() {
		if v < 0 {
			v = -v
		}
		if v > maxAbs {
			maxAbs = v
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	for py := 0; py < outH; py++ {
		for px := 0; px < outW; px++ {
			grid := pixelToGrid(px, py, scale)
			a := s.AmplitudeAt(grid[0], grid[1])
			norm := (a/maxAbs + 1) / 2 // map [-1,1] -> [0,1]
			if norm < 0 {
				norm = 0
			} else if norm > 1 {
				norm = 1
			}
			img.SetGray(px, py, grayFromUnit(norm))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
