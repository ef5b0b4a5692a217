// eigenmode.go - analytical Chladni standing-wave field on a square plate (C6).
//
// Grounded on DNA/src/sim/chladni.rs's WaveSimulation: a closed-form
// mode superposition rather than a time-stepped solver, with a dirty
// flag so repeated per-frame calls with unchanged parameters are cheap.

package chladni

// PlateMode is a Chladni vibration mode (m, n). The practical range is
// 1 <= m, n <= 20.
type PlateMode struct {
	M, N uint32
}

// Frequency returns the resonant frequency of this mode on a square
// plate with the given plate constant: f = C * (m^2 + n^2).
func (p PlateMode) Frequency(plateConstant float32) float32 {
	return plateConstant * float32(p.M*p.M+p.N*p.N)
}

// WaveField holds the analytical eigenmode amplitude and energy fields
// for a square grid. Unlike Solver, it is not time-stepped: Update
// recomputes a closed-form standing wave whenever the dirty flag is set,
// and is a cheap no-op otherwise.
type WaveField struct {
	width, height int

	amplitude []float32
	energy    []float32

	dirty bool
}

// NewWaveField allocates a size x size eigenmode field, zeroed and
// marked dirty so the first Update computes it.
func NewWaveField(size int) *WaveField {
	n := size * size
	return &WaveField{
		width:     size,
		height:    size,
		amplitude: make([]float32, n),
		energy:    make([]float32, n),
		dirty:     true,
	}
}

// SetDirty forces recomputation on the next Update call.
func (wf *WaveField) SetDirty() { wf.dirty = true }

// Update recomputes the field for the given mode if dirty. dt and
// waveSpeed are accepted for interface symmetry with Solver.Step but are
// not used: the eigenmode is an analytical standing wave, not a
// physical time integration (§4.6/§9 design note — an implementer
// wanting time-evolving eigenmodes must extend this contract
// explicitly).
func (wf *WaveField) Update(dt float32, mode PlateMode, waveSpeed float32) {
	wf.UpdateWithParams(dt, mode, waveSpeed, 1.0, 1.0)
}

// UpdateWithParams is Update with an explicit frequency/amplitude scale.
func (wf *WaveField) UpdateWithParams(_ float32, mode PlateMode, _ float32, frequencyScale, amplitudeScale float32) {
	if !wf.dirty {
		return
	}

	w, h := wf.width, wf.height
	m := float32(mode.M) * frequencyScale
	n := float32(mode.N) * frequencyScale

	for y := 0; y < h; y++ {
		ny := float32(y) / float32(h)
		for x := 0; x < w; x++ {
			idx := y*w + x
			nx := float32(x) / float32(w)

			mode1 := fastSin(m*piF*nx) * fastSin(n*piF*ny)
			mode2 := fastSin(n*piF*nx) * fastSin(m*piF*ny)

			a := (mode1 + mode2) * amplitudeScale
			wf.amplitude[idx] = a
			wf.energy[idx] = a * a
		}
	}

	wf.dirty = false
}

const piF = float32(3.14159265358979323846)

// AmplitudeData returns the current amplitude field, row-major.
func (wf *WaveField) AmplitudeData() []float32 { return wf.amplitude }

// EnergyData returns the current energy field (amplitude squared), row-major.
func (wf *WaveField) EnergyData() []float32 { return wf.energy }

// AmplitudeAt bilinearly samples the amplitude field at continuous
// coordinates (x, y), clamped to the grid extent.
func (wf *WaveField) AmplitudeAt(x, y float32) float32 {
	return sampleBilinear(wf.amplitude, wf.width, wf.height, x, y)
}

// TotalEnergy returns the sum of the energy field.
func (wf *WaveField) TotalEnergy() float32 {
	var total float32
	for _, e := range wf.energy {
		total += e
	}
	return total
}

// Clear zeroes both fields and marks the field dirty.
func (wf *WaveField) Clear() {
	zero(wf.amplitude)
	zero(wf.energy)
	wf.dirty = true
}

// GradientVec2 is a 2D gradient sample, used by consumers (e.g.
// PlateParticles) that steer particles toward nodal lines.
type GradientVec2 struct {
	X, Y float32
}

// GradientAt returns the central-difference gradient of amplitude^2 at
// (x, y) with unit spacing. Particles following -gradient migrate
// toward nodal lines, where amplitude is near zero.
func (wf *WaveField) GradientAt(x, y float32) GradientVec2 {
	const eps = 1.0

	axPos := wf.AmplitudeAt(x+eps, y)
	axNeg := wf.AmplitudeAt(x-eps, y)
	ayPos := wf.AmplitudeAt(x, y+eps)
	ayNeg := wf.AmplitudeAt(x, y-eps)

	dx := (axPos*axPos - axNeg*axNeg) / (2 * eps)
	dy := (ayPos*ayPos - ayNeg*ayNeg) / (2 * eps)

	return GradientVec2{X: dx, Y: dy}
}
