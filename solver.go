// solver.go - driven 2D wave equation solver (C1 Field Buffers, C4 Time Integrator).
//
// Grounded on the teacher's buffer-rotation discipline (audio_chip.go
// mixes into scratch buffers without per-sample copies) and, upstream,
// on DNA/src/physics/solvers/pde/fdm.rs's DrivenWaveSolver2D.

package chladni

// cflLimit is the conservative isotropic stability bound for the 2D
// 5-point Laplacian stencil: c*dt/dx <= 1/sqrt(2). Raising this to "go
// faster" is not safe; the explicit scheme diverges well before 1.0.
const cflLimit = 0.707

// Solver integrates the driven, damped 2D wave equation on a fixed-size
// grid using explicit leapfrog time-stepping with CFL-adaptive
// sub-stepping. It is single-threaded: Step is meant to be called once
// per host frame from the host's own goroutine.
type Solver struct {
	width, height int
	dx            float32

	uPrev, uCurr, uNext []float32
	velocity            []float32

	waveSpeed float32
	damping   float32
	time      float32
}

// New constructs a Solver for a width x height grid. width and height
// must each be at least 5: clampSource's 3x3 injection patch needs a
// center column/row in [2, n-3], which is only non-empty for n >= 5 (at
// n = 4 the only candidates that keep the patch off the border would
// need sx-1 >= 1 and sx+1 <= n-2 simultaneously, which has no solution).
// waveSpeed is clamped to >= 1 and damping to [0, 1] exactly as
// SetWaveSpeed/SetDamping would.
func New(width, height int, waveSpeed, damping float32) (*Solver, error) {
	if width < 5 || height < 5 {
		return nil, ErrInvalidGridSize
	}

	s := &Solver{
		width:  width,
		height: height,
		dx:     1.0,
	}
	size := width * height
	s.uPrev = make([]float32, size)
	s.uCurr = make([]float32, size)
	s.uNext = make([]float32, size)
	s.velocity = make([]float32, size)

	s.SetWaveSpeed(waveSpeed)
	s.SetDamping(damping)

	return s, nil
}

// Width returns the grid width in cells.
func (s *Solver) Width() int { return s.width }

// Height returns the grid height in cells.
func (s *Solver) Height() int { return s.height }

// SetWaveSpeed sets the propagation speed c, clamped to [1, +inf).
func (s *Solver) SetWaveSpeed(speed float32) {
	if speed < 1.0 {
		speed = 1.0
	}
	s.waveSpeed = speed
}

// SetDamping sets the per-substep damping coefficient, clamped to [0, 1].
func (s *Solver) SetDamping(damping float32) {
	if damping < 0 {
		damping = 0
	} else if damping > 1 {
		damping = 1
	}
	s.damping = damping
}

// Time returns the accumulated simulated time since construction or the
// last Clear.
func (s *Solver) Time() float32 { return s.time }

// Clear zeroes every field buffer and resets simulated time to 0.
func (s *Solver) Clear() {
	zero(s.uPrev)
	zero(s.uCurr)
	zero(s.uNext)
	zero(s.velocity)
	s.time = 0
}

func zero(buf []float32) {
	for i := range buf {
		buf[i] = 0
	}
}

// Step advances the simulation by dt seconds, driving a point source at
// normalized location (srcX, srcY) with the given amplitude. dt <= 0 is
// a no-op (frame underflow, §7). The number of CFL-safe substeps is
// computed once per call; velocity is derived once per call, not per
// substep, so it reflects the host's time grain rather than sub-dt
// noise.
func (s *Solver) Step(dt, srcX, srcY, amplitude float32) {
	if dt <= 0 {
		return
	}

	cflActual := s.waveSpeed * dt / s.dx
	substeps := int(ceilf(cflActual / cflLimit))
	if substeps < 1 {
		substeps = 1
	}
	subDt := dt / float32(substeps)

	coefSpace := (s.waveSpeed * subDt / s.dx) * (s.waveSpeed * subDt / s.dx)
	coefDamp := s.damping * subDt

	sx, sy := clampSource(srcX, srcY, s.width, s.height)

	for i := 0; i < substeps; i++ {
		s.substep(coefSpace, coefDamp)
		s.inject(sx, sy, amplitude, subDt)
		s.rotate()
	}

	invDt := 1.0 / dt
	for i := range s.velocity {
		s.velocity[i] = (s.uCurr[i] - s.uPrev[i]) * invDt
	}
	s.time += dt
}

// rotate advances the buffer triple: prev <- curr <- next, by swapping
// slice headers rather than copying elements.
func (s *Solver) rotate() {
	s.uPrev, s.uCurr, s.uNext = s.uCurr, s.uNext, s.uPrev
}

func ceilf(x float32) float32 {
	i := float32(int(x))
	if x > i {
		return i + 1
	}
	return i
}

// AmplitudeData returns the current amplitude field, row-major, length
// Width()*Height(). The caller must not mutate it, and must not retain
// it across a call that mutates the solver.
func (s *Solver) AmplitudeData() []float32 { return s.uCurr }

// VelocityData returns the current velocity field, row-major, same
// borrowing rules as AmplitudeData.
func (s *Solver) VelocityData() []float32 { return s.velocity }
