// sample.go - bilinear sampling and energy diagnostics (C5).

package chladni

// AmplitudeAt returns the amplitude field bilinearly interpolated at
// continuous grid coordinates (x, y), clamped to the grid extent.
func (s *Solver) AmplitudeAt(x, y float32) float32 {
	return sampleBilinear(s.uCurr, s.width, s.height, x, y)
}

// VelocityAt returns the velocity field bilinearly interpolated at
// continuous grid coordinates (x, y), clamped to the grid extent.
func (s *Solver) VelocityAt(x, y float32) float32 {
	return sampleBilinear(s.velocity, s.width, s.height, x, y)
}

// sampleBilinear interpolates a dense row-major field of the given
// width/height at continuous coordinates (x, y), clamping out-of-range
// coordinates to the grid edge.
func sampleBilinear(field []float32, width, height int, x, y float32) float32 {
	if x < 0 {
		x = 0
	} else if x > float32(width-1) {
		x = float32(width - 1)
	}
	if y < 0 {
		y = 0
	} else if y > float32(height-1) {
		y = float32(height - 1)
	}

	x0 := int(x)
	y0 := int(y)
	x1 := x0 + 1
	if x1 > width-1 {
		x1 = width - 1
	}
	y1 := y0 + 1
	if y1 > height-1 {
		y1 = height - 1
	}

	fx := x - float32(x0)
	fy := y - float32(y0)

	v00 := field[y0*width+x0]
	v10 := field[y0*width+x1]
	v01 := field[y1*width+x0]
	v11 := field[y1*width+x1]

	v0 := v00*(1-fx) + v10*fx
	v1 := v01*(1-fx) + v11*fx

	return v0*(1-fy) + v1*fy
}

// TotalEnergy estimates the total energy of the field: kinetic energy
// from the velocity field plus potential energy from the discrete
// spatial gradient of the amplitude field, scaled by c^2. With damping
// disabled this is approximately conserved (explicit schemes drift, so
// only a rough conservation band is expected, not exact invariance).
func (s *Solver) TotalEnergy() float32 {
	var kinetic float32
	for _, v := range s.velocity {
		kinetic += v * v
	}

	var potential float32
	w, h := s.width, s.height
	invDx := float32(1.0)
	if s.dx > 1e-6 {
		invDx = 1.0 / s.dx
	}

	for j := 0; j < h-1; j++ {
		row := j * w
		for i := 0; i < w-1; i++ {
			idx := row + i
			u := s.uCurr[idx]
			dudx := (s.uCurr[idx+1] - u) * invDx
			dudy := (s.uCurr[idx+w] - u) * invDx
			potential += dudx*dudx + dudy*dudy
		}
	}

	return 0.5 * (kinetic + s.waveSpeed*s.waveSpeed*potential)
}
