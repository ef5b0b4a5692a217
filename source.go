// source.go - point-source injection with 3x3 Gaussian-weighted spread (C3).

package chladni

// clampSource maps normalized [0,1] source coordinates to integer grid
// indices, clamped to [2, width-3] x [2, height-3] so the 3x3 injection
// patch in inject never touches a border cell. This clamp is load
// bearing: letting the patch cross the boundary would leak injected
// energy out of the conservation accounting in TotalEnergy. The clamp
// range is only non-empty when width and height are both >= 5, which
// New enforces at construction.
func clampSource(srcX, srcY float32, width, height int) (int, int) {
	sx := int(srcX * float32(width))
	sy := int(srcY * float32(height))

	if sx < 2 {
		sx = 2
	} else if sx > width-3 {
		sx = width - 3
	}
	if sy < 2 {
		sy = 2
	} else if sy > height-3 {
		sy = height - 3
	}
	return sx, sy
}

// inject deposits amplitude*subDt^2 into uNext at (sx, sy) and its four
// axis neighbors, weighted 50%/12.5% each, so the injected energy is
// band-limited spatially rather than concentrated in a single cell.
// Values below 1e-10 in magnitude are skipped entirely.
func (s *Solver) inject(sx, sy int, amplitude, subDt float32) {
	v := amplitude * subDt * subDt
	if v < 0 {
		if -v < 1e-10 {
			return
		}
	} else if v < 1e-10 {
		return
	}

	w := s.width
	idx := sy*w + sx
	uNext := s.uNext

	uNext[idx] += 0.5 * v
	uNext[idx-1] += 0.125 * v
	uNext[idx+1] += 0.125 * v
	uNext[idx-w] += 0.125 * v
	uNext[idx+w] += 0.125 * v
}
