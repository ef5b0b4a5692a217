// stencil.go - 5-point Laplacian + leapfrog update over the grid interior (C2).

package chladni

// substep writes one leapfrog update into uNext from uCurr/uPrev using
// the 5-point Laplacian. coefSpace is (c*subDt/dx)^2, coefDamp is
// d*subDt. Border cells of uNext are left untouched (they are always
// zero, enforcing the clamped Dirichlet boundary). No allocation; safe
// to call once per substep at display rate.
func (s *Solver) substep(coefSpace, coefDamp float32) {
	w, h := s.width, s.height
	uCurr, uPrev, uNext := s.uCurr, s.uPrev, s.uNext

	twoMinusDamp := 2 - coefDamp
	oneMinusDamp := 1 - coefDamp

	for j := 1; j < h-1; j++ {
		row := j * w
		for i := 1; i < w-1; i++ {
			idx := row + i
			laplacian := uCurr[idx-1] + uCurr[idx+1] + uCurr[idx-w] + uCurr[idx+w] - 4*uCurr[idx]
			uNext[idx] = twoMinusDamp*uCurr[idx] - oneMinusDamp*uPrev[idx] + coefSpace*laplacian
		}
	}
}
