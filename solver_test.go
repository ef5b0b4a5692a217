package chladni

import "testing"

func TestNewRejectsUndersizedGrid(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"width too small", 3, 16},
		{"height too small", 16, 3},
		{"both too small", 1, 1},
		// width/height == 4 would leave clampSource's [2, n-3] center
		// range empty (n-3 == 1 < 2), which would otherwise let the 3x3
		// injection patch overwrite the border column/row.
		{"width exactly 4", 4, 16},
		{"height exactly 4", 16, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.width, tc.height, 50, 0); err != ErrInvalidGridSize {
				t.Fatalf("New(%d, %d, ...) error = %v, want ErrInvalidGridSize", tc.width, tc.height, err)
			}
		})
	}
}

func TestNewClampsParameters(t *testing.T) {
	s, err := New(16, 16, 0.5, 2.0)
	if err != nil {
		t.Fatal(err)
	}
	if s.waveSpeed != 1.0 {
		t.Errorf("waveSpeed = %v, want clamped to 1.0", s.waveSpeed)
	}
	if s.damping != 1.0 {
		t.Errorf("damping = %v, want clamped to 1.0", s.damping)
	}
}

// Scenario 1 (§8): plucked center.
func TestPluckedCenterEnergyConservedWithoutDamping(t *testing.T) {
	s, err := New(32, 32, 50, 0.0)
	if err != nil {
		t.Fatal(err)
	}

	s.Step(0.01, 0.5, 0.5, 100.0)
	injected := s.TotalEnergy()
	if injected <= 0 {
		t.Fatalf("total energy after injection = %v, want > 0", injected)
	}

	for i := 0; i < 10; i++ {
		s.Step(0.01, 0.5, 0.5, 0.0)
	}
	final := s.TotalEnergy()
	ratio := final / injected
	if ratio < 0.7 || ratio > 1.3 {
		t.Errorf("energy ratio = %v, want in [0.7, 1.3] (injected=%v final=%v)", ratio, injected, final)
	}
}

// Scenario 2 (§8): damped decay.
func TestDampedEnergyDecays(t *testing.T) {
	s, err := New(32, 32, 50, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	s.Step(0.01, 0.5, 0.5, 100.0)
	initial := s.TotalEnergy()

	for i := 0; i < 50; i++ {
		s.Step(0.01, 0.5, 0.5, 0.0)
	}
	final := s.TotalEnergy()

	if final >= initial {
		t.Errorf("final energy %v should be less than initial %v with damping", final, initial)
	}
}

func TestMinimumGridSizeKeepsSourcePatchOffBorder(t *testing.T) {
	s, err := New(5, 5, 50, 0.0)
	if err != nil {
		t.Fatalf("New(5, 5, ...) should succeed, got error: %v", err)
	}

	// Drive every normalized source location, including the corners, and
	// confirm the border never receives an injected value.
	for _, loc := range []float32{0, 0.25, 0.5, 0.75, 1.0} {
		s.Clear()
		s.Step(0.01, loc, loc, 100.0)

		data := s.AmplitudeData()
		w, h := s.Width(), s.Height()
		for i := 0; i < w; i++ {
			if data[i] != 0 || data[(h-1)*w+i] != 0 {
				t.Fatalf("loc=%v: border row corrupted: top=%v bottom=%v", loc, data[i], data[(h-1)*w+i])
			}
		}
		for j := 0; j < h; j++ {
			if data[j*w] != 0 || data[j*w+w-1] != 0 {
				t.Fatalf("loc=%v: border col corrupted: left=%v right=%v", loc, data[j*w], data[j*w+w-1])
			}
		}
	}
}

// Scenario 3 (§8): clamped edges / boundary invariant.
func TestBoundaryStaysZero(t *testing.T) {
	s, err := New(16, 16, 50, 0.0)
	if err != nil {
		t.Fatal(err)
	}

	s.Step(0.01, 0.1, 0.5, 100.0)

	data := s.AmplitudeData()
	w, h := s.Width(), s.Height()
	for i := 0; i < w; i++ {
		if data[i] != 0 {
			t.Errorf("top row[%d] = %v, want 0", i, data[i])
		}
		if data[(h-1)*w+i] != 0 {
			t.Errorf("bottom row[%d] = %v, want 0", i, data[(h-1)*w+i])
		}
	}
	for j := 0; j < h; j++ {
		if data[j*w] != 0 {
			t.Errorf("left col[%d] = %v, want 0", j, data[j*w])
		}
		if data[j*w+w-1] != 0 {
			t.Errorf("right col[%d] = %v, want 0", j, data[j*w+w-1])
		}
	}
}

// Scenario 4 (§8): CFL safety at extreme wave speed / dt.
func TestCFLSafetyProducesFiniteOutput(t *testing.T) {
	s, err := New(64, 64, 1000, 0.05)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		s.Step(0.1, 0.5, 0.5, 10.0)
	}

	for _, v := range s.AmplitudeData() {
		if !isFinite(v) {
			t.Fatalf("amplitude contains non-finite value %v", v)
		}
	}
	for _, v := range s.VelocityData() {
		if !isFinite(v) {
			t.Fatalf("velocity contains non-finite value %v", v)
		}
	}
}

func TestFinitenessUnderVaryingDrive(t *testing.T) {
	s, err := New(64, 64, 100, 0.05)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		amp := float32(i%17) * 3.0
		s.Step(0.016, 0.5, 0.5, amp)
	}
	for _, v := range s.AmplitudeData() {
		if !isFinite(v) {
			t.Fatalf("amplitude should be finite, got %v", v)
		}
	}
}

func TestDeterminism(t *testing.T) {
	newDriven := func() *Solver {
		s, err := New(24, 24, 80, 0.02)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 20; i++ {
			s.Step(0.01, 0.4, 0.6, float32(i)*5)
		}
		return s
	}

	a := newDriven()
	b := newDriven()

	ad, bd := a.AmplitudeData(), b.AmplitudeData()
	if len(ad) != len(bd) {
		t.Fatalf("length mismatch: %d vs %d", len(ad), len(bd))
	}
	for i := range ad {
		if ad[i] != bd[i] {
			t.Fatalf("amplitude[%d] diverged: %v vs %v", i, ad[i], bd[i])
		}
	}
}

func TestClearResetsFieldsAndTime(t *testing.T) {
	s, err := New(16, 16, 50, 0.05)
	if err != nil {
		t.Fatal(err)
	}
	s.Step(0.01, 0.5, 0.5, 100.0)
	if s.TotalEnergy() <= 0 {
		t.Fatal("expected energy after injection")
	}

	s.Clear()

	if s.TotalEnergy() >= 1e-10 {
		t.Errorf("energy after clear = %v, want ~0", s.TotalEnergy())
	}
	if s.Time() != 0 {
		t.Errorf("time after clear = %v, want 0", s.Time())
	}
}

func TestStepNoOpOnNonPositiveDt(t *testing.T) {
	s, err := New(16, 16, 50, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	s.Step(0.01, 0.5, 0.5, 100.0)
	before := append([]float32(nil), s.AmplitudeData()...)
	beforeTime := s.Time()

	s.Step(0, 0.5, 0.5, 100.0)
	s.Step(-1, 0.5, 0.5, 100.0)

	after := s.AmplitudeData()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Step with dt<=0 mutated field at %d", i)
		}
	}
	if s.Time() != beforeTime {
		t.Errorf("time advanced on dt<=0 step")
	}
}

func TestBilinearSamplingMatchesGridValues(t *testing.T) {
	s, err := New(16, 16, 50, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	s.Step(0.01, 0.5, 0.5, 100.0)

	w := s.Width()
	data := s.AmplitudeData()
	for j := 1; j < s.Height()-1; j++ {
		for i := 1; i < w-1; i++ {
			got := s.AmplitudeAt(float32(i), float32(j))
			want := data[j*w+i]
			if got != want {
				t.Fatalf("AmplitudeAt(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func isFinite(f float32) bool {
	return f == f && f < 1e38 && f > -1e38
}

func BenchmarkStep32(b *testing.B) {
	s, err := New(32, 32, 100, 0.05)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Step(0.016, 0.5, 0.5, 10.0)
	}
}

func BenchmarkStep256(b *testing.B) {
	s, err := New(256, 256, 100, 0.05)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Step(0.016, 0.5, 0.5, 10.0)
	}
}
