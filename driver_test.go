package chladni

import "testing"

func TestFrequencyToModeFindsExactMatch(t *testing.T) {
	const c = float32(10.0)
	// mode (3,4): m^2+n^2 = 25 -> freq = 250
	m, n := FrequencyToMode(250, c)
	if m*m+n*n != 25 {
		t.Errorf("FrequencyToMode(250, 10) = (%d,%d), m^2+n^2=%d want 25", m, n, m*m+n*n)
	}
}

func TestFrequencyToModeStaysInRange(t *testing.T) {
	const c = float32(5.0)
	cases := []float32{0, 1, 50, 500, 5000, 50000}
	for _, freq := range cases {
		m, n := FrequencyToMode(freq, c)
		if m < 1 || m > 20 || n < 1 || n > 20 {
			t.Errorf("FrequencyToMode(%v, %v) = (%d,%d), out of [1,20] range", freq, c, m, n)
		}
	}
}

// Scenario 6 (§8): mode mapping round trip.
func TestModeMappingRoundTrip(t *testing.T) {
	const c = float32(8.0)
	original := PlateMode{M: 6, N: 9}
	freq := original.Frequency(c)

	m, n := FrequencyToMode(freq, c)
	got := PlateMode{M: m, N: n}

	gotFreq := got.Frequency(c)
	diff := gotFreq - freq
	if diff < 0 {
		diff = -diff
	}
	if diff > c {
		t.Errorf("round trip mode (%d,%d) freq=%v too far from original freq=%v (mode %v)", m, n, gotFreq, freq, original)
	}
}

func TestCalculatePlateConstantPositiveForPhysicalInputs(t *testing.T) {
	// Roughly steel-plate-scale values.
	c := CalculatePlateConstant(0.3, 2.0e11, 0.001, 7850, 0.3)
	if c <= 0 {
		t.Errorf("CalculatePlateConstant = %v, want > 0", c)
	}
}

func TestCalculatePlateConstantScalesInverselyWithSize(t *testing.T) {
	small := CalculatePlateConstant(0.1, 2.0e11, 0.001, 7850, 0.3)
	large := CalculatePlateConstant(1.0, 2.0e11, 0.001, 7850, 0.3)
	if small <= large {
		t.Errorf("smaller plate should have larger constant: small=%v large=%v", small, large)
	}
}
