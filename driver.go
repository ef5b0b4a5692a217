// driver.go - frequency/mode mapping and plate-constant calculation (C8).
//
// Grounded on SIMULATION/CHLADNI/src/audio.rs's frequency_to_mode and
// calculate_plate_constant.

package chladni

import "math"

// FrequencyToMode searches (m, n) in [1, 20]^2 for the pair minimizing
// |m^2 + n^2 - freqHz/plateConstant|. Ties are broken by the first hit
// in natural (m, n) iteration order (m outer, n inner).
func FrequencyToMode(freqHz, plateConstant float32) (uint32, uint32) {
	target := freqHz / plateConstant

	bestM, bestN := uint32(1), uint32(1)
	bestDiff := float32(math.Inf(1))

	for m := uint32(1); m <= 20; m++ {
		for n := uint32(1); n <= 20; n++ {
			modeValue := float32(m*m + n*n)
			diff := modeValue - target
			if diff < 0 {
				diff = -diff
			}
			if diff < bestDiff {
				bestDiff = diff
				bestM, bestN = m, n
			}
		}
	}

	return bestM, bestN
}

// CalculatePlateConstant derives the plate constant C such that a
// square plate's resonant frequencies are C*(m^2+n^2), from physical
// properties: side length L, Young's modulus E, thickness h, density
// rho, Poisson's ratio nu.
func CalculatePlateConstant(plateSize, youngsModulus, thickness, density, poissonRatio float32) float32 {
	l := plateSize
	h := thickness
	e := youngsModulus
	rho := density
	nu := poissonRatio

	flexuralRigidity := (e * h * h * h) / (12 * (1 - nu*nu))

	return (piF * piF / (l * l)) * sqrtf32(flexuralRigidity/(rho*h))
}

func sqrtf32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// DriverFeatures bundles the audio-derived driving signal a host maps
// onto solver/eigenmode inputs: RMS and the four band energies.
type DriverFeatures struct {
	RMS   float32
	Bands [4]float32
}
