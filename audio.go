// audio.go - audio feature extraction from FFT magnitude + time-domain data (C7).
//
// Grounded on SIMULATION/CHLADNI/src/audio.rs's AudioAnalyzer methods;
// the FFT itself is computed upstream (by the host's analyser node or,
// in this module's capture path, fft.go) — ExtractFeatures only ever
// consumes an already-computed magnitude array.

package chladni

import "math"

// Band frequency ranges in Hz and their empirical normalization
// constants (§4.7). These values put typical speech/music content near
// the top of [0, 1] without requiring per-signal normalization state.
const (
	subBassLo, subBassHi = 20.0, 80.0
	bassLo, bassHi       = 80.0, 250.0
	midLo, midHi         = 250.0, 2000.0
	highLo, highHi       = 2000.0, 8000.0

	subBassScale = 50.0
	bassScale    = 30.0
	midScale     = 20.0
	highScale    = 40.0

	noiseFloorDB = -60.0
	dbClampFloor = -100.0
)

// Features is one frame of extracted audio features.
type Features struct {
	RMS         float32
	DominantHz  float32
	HasDominant bool
	Bands       [4]float32 // sub-bass, bass, mid, high
}

// ExtractFeatures computes dominant frequency, RMS and band energies
// from an FFT magnitude array (in dB, bin 0 .. len(fftMagDB)-1 spanning
// 0 .. sampleRateHz/2) and a time-domain window (samples in [-1, 1]).
func ExtractFeatures(fftMagDB, timeWindow []float32, sampleRateHz float32) Features {
	return Features{
		RMS:         computeRMS(timeWindow),
		DominantHz:  dominantFrequency(fftMagDB, sampleRateHz),
		HasDominant: hasDominant(fftMagDB),
		Bands:       BandEnergies(fftMagDB, sampleRateHz),
	}
}

func hasDominant(fftMagDB []float32) bool {
	_, maxMag := peakBin(fftMagDB)
	return maxMag > noiseFloorDB
}

func peakBin(fftMagDB []float32) (int, float32) {
	peak := 0
	maxMag := float32(math.Inf(-1))
	for i, mag := range fftMagDB {
		if mag > maxMag {
			maxMag = mag
			peak = i
		}
	}
	return peak, maxMag
}

// dominantFrequency returns the frequency of the strongest FFT bin, or
// 0 if it does not exceed the noise floor (callers should check
// HasDominant/hasDominant; this mirrors DominantHz's "None" case as a
// zero value paired with the Has flag).
func dominantFrequency(fftMagDB []float32, sampleRateHz float32) float32 {
	if len(fftMagDB) == 0 {
		return 0
	}
	peak, maxMag := peakBin(fftMagDB)
	if maxMag <= noiseFloorDB {
		return 0
	}
	nFFT := float32(2 * (len(fftMagDB) - 1))
	if nFFT <= 0 {
		nFFT = float32(len(fftMagDB))
	}
	return float32(peak) * sampleRateHz / nFFT
}

// computeRMS returns sqrt(mean(x^2))*sqrt(2), clamped to [0, 1]. The
// sqrt(2) factor puts a full-scale sine wave (RMS ~0.707) at ~1.0.
func computeRMS(timeWindow []float32) float32 {
	if len(timeWindow) == 0 {
		return 0
	}
	var sumSquares float32
	for _, x := range timeWindow {
		sumSquares += x * x
	}
	rms := sqrtf32(sumSquares/float32(len(timeWindow))) * float32(math.Sqrt2)
	if rms > 1 {
		rms = 1
	}
	return rms
}

// BandEnergies converts each dB magnitude to linear, averages over bins
// in each of the four named bands, applies the band's normalization
// constant and clamps each result to [0, 1].
func BandEnergies(fftMagDB []float32, sampleRateHz float32) [4]float32 {
	if len(fftMagDB) == 0 {
		return [4]float32{}
	}
	nFFT := float32(2 * (len(fftMagDB) - 1))
	if nFFT <= 0 {
		nFFT = float32(len(fftMagDB))
	}
	binHz := sampleRateHz / nFFT

	freqToBin := func(freq float32) int {
		bin := int(freq / binHz)
		if bin > len(fftMagDB)-1 {
			bin = len(fftMagDB) - 1
		}
		return bin
	}

	subBassStart := freqToBin(subBassLo)
	subBassEnd := freqToBin(subBassHi)
	bassEnd := freqToBin(bassHi)
	midEnd := freqToBin(midHi)
	highEnd := freqToBin(highHi)
	_ = bassLo
	_ = midLo
	_ = highLo

	bandEnergy := func(start, end int) float32 {
		if end <= start {
			return 0
		}
		var sum float32
		for _, db := range fftMagDB[start:end] {
			dbClamped := db
			if dbClamped < dbClampFloor {
				dbClamped = dbClampFloor
			}
			sum += float32(math.Pow(10, float64(dbClamped)/20))
		}
		return sum / float32(end-start)
	}

	normalize := func(v, scale float32) float32 {
		r := v * scale
		if r > 1 {
			r = 1
		}
		return r
	}

	return [4]float32{
		normalize(bandEnergy(subBassStart, subBassEnd), subBassScale),
		normalize(bandEnergy(subBassEnd, bassEnd), bassScale),
		normalize(bandEnergy(bassEnd, midEnd), midScale),
		normalize(bandEnergy(midEnd, highEnd), highScale),
	}
}
