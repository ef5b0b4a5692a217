// config.go - simulation configuration bundle, adapted from the original
// Rust prototype's SimConfig (original_source/SW/CHLADNI/src/lib.rs).

package chladni

// SimConfig bundles the knobs a host typically exposes together: grid
// resolution, physical plate size, damping, wave speed and a time-scale
// multiplier applied to the host's dt before it reaches Step.
type SimConfig struct {
	GridSize  int
	PlateSize float32 // physical size in meters
	Damping   float32
	WaveSpeed float32
	TimeScale float32
}

// DefaultSimConfig returns the literal defaults from the original
// prototype: a 256x256 grid over a 30cm plate.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		GridSize:  256,
		PlateSize: 0.3,
		Damping:   0.002,
		WaveSpeed: 100.0,
		TimeScale: 1.0,
	}
}
