package chladni

import "testing"

func TestSeedPlacesAllParticlesActiveWithinBounds(t *testing.T) {
	p := NewPlateParticles(64, 100)

	values := []float32{0.1, 0.9, 0.5, 0.0}
	i := 0
	p.Seed(func() float32 {
		v := values[i%len(values)]
		i++
		return v
	})

	for idx, particle := range p.Particles() {
		if !particle.Active {
			t.Fatalf("particle %d not active after Seed", idx)
		}
		if particle.X < 0 || particle.X >= 64 || particle.Y < 0 || particle.Y >= 64 {
			t.Fatalf("particle %d out of bounds: %+v", idx, particle)
		}
	}
}

func TestStepSkipsInactiveParticles(t *testing.T) {
	p := NewPlateParticles(32, 3)
	p.Seed(func() float32 { return 0.5 })
	p.particles[1].Active = false
	before := p.particles[1]

	wf := NewWaveField(32)
	wf.Update(0.01, PlateMode{M: 2, N: 3}, 100)

	p.Step(wf, 0.016)

	after := p.particles[1]
	if before != after {
		t.Errorf("inactive particle moved: before=%+v after=%+v", before, after)
	}
}

func TestStepKeepsParticlesWithinGridBounds(t *testing.T) {
	p := NewPlateParticles(32, 50)
	p.Seed(func() float32 { return 0.02 }) // near the edge, likely to push out of bounds

	wf := NewWaveField(32)
	wf.Update(0.01, PlateMode{M: 4, N: 5}, 100)

	for i := 0; i < 200; i++ {
		p.Step(wf, 0.016)
	}

	for idx, particle := range p.Particles() {
		if particle.X < 0 || particle.X >= 32 || particle.Y < 0 || particle.Y >= 32 {
			t.Fatalf("particle %d escaped bounds after stepping: %+v", idx, particle)
		}
		if !isFinite(particle.VX) || !isFinite(particle.VY) {
			t.Fatalf("particle %d has non-finite velocity: %+v", idx, particle)
		}
	}
}
