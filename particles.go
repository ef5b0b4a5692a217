// particles.go - sand-particle visualization driven by the eigenmode
// gradient, adapted from original_source/SW/CHLADNI/src/lib.rs's
// Particle/update_particles.

package chladni

// Particle is a single grain migrating across the plate.
type Particle struct {
	X, Y   float32
	VX, VY float32
	Active bool
}

// PlateParticles is a fixed-size set of particles that drift toward
// nodal lines of a WaveField under a force proportional to
// -gradient(amplitude^2), with velocity damping and boundary reflection.
// It holds no reference to any randomness source; callers seed initial
// positions explicitly (§4.9/§9: randomness lives in the caller, seeded
// explicitly).
type PlateParticles struct {
	particles  []Particle
	gridSize   float32
	forceScale float32
	velDamping float32
}

// NewPlateParticles allocates count particles for a gridSize x gridSize
// field. Positions are left at (0,0)/inactive; call Seed to place them.
func NewPlateParticles(gridSize float32, count int) *PlateParticles {
	return &PlateParticles{
		particles:  make([]Particle, count),
		gridSize:   gridSize,
		forceScale: 50.0,
		velDamping: 0.98,
	}
}

// Seed places each particle using the caller-provided random source
// seed, which must return floats in [0, 1).
func (p *PlateParticles) Seed(next func() float32) {
	for i := range p.particles {
		p.particles[i] = Particle{
			X:      next() * p.gridSize,
			Y:      next() * p.gridSize,
			Active: true,
		}
	}
}

// Particles returns the current particle slice, borrowed read-only.
func (p *PlateParticles) Particles() []Particle { return p.particles }

// Step integrates particle positions by dt seconds against the given
// field's gradient.
func (p *PlateParticles) Step(field *WaveField, dt float32) {
	for i := range p.particles {
		particle := &p.particles[i]
		if !particle.Active {
			continue
		}

		grad := field.GradientAt(particle.X, particle.Y)

		forceX := -grad.X * p.forceScale
		forceY := -grad.Y * p.forceScale

		particle.VX = (particle.VX + forceX*dt) * p.velDamping
		particle.VY = (particle.VY + forceY*dt) * p.velDamping
		particle.X += particle.VX * dt
		particle.Y += particle.VY * dt

		if particle.X < 0 {
			particle.X = 0
			particle.VX = -particle.VX * 0.5
		} else if particle.X >= p.gridSize {
			particle.X = p.gridSize - 1
			particle.VX = -particle.VX * 0.5
		}
		if particle.Y < 0 {
			particle.Y = 0
			particle.VY = -particle.VY * 0.5
		} else if particle.Y >= p.gridSize {
			particle.Y = p.gridSize - 1
			particle.VY = -particle.VY * 0.5
		}
	}
}
