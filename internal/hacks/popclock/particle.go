package popclock

import (
	"math"

	"pixmas/internal/core"
)

const (
	gravity         = 0.01
	friction        = 0.8
	elasticity      = 0.5
	movementEpsilon = 0.1
)

// Particle is a free-moving pixel with continuous position and velocity.
// Velocities never exceed one pixel per tick; the terminal velocity can be
// less than one.
type Particle struct {
	Active bool
	X, Y   float64
	DX, DY float64
	TV     float64
	Color  core.Pixel
}

// pop activates the particle at (x, y) with random velocity in both axes, up
// to a freshly rolled terminal velocity.
func (p *Particle) pop(rng *core.RNG, x, y float64, c core.Pixel) {
	p.Active = true
	p.X = x
	p.Y = y
	p.TV = rng.Frac()*0.7 + 0.3
	p.DX = rng.Frac() * p.TV
	if rng.Coin() {
		p.DX = -p.DX
	}
	p.DY = rng.Frac() * p.TV
	if rng.Coin() {
		p.DY = -p.DY
	}
	p.Color = c
}

// stop deactivates the particle, freeing the slot for reuse.
func (p *Particle) stop() {
	p.Active = false
}

// Step advances the particle one tick against the obstacle field. It reports
// whether the particle is still in flight; false means it has settled and the
// caller should move it to the static layer.
func (p *Particle) Step(obstacles core.Obstacle) bool {
	if !p.Active {
		panic("popclock: Step on an inactive particle")
	}

	// Work out the potential new location.
	xp := p.X + p.DX
	yp := p.Y + p.DY
	blockedX := false
	blockedY := false

	if obstacles(int(xp), int(yp)) {
		// We would hit something; bounce instead, testing each axis alone.
		if obstacles(int(xp), int(p.Y)) { // colliding horizontally
			p.DX *= -elasticity
			xp = p.X
			blockedX = true
		}
		if obstacles(int(p.X), int(yp)) { // colliding vertically
			p.DY *= -elasticity
			p.DX *= friction // don't slide along the bottom freely
			yp = p.Y
			blockedY = true
		}
	}
	p.X = xp
	p.Y = yp

	// Particles are still alive if:
	//  - they have above-epsilon velocity
	moving := math.Abs(p.DX) > movementEpsilon || math.Abs(p.DY) > movementEpsilon
	//  - they have open space below to fall into; gravity should eventually
	//    win even if they're grinding on the X axis
	canFall := !obstacles(int(p.X), int(p.Y)+1)
	//  - they aren't jammed into an obstacle such that movement is fully blocked
	makingProgress := !blockedX || !blockedY
	// Accelerate due to gravity up to terminal.
	p.DY = math.Min(p.TV, p.DY+gravity)
	return (moving || canFall) && makingProgress
}

const (
	defragThreshold = 128 // don't compact arenas smaller than this
	defragFactor    = 2   // compact when len exceeds active count N times over
)

// Pool is a growable particle arena. Dead entries stay interleaved with live
// ones until a compaction pass removes them; compaction is an amortized-cost
// policy, not a correctness requirement.
type Pool struct {
	parts []Particle
	live  bool
}

// Spawn appends a fresh inactive slot and returns its index. It always
// succeeds; the arena grows as needed.
func (p *Pool) Spawn() int {
	p.parts = append(p.parts, Particle{})
	p.live = true
	return len(p.parts) - 1
}

// At returns the particle at index i.
func (p *Pool) At(i int) *Particle { return &p.parts[i] }

// Len returns the arena size including dead slots.
func (p *Pool) Len() int { return len(p.parts) }

// Particles exposes the backing slice for iteration.
func (p *Pool) Particles() []Particle { return p.parts }

// HasLive reports whether any particle may still be active. It goes true on
// every Spawn and false once an integration pass finds nothing active.
func (p *Pool) HasLive() bool { return p.live }

func (p *Pool) setIdle() { p.live = false }

// maybeCompact drops inactive entries once the arena has gone sparse. The
// capacity is left for the runtime to manage; we only tighten the logical
// size so iteration stays cheap.
func (p *Pool) maybeCompact(active int) {
	if len(p.parts) <= defragThreshold || active*defragFactor >= len(p.parts) {
		return
	}
	kept := p.parts[:0]
	for i := range p.parts {
		if p.parts[i].Active {
			kept = append(kept, p.parts[i])
		}
	}
	p.parts = kept
}
