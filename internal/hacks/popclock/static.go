package popclock

import (
	"math"

	"pixmas/internal/core"
)

// StaticField holds settled particle mass as one packed color per cell, zero
// meaning empty. Settled cells don't move on their own; the field re-animates
// them by popping cells back into the dynamic pool when they gain room to
// fall or spill.
type StaticField struct {
	color []core.Pixel
	w, h  int
	// Y coordinate of the highest cell needing simulation (h = none).
	needsSimUpTo int
}

// NewStaticField allocates an empty field with the given dimensions.
func NewStaticField(w, h int) *StaticField {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &StaticField{color: make([]core.Pixel, w*h), w: w, h: h, needsSimUpTo: h}
}

// Get returns the cell color at (x, y), or zero for out-of-bounds
// coordinates. Edge-adjacent neighbor lookups are a normal case.
func (f *StaticField) Get(x, y int) core.Pixel {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return 0
	}
	return f.color[x+y*f.w]
}

// Set writes the cell at (x, y); out-of-bounds writes are dropped. Writing
// lowers the quiescent boundary so the cell above gets a chance to fall.
func (f *StaticField) Set(x, y int, c core.Pixel) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	f.color[x+y*f.w] = c
	if above := y - 1; above < f.needsSimUpTo {
		if above < 0 {
			above = 0
		}
		f.needsSimUpTo = above
	}
}

// tryPop converts the cell at (x, y) back into a dynamic particle, clearing
// the static mass in the same operation so it is never double-accounted.
// When down is set the new particle is forced to move downward. Returns the
// new particle's index.
func (f *StaticField) tryPop(pool *Pool, rng *core.RNG, x, y int, here core.Pixel, down bool) int {
	i := pool.Spawn()
	p := pool.At(i)
	p.pop(rng, float64(x), float64(y), here)
	if down {
		p.DY = math.Abs(p.DY)
	}
	f.Set(x, y, 0)
	return i
}

// simulateOne applies the per-cell rules; "here" is known nonzero. Reports
// whether the cell changed.
func (f *StaticField) simulateOne(pool *Pool, rng *core.RNG, obstacles core.Obstacle, dropBottom bool, x, y int, here core.Pixel) bool {
	// Hit check; get crushed by obstacles.
	if obstacles(x, y) {
		f.Set(x, y, 0)
		return true
	}

	// Fall check.
	fall := false
	if y+1 >= f.h {
		if dropBottom {
			fall = true
		}
	} else if f.Get(x, y+1) == 0 && !obstacles(x, y+1) {
		fall = true
	}
	if fall {
		i := f.tryPop(pool, rng, x, y, here, true)
		// Damped horizontal movement.
		pool.At(i).DX *= 0.25
		return true
	}

	// Angle of repose check. The left-to-right sweep means ties spill
	// left-biased; accepted asymmetry.
	downLeft := f.Get(x-1, y+1)
	downLeftObstacle := x == 0 || obstacles(x-1, y+1)
	downRight := f.Get(x+1, y+1)
	downRightObstacle := x == f.w-1 || obstacles(x+1, y+1)
	if downLeft == 0 && !downLeftObstacle {
		if downRight == 0 && !downRightObstacle {
			// Both diagonals open; pop free to go either way.
			f.tryPop(pool, rng, x, y, here, true)
		} else {
			// Spill left.
			i := f.tryPop(pool, rng, x, y, here, true)
			pool.At(i).DX = -math.Abs(pool.At(i).DX)
		}
		return true
	}
	if downRight == 0 && !downRightObstacle {
		// Spill right.
		i := f.tryPop(pool, rng, x, y, here, true)
		pool.At(i).DX = math.Abs(pool.At(i).DX)
		return true
	}
	return false
}

// Simulate runs one bounded pass over the rows that may still move, bottom-up
// so falling is natural, left to right within a row. Each cell changes at
// most once per tick. When dropBottom is set the bottom row is included so
// settled mass can leave the universe. Reports whether anything changed.
func (f *StaticField) Simulate(pool *Pool, rng *core.RNG, dropBottom bool, obstacles core.Obstacle) bool {
	changed := false
	startY := f.h - 2
	if dropBottom {
		startY = f.h - 1
	}
	// Only sim up to known changes; drop-bottom forces the bottom row even
	// on an otherwise quiescent field.
	stopY := f.needsSimUpTo
	if dropBottom && stopY > f.h-1 {
		stopY = f.h - 1
	}
	f.needsSimUpTo = f.h
	for y := startY; y >= stopY; y-- {
		row := y * f.w
		for x := 0; x < f.w; x++ {
			if here := f.color[row+x]; here != 0 {
				if f.simulateOne(pool, rng, obstacles, dropBottom, x, y, here) {
					changed = true
				}
			}
		}
	}
	return changed
}

// ForceSimulateFrom marks every row from upTo downward for re-simulation on
// the next pass, used when the obstacle field changes shape.
func (f *StaticField) ForceSimulateFrom(upTo int) {
	if upTo < 0 {
		upTo = 0
	}
	f.needsSimUpTo = upTo
}

// PopAll converts every occupied cell back into a dynamic particle at once.
func (f *StaticField) PopAll(pool *Pool, rng *core.RNG) {
	for y := 0; y < f.h; y++ {
		row := y * f.w
		for x := 0; x < f.w; x++ {
			if here := f.color[row+x]; here != 0 {
				f.tryPop(pool, rng, x, y, here, false)
			}
		}
	}
	// Cancel all sim; we've just wiped all static mass away.
	f.needsSimUpTo = f.h
}
