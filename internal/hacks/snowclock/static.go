package snowclock

import "pixmas/internal/core"

// StaticSnow is a per-pixel accumulator of settled snow mass, simulated as a
// discrete flow automaton. Zero is empty; 255 is the saturation ceiling.
type StaticSnow struct {
	mass *core.ByteGrid
}

// NewStaticSnow allocates an empty snow field.
func NewStaticSnow(w, h int) *StaticSnow {
	return &StaticSnow{mass: core.NewByteGrid(w, h)}
}

// Get returns the mass at (x, y); out-of-bounds reads are zero.
func (s *StaticSnow) Get(x, y int) uint8 { return s.mass.Get(x, y) }

// Set writes the mass at (x, y); out-of-bounds writes are dropped.
func (s *StaticSnow) Set(x, y int, m uint8) { s.mass.Set(x, y, m) }

// Deposit adds mass at (x, y), pushing any overflow past the saturation
// ceiling into the cell directly above.
func (s *StaticSnow) Deposit(x, y int, m uint8) {
	total := int(s.Get(x, y)) + int(m)
	if total > 255 {
		s.Set(x, y-1, uint8(total-255))
		total = 255
	}
	s.Set(x, y, uint8(total))
}

// flow moves as much mass as fits from (sx, sy) to (dx, dy) without
// overflowing. Mass is conserved between the two cells unless the
// destination is out of bounds, in which case it leaves the universe.
func (s *StaticSnow) flow(sx, sy, dx, dy int) {
	total := int(s.Get(sx, sy)) + int(s.Get(dx, dy))
	to := total
	if to > 255 {
		to = 255
	}
	s.Set(dx, dy, uint8(to))
	s.Set(sx, sy, uint8(total-to))
}

// Simulate runs one pass of the flow rules, bottom-up so falling is natural.
// Each cell changes at most once per tick. When dropBottom is set the bottom
// row is included in the fall sweep so snow can leave the universe entirely.
// Reports whether any mass moved.
func (s *StaticSnow) Simulate(dropBottom bool, obstacles core.Obstacle) bool {
	w, h := s.mass.W, s.mass.H
	changed := false
	// The bottom row is usually completely static once formed, but when
	// dropBottom is true we let it fall away.
	startY := h - 2
	if dropBottom {
		startY = h - 1
	}
	for y := startY; y >= 0; y-- {
		for x := 0; x < w; x++ {
			here := s.Get(x, y)
			if here == 0 {
				continue
			}

			// Hit check; get crushed by obstacles.
			if obstacles(x, y) {
				s.Set(x, y, 0)
				changed = true
				continue
			}

			// Fall check. Below the bottom row the reads are zero and the
			// writes dropped, which is exactly the dropout drain.
			if s.Get(x, y+1) < here && !obstacles(x, y+1) {
				s.flow(x, y, x, y+1)
				changed = true
				continue
			}

			// Angle of repose check, must be away from the walls. The
			// left-to-right sweep means ties spill left-biased; accepted
			// asymmetry.
			if x > 0 && x < w-1 {
				downLeft := s.Get(x-1, y+1)
				downLeftObstacle := obstacles(x-1, y+1)
				downRight := s.Get(x+1, y+1)
				downRightObstacle := obstacles(x+1, y+1)
				if downLeft < here && !downLeftObstacle {
					if downRight < here && !downRightObstacle {
						// Split, 3-way flow.
						total := int(downLeft) + int(downRight) + int(here)
						half := total / 2
						if half > 255 {
							half = 255
						}
						s.Set(x-1, y+1, uint8(half))
						s.Set(x+1, y+1, uint8(half))
						s.Set(x, y, uint8(total-half*2))
					} else {
						// Spill left.
						s.flow(x, y, x-1, y+1)
					}
					changed = true
				} else if downRight < here && !downRightObstacle {
					// Spill right.
					s.flow(x, y, x+1, y+1)
					changed = true
				}
			}
		}
	}
	return changed
}
