// Package snowclock animates drifting snow collecting upon a digital clock.
// Flakes use delay-based integer velocities; settled snow becomes a mass
// field that flows under gravity and angle-of-repose rules.
package snowclock

import (
	"time"

	"pixmas/internal/clock"
	"pixmas/internal/core"
)

// flakeCount is a deliberate fixed capacity: flakes are immortal and respawn
// at the top whenever they land or leave the universe, so no spawn can ever
// fail or be dropped.
const flakeCount = 2048

const dropoutSeconds = 15

// Snowflake is a drifting particle. Velocity is expressed as delays, the
// number of ticks between single-pixel steps on each axis; delayT is the
// terminal velocity, the smallest the fall delay can get.
type Snowflake struct {
	x, y, dx int // dx is sign only
	delayX   uint
	delayY   uint
	delayT   uint
	mass     uint8
}

func (f *Snowflake) init(h *SnowClock) {
	f.resetCommon(h)
	f.y = h.rng.IntN(h.h)
}

func (f *Snowflake) resetAtTop(h *SnowClock) {
	f.resetCommon(h)
	f.y = 0
	// Stop things getting too lockstep.
	f.delayY /= 2
	f.delayY += 1 + uint(h.rng.Between(1, 10))/2
}

func (f *Snowflake) resetCommon(h *SnowClock) {
	f.x = h.rng.IntN(h.w)
	if h.rng.Coin() {
		f.dx = 1
	} else {
		f.dx = -1
	}
	f.delayX = uint(h.rng.Between(1, 20))
	f.delayY = uint(h.rng.Between(1, 10))
	f.mass = uint8(h.rng.Between(1, 255))
	f.delayT = uint((255-int(f.mass))/25) + 1
}

// SnowClock owns the flakes, the settled snow field, the per-row breeze
// state and the clock face, and drives one fixed time step across them.
type SnowClock struct {
	cfg  Config
	w, h int

	rng    *core.RNG
	flakes []Snowflake

	// Breezes are row-scoped sideways pushes: a sign and a delay (inverse
	// strength) per row, smoothed towards neighbors and decaying over time.
	breezeDelay  []uint
	breezeSign   []int
	tick         uint
	nextBreezeIn uint

	snow  *StaticSnow
	clock *clock.DigitalClock

	needsPaint bool
}

// New constructs a SnowClock for the configured universe size.
func New(cfg Config) (*SnowClock, error) {
	dc, err := clock.New(cfg.Width, cfg.Height, cfg.HueCycle)
	if err != nil {
		return nil, err
	}
	s := &SnowClock{
		cfg:         cfg,
		w:           cfg.Width,
		h:           cfg.Height,
		rng:         core.NewRNG(cfg.Seed),
		flakes:      make([]Snowflake, flakeCount),
		breezeDelay: make([]uint, cfg.Height),
		breezeSign:  make([]int, cfg.Height),
		snow:        NewStaticSnow(cfg.Width, cfg.Height),
		clock:       dc,
		needsPaint:  true,
	}
	for i := range s.flakes {
		s.flakes[i].init(s)
	}
	return s, nil
}

// Name returns the hack identifier.
func (s *SnowClock) Name() string { return "snowclock" }

// Reset clears the settled snow and breezes, rescatters the flakes and
// reseeds the randomness.
func (s *SnowClock) Reset(seed int64) {
	s.rng = core.NewRNG(seed)
	for i := range s.flakes {
		s.flakes[i].init(s)
	}
	for y := 0; y < s.h; y++ {
		s.breezeDelay[y] = 0
		s.breezeSign[y] = 0
	}
	s.tick = 0
	s.nextBreezeIn = 0
	s.snow = NewStaticSnow(s.w, s.h)
	s.needsPaint = true
}

// Size reports the universe dimensions.
func (s *SnowClock) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// TickDuration is 100ms; snow drifts at 10Hz.
func (s *SnowClock) TickDuration() time.Duration { return 100 * time.Millisecond }

// WantRender reports whether anything changed since the last Render. Flakes
// are always in motion, so this is true after every Simulate.
func (s *SnowClock) WantRender() bool { return s.needsPaint }

// Simulate advances the whole hack by one tick: clock, breezes, flakes, then
// the settled mass field.
func (s *SnowClock) Simulate(now time.Time) {
	s.clock.SetTime(now)
	s.stirBreezes()
	s.moveFlakes()

	// The clock face never reaches the walls, so anything the mass sweep
	// asks about outside the universe is open air.
	obstacles := func(x, y int) bool {
		if x < 0 || x >= s.w || y < 0 || y >= s.h {
			return false
		}
		return s.clock.SolidAt(x, y)
	}
	dropout := now.Minute() == 0 && now.Second() < dropoutSeconds
	s.snow.Simulate(dropout, obstacles)

	s.tick++
	s.needsPaint = true
}

// stirBreezes injects fresh energy into a random row now and then, then
// smooths neighboring rows towards each other and bleeds energy off.
func (s *SnowClock) stirBreezes() {
	if s.nextBreezeIn == 0 {
		y := s.rng.IntN(s.h)
		s.breezeDelay[y] = uint(s.rng.Between(1, 3))
		if s.rng.Coin() {
			s.breezeSign[y] = 1
		} else {
			s.breezeSign[y] = -1
		}
		s.nextBreezeIn = uint(s.rng.Between(1, 20))
	} else {
		s.nextBreezeIn--
	}

	for y := 1; y < s.h; y++ {
		if s.breezeSign[y-1] == s.breezeSign[y] {
			switch {
			case s.breezeSign[y] == 0:
				// Both rows are still.
			case s.breezeDelay[y-1] < s.breezeDelay[y]:
				s.breezeDelay[y-1]++
				s.breezeDelay[y]--
			case s.breezeDelay[y-1] > s.breezeDelay[y]:
				s.breezeDelay[y-1]--
				s.breezeDelay[y]++
			}
		} else if s.breezeSign[y-1] == 0 {
			// A still row picks up a very slow copy of its neighbor.
			s.breezeSign[y-1] = s.breezeSign[y]
			s.breezeDelay[y-1] = s.breezeDelay[y] + uint(s.rng.Between(1, 3)) + 10
		} else if s.breezeSign[y] == 0 {
			s.breezeSign[y] = s.breezeSign[y-1]
			s.breezeDelay[y] = s.breezeDelay[y-1] + uint(s.rng.Between(1, 3)) + 10
		} else {
			// Opposite directions on adjacent rows; damp both harder.
			s.breezeDelay[y-1] += 2
			s.breezeDelay[y] += 2
		}

		// Expire and decay.
		if s.breezeSign[y] == 0 {
			continue
		}
		if s.breezeDelay[y] > 100 {
			s.breezeSign[y] = 0
			s.breezeDelay[y] = 100
		} else {
			s.breezeDelay[y]++
		}
	}
}

// moveFlakes advances every flake and handles its collisions; any collision
// or exit settles the flake's mass and respawns it at the top.
func (s *SnowClock) moveFlakes() {
	for i := range s.flakes {
		flake := &s.flakes[i]

		// Breezes push sideways and give a little updraft.
		if flake.y >= 0 && flake.y < s.h &&
			s.breezeSign[flake.y] != 0 &&
			s.tick%s.breezeDelay[flake.y] == 0 {
			flake.x += s.breezeSign[flake.y]
			flake.y--
		}

		// Momentum.
		if s.tick%flake.delayX == 0 {
			flake.x += flake.dx
		}
		if s.tick%flake.delayY == 0 {
			flake.y++
			// Accelerate due to gravity up to terminal velocity.
			if flake.delayY > flake.delayT {
				flake.delayY--
			}
		}

		// Wrap horizontally.
		if flake.x < 0 {
			flake.x += s.w
		}
		if flake.x >= s.w {
			flake.x -= s.w
		}

		// Collide and collect with the settled snow, the floor, or the clock.
		switch {
		case flake.y >= s.h:
			s.snow.Deposit(flake.x, s.h-1, flake.mass)
			flake.resetAtTop(s)
		case s.snow.Get(flake.x, flake.y) > 0:
			s.snow.Deposit(flake.x, flake.y, flake.mass)
			flake.resetAtTop(s)
		case flake.y < 0:
			// Carried off the top by a breeze; respawn immediately.
			flake.resetAtTop(s)
		case s.clock.SolidAt(flake.x, flake.y):
			// Settle on top of the clock; anything above collides with the
			// gathered snow instead.
			above := int(s.snow.Get(flake.x, flake.y-1)) + int(flake.mass)
			if above > 255 {
				above = 255
			}
			s.snow.Set(flake.x, flake.y-1, uint8(above))
			flake.resetAtTop(s)
		}
	}
}

// Render composites the settled snow as a grey ramp, the flakes as fat
// additive plus-shapes, and the clock face on top.
func (s *SnowClock) Render(f *core.Frame) {
	f.Clear()
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			if m := s.snow.Get(x, y); m > 0 {
				f.SetPixel(x, y, core.Pack(m, m, m))
			}
		}
	}

	for i := range s.flakes {
		flake := &s.flakes[i]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx != 0 && dy != 0 { // no corners
					continue
				}
				x := flake.x + dx
				y := flake.y + dy
				if x < 0 || x >= s.w || y < 0 || y >= s.h {
					continue
				}
				cur, _, _, _ := f.PixelAt(x, y).RGBA8()
				bright := int(cur) + int(flake.mass)
				if bright > 255 {
					bright = 255
				}
				b := uint8(bright)
				f.SetPixel(x, y, core.Pack(b, b, b))
			}
		}
	}

	s.clock.Render(f)
	s.needsPaint = false
}

func init() {
	core.Register("snowclock", func(cfg map[string]string) (core.Hack, error) {
		return New(FromMap(cfg))
	})
}
