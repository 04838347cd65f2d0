// Package popclock animates a digital clock that bursts into particles.
// Settled particles form a static mass layer that re-explodes into dynamic
// ones whenever it gains room to move.
package popclock

import (
	"math"
	"time"

	"pixmas/internal/clock"
	"pixmas/internal/core"
)

// dropoutSeconds is how long the floor stays open at the top of each hour so
// accumulated material can drain off the display.
const dropoutSeconds = 15

// PopClock owns the glyph rasterizer, the dynamic particle pool and the
// static mass field, and drives one fixed time step across all three.
type PopClock struct {
	cfg  Config
	w, h int

	rng    *core.RNG
	pool   Pool
	static *StaticField
	clock  *clock.DigitalClock

	needsPaint bool
	lastSecond int
	lastHour   int
	// Segment presence from the previous shape change, per digit slot, so
	// vanished segments can be popped.
	prevSegments [4][7]bool
}

// New constructs a PopClock for the configured universe size.
func New(cfg Config) (*PopClock, error) {
	dc, err := clock.New(cfg.Width, cfg.Height, cfg.HueCycle)
	if err != nil {
		return nil, err
	}
	return &PopClock{
		cfg:        cfg,
		w:          cfg.Width,
		h:          cfg.Height,
		rng:        core.NewRNG(cfg.Seed),
		static:     NewStaticField(cfg.Width, cfg.Height),
		clock:      dc,
		needsPaint: true,
		lastSecond: -1,
		lastHour:   -1,
	}, nil
}

// Name returns the hack identifier.
func (p *PopClock) Name() string { return "popclock" }

// Reset discards all particle state and reseeds the randomness. The clock face
// itself is derived from wall time and needs no resetting.
func (p *PopClock) Reset(seed int64) {
	p.rng = core.NewRNG(seed)
	p.pool = Pool{}
	p.static = NewStaticField(p.w, p.h)
	p.needsPaint = true
	p.lastSecond = -1
	p.lastHour = -1
	p.prevSegments = [4][7]bool{}
}

// Size reports the universe dimensions.
func (p *PopClock) Size() core.Size { return core.Size{W: p.w, H: p.h} }

// TickDuration is 33ms, roughly 30Hz.
func (p *PopClock) TickDuration() time.Duration { return 33 * time.Millisecond }

// WantRender reports whether anything changed since the last Render.
func (p *PopClock) WantRender() bool { return p.needsPaint }

// fastClock remaps minutes to hours and seconds to minutes for debugging the
// rollover effects without waiting an hour.
func fastClock(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(),
		now.Minute()%24, now.Second(), now.Second(), 0, now.Location())
}

// Simulate advances the whole hack by one tick. Within a tick the glyph
// update always precedes spawn decisions, which precede particle integration,
// which precedes the static field sweep; spawning must see the new mask to
// know what vanished.
func (p *PopClock) Simulate(now time.Time) {
	if p.cfg.FastClock {
		now = fastClock(now)
	}
	clockChanged := p.clock.SetTime(now)
	if clockChanged {
		// Nothing settles above the digit area, so re-simulating from just
		// above it covers every cell the shape change can affect.
		p.static.ForceSimulateFrom(p.clock.TopY() - 1)
		p.needsPaint = true
	}
	if p.lastSecond != now.Second() {
		// The clock makes quiet color changes every second, but not shape
		// changes; repaint without re-deriving anything.
		p.needsPaint = true
		p.lastSecond = now.Second()
	}

	// Drop out on the hour for a few seconds.
	dropout := now.Minute() == 0 && now.Second() < dropoutSeconds

	if p.cfg.ExplodeOnHour && p.lastHour != now.Hour() {
		p.static.PopAll(&p.pool, p.rng)
		p.lastHour = now.Hour()
	}

	p.spawnFromSegments(clockChanged)
	p.integrateParticles(dropout)

	// Simulate the static particle mass against the clock shape.
	if p.static.Simulate(&p.pool, p.rng, dropout, p.clock.SolidAt) {
		p.needsPaint = true
	}
}

// spawnFromSegments emits particles dripping off present segments and pops
// every pixel of freshly vanished segments.
func (p *PopClock) spawnFromSegments(clockChanged bool) {
	color := p.clock.Color()
	for d := 0; d < 4; d++ {
		digit := p.clock.Digit(d)
		for s := 0; s < 7; s++ {
			present := digit.Segment[s]
			rect := digit.SegRect[s]

			// Drip from existing segments.
			if p.cfg.Drip && present && p.rng.Frac() < p.cfg.DripChance {
				drip := p.rng.Coin()
				x := rect.Min.X + int(p.rng.Frac()*float64(rect.Dx()))
				y := rect.Min.Y
				if drip {
					y += rect.Dy()
				} else {
					y--
				}
				if p.static.Get(x, y) == 0 {
					part := p.pool.At(p.pool.Spawn())
					part.pop(p.rng, float64(x), float64(y), color)
					part.DY = math.Abs(part.DY)
					if !drip {
						part.DY = -part.DY
					}
				}
			}

			// Pop from freshly missing segments.
			if p.cfg.PopSegments && clockChanged {
				if !present && p.prevSegments[d][s] {
					// This segment just vanished; pop every pixel of it
					// upward to announce the digit change.
					for yo := 0; yo < rect.Dy(); yo++ {
						for xo := 0; xo < rect.Dx(); xo++ {
							part := p.pool.At(p.pool.Spawn())
							part.pop(p.rng, float64(rect.Min.X+xo), float64(rect.Min.Y+yo), color)
							part.DY = -math.Abs(part.DY)
						}
					}
				}
				p.prevSegments[d][s] = present
			}
		}
	}
}

// integrateParticles steps every active particle, deposits the ones that
// settle, and enforces the dropout containment rule.
func (p *PopClock) integrateParticles(dropout bool) {
	if !p.pool.HasLive() {
		return
	}
	// The floor must always be solid to avoid travel out of bounds, except
	// during dropout; the escape is caught below. SolidAt must still never
	// be queried out of bounds.
	obstacles := func(x, y int) bool {
		if dropout && y >= p.h {
			return false
		}
		return x < 0 || x >= p.w || y < 0 || y >= p.h ||
			p.static.Get(x, y) != 0 || p.clock.SolidAt(x, y)
	}

	active := 0
	for i := 0; i < p.pool.Len(); i++ {
		part := p.pool.At(i)
		if !part.Active {
			continue
		}
		active++
		if !part.Step(obstacles) {
			// Move this particle to the static layer.
			p.static.Set(int(part.X), int(part.Y), part.Color)
			part.stop()
		}
		if dropout && part.Y >= float64(p.h) {
			// The particle fell out of the universe; it must be stopped now
			// rather than left active out of bounds.
			part.stop()
		}
	}

	// Stop iterating the pool on future ticks until something spawns again.
	if active == 0 {
		p.pool.setIdle()
	}
	p.pool.maybeCompact(active)

	// We had live particles, so draw their impact.
	p.needsPaint = true
}

// Render composites the static layer, the active particles and the clock
// face into the frame.
func (p *PopClock) Render(f *core.Frame) {
	f.Clear()
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			if c := p.static.Get(x, y); c != 0 {
				f.SetPixel(x, y, c)
			}
		}
	}
	for i := range p.pool.Particles() {
		part := &p.pool.Particles()[i]
		if !part.Active {
			continue
		}
		f.SetPixel(int(part.X), int(part.Y), part.Color)
	}
	p.clock.Render(f)
	p.needsPaint = false
}

func init() {
	core.Register("popclock", func(cfg map[string]string) (core.Hack, error) {
		return New(FromMap(cfg))
	})
}
