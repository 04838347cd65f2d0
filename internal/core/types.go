package core

import "time"

// Size describes the dimensions of a hack's pixel universe.
type Size struct {
	W int
	H int
}

// Obstacle reports whether the point (x, y) is solid for physics purposes.
// The accepted coordinate domain is part of each caller's contract.
type Obstacle func(x, y int) bool

// Hack defines the minimal contract a screensaver simulation must implement.
// Simulate is called once per fixed tick; Render only when WantRender reports
// that something visible changed since the last frame.
type Hack interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Simulate(now time.Time)
	WantRender() bool
	Render(f *Frame)
	TickDuration() time.Duration
}

// Factory constructs a Hack using an optional configuration map. Construction
// is the only fallible operation; a returned error is fatal to the caller.
type Factory func(cfg map[string]string) (Hack, error)

var hacks = map[string]Factory{}

// Register adds a hack factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	hacks[name] = f
}

// Hacks exposes the registry of available hack factories.
func Hacks() map[string]Factory {
	return hacks
}
