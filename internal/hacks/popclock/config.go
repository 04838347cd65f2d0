package popclock

import "strconv"

// Config holds the tunable behavior switches for the pop clock.
type Config struct {
	Width  int
	Height int

	Seed int64

	HueCycle      bool
	PopSegments   bool
	Drip          bool
	DripChance    float64
	ExplodeOnHour bool
	FastClock     bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        480,
		Seed:          1337,
		HueCycle:      true,
		PopSegments:   true,
		Drip:          false,
		DripChance:    0.075,
		ExplodeOnHour: true,
		FastClock:     false,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["hue"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.HueCycle = parsed
		}
	}
	if v, ok := cfg["drip"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Drip = parsed
		}
	}
	if v, ok := cfg["drip_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.DripChance = parsed
		}
	}
	if v, ok := cfg["explode"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.ExplodeOnHour = parsed
		}
	}
	if v, ok := cfg["fastclock"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.FastClock = parsed
		}
	}
	return c
}
