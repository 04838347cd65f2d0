package snowclock

import "strconv"

// Config holds the snow clock dimensions and seeding.
type Config struct {
	Width  int
	Height int

	Seed int64

	HueCycle bool
}

// DefaultConfig returns the standard configuration. The festive red/green
// palette is the default for this variant.
func DefaultConfig() Config {
	return Config{
		Width:    800,
		Height:   480,
		Seed:     1337,
		HueCycle: false,
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
	return c
}
