package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Hack      string
	Width     int
	Height    int
	Scale     int
	Seed      int64
	HueCycle  bool
	Drip      bool
	FastClock bool
}

// NewConfig returns a Config populated with sensible defaults. The default
// resolution matches the Pimoroni HyperPixel the hacks were tuned on.
func NewConfig() *Config {
	return &Config{Hack: "popclock", Width: 800, Height: 480, Scale: 1, Seed: 1337, HueCycle: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Hack, "hack", c.Hack, "hack to run")
	fs.IntVar(&c.Width, "w", c.Width, "universe width in pixels")
	fs.IntVar(&c.Height, "h", c.Height, "universe height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for particle randomness")
	fs.BoolVar(&c.HueCycle, "hue", c.HueCycle, "cycle the clock hue instead of the festive palette")
	fs.BoolVar(&c.Drip, "drip", c.Drip, "spawn ambient particles dripping off segments")
	fs.BoolVar(&c.FastClock, "fastclock", c.FastClock, "run the clock fast for debugging rollover effects")
}

// Settings flattens the config into the key/value map hack factories consume.
func (c *Config) Settings() map[string]string {
	return map[string]string{
		"w":         strconv.Itoa(c.Width),
		"h":         strconv.Itoa(c.Height),
		"seed":      strconv.FormatInt(c.Seed, 10),
		"hue":       strconv.FormatBool(c.HueCycle),
		"drip":      strconv.FormatBool(c.Drip),
		"fastclock": strconv.FormatBool(c.FastClock),
	}
}
