package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/rockbmb/wasm-game-of-life/pkg/life"

	"github.com/pkg/errors"
)

// Config represents the parameters shared by the front ends.
type Config struct {
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Pattern        string `json:"pattern"`
	Seed           int64  `json:"seed"`
	Scale          int    `json:"scale"`
	TPS            int    `json:"tps"`
	MaxGenerations int    `json:"max_generations"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:   64,
		Height:  64,
		Pattern: "striped",
		Seed:    42,
		Scale:   8,
		TPS:     10,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "universe width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "universe height in cells")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern name")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 = run forever)")
}

// LoadFile overlays values from a JSON config file on top of the current
// configuration.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read config file %q", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal config file %q", path)
	}
	return nil
}

// NewUniverse constructs the universe described by the configuration.
func (c *Config) NewUniverse() (*life.Universe, error) {
	factory, err := life.Lookup(c.Pattern)
	if err != nil {
		return nil, err
	}
	return life.New(c.Width, c.Height, factory(c.Width, c.Height, c.Seed))
}

// NewPattern builds the configured pattern, for reseeding an existing
// universe without reconstructing it.
func (c *Config) NewPattern(seed int64) (life.Pattern, error) {
	factory, err := life.Lookup(c.Pattern)
	if err != nil {
		return nil, err
	}
	return factory(c.Width, c.Height, seed), nil
}
