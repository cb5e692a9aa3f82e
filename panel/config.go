package panel

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/OpticalFlyer/eqpanel/gfx"
)

// MaxStages is the largest number of filter stages the panel lays out.
const MaxStages = 4

// Range is the span a slider covers.
type Range struct {
	Min float32 `toml:"min"`
	Max float32 `toml:"max"`
}

// Colors names color wheel entries for each row of widgets.
type Colors struct {
	Play   string `toml:"play"`
	Filter string `toml:"filter"`
	Select string `toml:"select"`
	Slider string `toml:"slider"`
}

// Config describes the panel layout and slider ranges.
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	Stages int `toml:"stages"`

	Frequency Range `toml:"frequency"`
	Q         Range `toml:"q"`
	Gain      Range `toml:"gain"`

	Colors Colors `toml:"colors"`
}

// DefaultConfig returns the layout for a 480x272 display with two stages.
func DefaultConfig() Config {
	return Config{
		Width:     480,
		Height:    272,
		Stages:    2,
		Frequency: Range{Min: 20, Max: 20000},
		Q:         Range{Min: 0.1, Max: 10},
		Gain:      Range{Min: -12, Max: 12},
		Colors: Colors{
			Play:   "green",
			Filter: "light blue",
			Select: "yellow",
			Slider: "orange",
		},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. A missing file is
// not an error; the defaults are returned unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Write stores c as TOML at path.
func (c Config) Write(path string) error {
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Validate checks that the layout fits and every range and color is usable.
func (c Config) Validate() error {
	if c.Width < minWidth || c.Height < minHeight {
		return fmt.Errorf("screen %dx%d smaller than %dx%d", c.Width, c.Height, minWidth, minHeight)
	}
	if c.Stages < 1 || c.Stages > MaxStages {
		return fmt.Errorf("stages = %d, want 1..%d", c.Stages, MaxStages)
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"frequency", c.Frequency},
		{"q", c.Q},
		{"gain", c.Gain},
	}
	for _, nr := range ranges {
		if err := nr.r.validate(); err != nil {
			return fmt.Errorf("%s: %w", nr.name, err)
		}
	}
	for _, name := range []string{c.Colors.Play, c.Colors.Filter, c.Colors.Select, c.Colors.Slider} {
		if _, err := gfx.ParseColor(name); err != nil {
			return err
		}
	}
	return nil
}

func (r Range) validate() error {
	if math.IsNaN(float64(r.Min)) || math.IsNaN(float64(r.Max)) ||
		math.IsInf(float64(r.Min), 0) || math.IsInf(float64(r.Max), 0) {
		return fmt.Errorf("range [%v, %v] not finite", r.Min, r.Max)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("range min %v not below max %v", r.Min, r.Max)
	}
	return nil
}
