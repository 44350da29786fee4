package blocky

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// maxSupportedDepth bounds MaxDepth so flattened grids stay reasonably small.
const maxSupportedDepth = 10

// Goal kinds accepted by Config.Goal.
const (
	GoalRandom    = "random"
	GoalBlob      = "blob"
	GoalPerimeter = "perimeter"
)

// Config holds construction-time settings for a Board.
type Config struct {
	// MaxDepth is the deepest level a block can reach.
	MaxDepth int `yaml:"max_depth"`

	// BoardSize is the root's side length in pixels. It must halve
	// evenly down to MaxDepth.
	BoardSize int `yaml:"board_size"`

	// Seed drives both generation and smashing.
	Seed uint64 `yaml:"seed"`

	// Goal is one of "random", "blob" or "perimeter".
	Goal string `yaml:"goal"`

	// Target is the palette name of the goal color. Empty picks at random.
	Target string `yaml:"target"`

	// Colors is an ordered subset of the default palette names. Empty uses
	// the whole default palette.
	Colors []string `yaml:"colors"`

	// Debug enables move logging and invariant checks.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the standard 512-unit board with depth 4 and a
// random goal.
func DefaultConfig() Config {
	return Config{
		MaxDepth:  4,
		BoardSize: 512,
		Seed:      1,
		Goal:      GoalRandom,
	}
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parse: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file. An empty path returns DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks depth, size, goal kind and color names.
func (c Config) Validate() error {
	if c.MaxDepth < 0 || c.MaxDepth > maxSupportedDepth {
		return fmt.Errorf("%w: max_depth %d outside [0, %d]", ErrInvalidConfig, c.MaxDepth, maxSupportedDepth)
	}
	if c.BoardSize <= 0 || !sizeFitsDepth(c.BoardSize, c.MaxDepth) {
		return fmt.Errorf("%w: board_size %d cannot be split to depth %d", ErrInvalidConfig, c.BoardSize, c.MaxDepth)
	}
	switch c.Goal {
	case "", GoalRandom, GoalBlob, GoalPerimeter:
	default:
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidConfig, c.Goal)
	}
	palette, err := c.palette()
	if err != nil {
		return err
	}
	if c.Target != "" {
		if _, ok := palette.Lookup(c.Target); !ok {
			return fmt.Errorf("%w: target %q not in palette", ErrInvalidConfig, c.Target)
		}
	}
	return nil
}

// sizeFitsDepth reports whether a root of the given size satisfies the size
// rules at every level down to maxDepth.
func sizeFitsDepth(size, maxDepth int) bool {
	probe := &Block{maxDepth: maxDepth}
	for level := 0; level <= maxDepth; level++ {
		probe.level = level
		if probe.checkSize(size) != nil {
			return false
		}
		size /= 2
	}
	return true
}

func (c Config) palette() (Palette, error) {
	if len(c.Colors) == 0 {
		return DefaultPalette, nil
	}
	return DefaultPalette.Subset(c.Colors)
}

// newGoal builds the configured goal, drawing any random choices from gen.
func (c Config) newGoal(gen *Generator) (Goal, error) {
	var target Swatch
	if c.Target == "" {
		target = gen.randomSwatch()
	} else {
		s, ok := gen.palette().Lookup(c.Target)
		if !ok {
			return nil, fmt.Errorf("%w: target %q not in palette", ErrInvalidConfig, c.Target)
		}
		target = s
	}

	kind := c.Goal
	if kind == "" || kind == GoalRandom {
		kind = GoalBlob
		if gen.Rand.IntN(2) == 1 {
			kind = GoalPerimeter
		}
	}
	if kind == GoalBlob {
		return NewBlobGoal(target), nil
	}
	return NewPerimeterGoal(target), nil
}
