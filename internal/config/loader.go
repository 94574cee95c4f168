package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.toml
var defaultTOML []byte

// EmbeddedSource names the built-in default configuration in errors and logs.
const EmbeddedSource = "<embedded>"

// Fallback values for optional keys.
const (
	DefaultSpeed     = 6
	DefaultSpeedStep = 1
	DefaultFoodX     = 10
	DefaultFoodY     = 10
)

var candidateNames = []string{"config.toml", "config.yaml", "config.yml"}

// Load resolves the startup configuration.
// Search order: customPath -> ~/.snake/config.{toml,yaml,yml} -> ./config.{toml,yaml,yml} -> embedded default.
// The first file that exists wins; if it is broken, Load fails rather than
// falling back. The returned source names the file that was used.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		return cfg, customPath, err
	}

	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".snake"))
	}
	dirs = append(dirs, ".")

	for _, dir := range dirs {
		for _, name := range candidateNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			cfg, err := LoadFile(path)
			return cfg, path, err
		}
	}

	cfg, err := Default()
	return cfg, EmbeddedSource, err
}

// LoadFile reads and resolves a single configuration file.
// The format is chosen from the file extension.
func LoadFile(path string) (Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &Error{Path: path, Err: fmt.Errorf("failed to read: %w", err)}
	}

	return Parse(data, format, path)
}

// Default returns the embedded default configuration.
func Default() (Config, error) {
	return Parse(defaultTOML, FormatTOML, EmbeddedSource)
}

// DefaultTOML returns the raw embedded default file.
func DefaultTOML() []byte {
	return defaultTOML
}

// FormatFromPath picks a decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", &Error{Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))}
}

// Parse decodes data in the given format and resolves it into a Config.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte, format Format, path string) (Config, error) {
	var fc fileConfig

	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fc); err != nil {
			return Config{}, &Error{Path: path, Err: fmt.Errorf("failed to parse: %w", err)}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, &Error{Path: path, Err: fmt.Errorf("failed to parse: %w", err)}
		}
	default:
		return Config{}, &Error{Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)}
	}

	cfg, err := resolve(fc, path)
	if err != nil {
		return Config{}, err
	}
	if err := Validate(cfg, path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode renders a resolved config in the given format.
func Encode(cfg Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(cfg)
	case FormatYAML:
		return yaml.Marshal(cfg)
	}
	return nil, fmt.Errorf("config: %w: %q", ErrUnsupportedFormat, format)
}

// resolve fills optional keys and rejects missing mandatory ones.
func resolve(fc fileConfig, path string) (Config, error) {
	var cfg Config

	if fc.Window == nil {
		return cfg, missing(path, "window")
	}
	if fc.Window.Width == nil {
		return cfg, missing(path, "window.width")
	}
	if fc.Window.Height == nil {
		return cfg, missing(path, "window.height")
	}
	cfg.Window = WindowConfig{Width: *fc.Window.Width, Height: *fc.Window.Height}

	if fc.Snake == nil {
		return cfg, missing(path, "snake")
	}
	if fc.Snake.Size == nil {
		return cfg, missing(path, "snake.size")
	}

	center := cfg.Bounds().Center()
	cfg.Snake = SnakeConfig{
		Size:      *fc.Snake.Size,
		Speed:     valueOr(fc.Snake.Speed, DefaultSpeed),
		X:         valueOr(fc.Snake.X, center.X),
		Y:         valueOr(fc.Snake.Y, center.Y),
		Direction: core.DirRight.String(),
	}
	if fc.Snake.Direction != nil {
		cfg.Snake.Direction = strings.ToLower(*fc.Snake.Direction)
	}

	cfg.Speed = SpeedConfig{Step: DefaultSpeedStep}
	if fc.Speed != nil {
		cfg.Speed.Step = valueOr(fc.Speed.Step, DefaultSpeedStep)
		cfg.Speed.Max = valueOr(fc.Speed.Max, 0)
	}

	cfg.Food = FoodConfig{X: DefaultFoodX, Y: DefaultFoodY}
	if fc.Food != nil {
		cfg.Food.X = valueOr(fc.Food.X, DefaultFoodX)
		cfg.Food.Y = valueOr(fc.Food.Y, DefaultFoodY)
	}

	return cfg, nil
}

// Validate checks that a resolved config can start a session.
func Validate(cfg Config, path string) error {
	if cfg.Window.Width <= 0 {
		return invalid(path, "window.width", "must be positive, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height <= 0 {
		return invalid(path, "window.height", "must be positive, got %d", cfg.Window.Height)
	}
	if cfg.Snake.Size <= 0 {
		return invalid(path, "snake.size", "must be positive, got %d", cfg.Snake.Size)
	}
	if cfg.Snake.Speed <= 0 {
		return invalid(path, "snake.speed", "must be positive, got %d", cfg.Snake.Speed)
	}
	if cfg.Speed.Step < 0 {
		return invalid(path, "speed.step", "must not be negative, got %d", cfg.Speed.Step)
	}
	if cfg.Speed.Max < 0 {
		return invalid(path, "speed.max", "must not be negative, got %d", cfg.Speed.Max)
	}
	if cfg.Speed.Max > 0 && cfg.Speed.Max < cfg.Snake.Speed {
		return invalid(path, "speed.max", "%d is below snake.speed %d", cfg.Speed.Max, cfg.Snake.Speed)
	}

	dir, err := core.ParseDirection(cfg.Snake.Direction)
	if err != nil {
		return invalid(path, "snake.direction", "%q is not one of up, down, left, right", cfg.Snake.Direction)
	}

	// The body trails away from the heading; both ends must be on the grid.
	bounds := cfg.Bounds()
	head := cfg.Head()
	back := dir.Opposite().Delta()
	tail := core.Point{X: head.X + back.X*(cfg.Snake.Size-1), Y: head.Y + back.Y*(cfg.Snake.Size-1)}
	if !bounds.Contains(head) {
		return invalid(path, "snake.x", "head %v is outside the %dx%d grid", head, bounds.Width, bounds.Height)
	}
	if !bounds.Contains(tail) {
		return invalid(path, "snake.size", "body of %d cells from %v heading %s leaves the grid", cfg.Snake.Size, head, dir)
	}

	return nil
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
