// Package config loads the snake startup configuration from TOML or YAML files
// and resolves it into the single Config consumed by the game constructor.
package config

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config is the resolved startup configuration. All sizes are grid cells.
type Config struct {
	Window WindowConfig `toml:"window" yaml:"window"`
	Snake  SnakeConfig  `toml:"snake" yaml:"snake"`
	Speed  SpeedConfig  `toml:"speed" yaml:"speed"`
	Food   FoodConfig   `toml:"food" yaml:"food"`
}

// WindowConfig is the playfield size.
type WindowConfig struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

// SnakeConfig describes the snake at session start.
type SnakeConfig struct {
	Size      int    `toml:"size" yaml:"size"`
	Speed     int    `toml:"speed" yaml:"speed"` // initial update ticks per second
	X         int    `toml:"x" yaml:"x"`         // head cell
	Y         int    `toml:"y" yaml:"y"`
	Direction string `toml:"direction" yaml:"direction"`
}

// SpeedConfig controls how the tick rate grows as food is eaten.
type SpeedConfig struct {
	Step int `toml:"step" yaml:"step"` // ticks per second added per food
	Max  int `toml:"max" yaml:"max"`   // 0 = unbounded
}

// FoodConfig is the initial food cell.
type FoodConfig struct {
	X int `toml:"x" yaml:"x"`
	Y int `toml:"y" yaml:"y"`
}

// Bounds returns the playfield as grid bounds.
func (c Config) Bounds() core.Bounds {
	return core.Bounds{Width: c.Window.Width, Height: c.Window.Height}
}

// Head returns the snake's starting head cell.
func (c Config) Head() core.Point {
	return core.Point{X: c.Snake.X, Y: c.Snake.Y}
}

// Direction returns the snake's starting direction.
// Resolved configs always carry a valid name.
func (c Config) Direction() core.Direction {
	d, err := core.ParseDirection(c.Snake.Direction)
	if err != nil {
		return core.DirRight
	}
	return d
}

// InitialFood returns the starting food cell.
func (c Config) InitialFood() core.Point {
	return core.Point{X: c.Food.X, Y: c.Food.Y}
}

// Format is a configuration file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// fileConfig mirrors Config with pointer fields so absent keys can be told
// apart from zero values.
type fileConfig struct {
	Window *struct {
		Width  *int `toml:"width" yaml:"width"`
		Height *int `toml:"height" yaml:"height"`
	} `toml:"window" yaml:"window"`
	Snake *struct {
		Size      *int    `toml:"size" yaml:"size"`
		Speed     *int    `toml:"speed" yaml:"speed"`
		X         *int    `toml:"x" yaml:"x"`
		Y         *int    `toml:"y" yaml:"y"`
		Direction *string `toml:"direction" yaml:"direction"`
	} `toml:"snake" yaml:"snake"`
	Speed *struct {
		Step *int `toml:"step" yaml:"step"`
		Max  *int `toml:"max" yaml:"max"`
	} `toml:"speed" yaml:"speed"`
	Food *struct {
		X *int `toml:"x" yaml:"x"`
		Y *int `toml:"y" yaml:"y"`
	} `toml:"food" yaml:"food"`
}
