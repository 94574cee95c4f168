package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Window.Width)
	assert.Equal(t, 18, cfg.Window.Height)
	assert.Equal(t, 4, cfg.Snake.Size)
	assert.Equal(t, DefaultSpeed, cfg.Snake.Speed)
	assert.Equal(t, core.DirRight, cfg.Direction())
	assert.Equal(t, core.Point{X: 15, Y: 9}, cfg.Head(), "head defaults to the grid centre")
	assert.Equal(t, core.Point{X: 10, Y: 10}, cfg.InitialFood())
	assert.Equal(t, 1, cfg.Speed.Step)
	assert.Equal(t, 0, cfg.Speed.Max)
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, "snake.toml", `
[window]
width = 80
height = 60

[snake]
size = 4
x = 5
y = 0
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, core.Bounds{Width: 80, Height: 60}, cfg.Bounds())
	assert.Equal(t, core.Point{X: 5, Y: 0}, cfg.Head())
	assert.Equal(t, DefaultSpeed, cfg.Snake.Speed, "speed is optional")
	assert.Equal(t, DefaultSpeedStep, cfg.Speed.Step)
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "snake.yaml", `
window:
  width: 40
  height: 20
snake:
  size: 3
  speed: 8
  direction: Down
speed:
  step: 2
  max: 20
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Window.Width)
	assert.Equal(t, 3, cfg.Snake.Size)
	assert.Equal(t, 8, cfg.Snake.Speed)
	assert.Equal(t, core.DirDown, cfg.Direction())
	assert.Equal(t, SpeedConfig{Step: 2, Max: 20}, cfg.Speed)
}

func TestMissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
	}{
		{"empty file", "", "window"},
		{"no width", "[window]\nheight = 10\n[snake]\nsize = 3\n", "window.width"},
		{"no height", "[window]\nwidth = 10\n[snake]\nsize = 3\n", "window.height"},
		{"no snake section", "[window]\nwidth = 10\nheight = 10\n", "snake"},
		{"no size", "[window]\nwidth = 10\nheight = 10\n[snake]\nspeed = 3\n", "snake.size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.content), FormatTOML, "test.toml")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingKey)

			var cfgErr *Error
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.key, cfgErr.Key)
			assert.Equal(t, "test.toml", cfgErr.Path)
		})
	}
}

func TestMissingKeysYAML(t *testing.T) {
	_, err := Parse([]byte("window:\n  width: 10\n"), FormatYAML, "test.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingKey)
	assert.Contains(t, err.Error(), "window.height")
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
	}{
		{"zero width", "[window]\nwidth = 0\nheight = 10\n[snake]\nsize = 3\n", "window.width"},
		{"negative height", "[window]\nwidth = 10\nheight = -1\n[snake]\nsize = 3\n", "window.height"},
		{"zero size", "[window]\nwidth = 10\nheight = 10\n[snake]\nsize = 0\n", "snake.size"},
		{"zero speed", "[window]\nwidth = 10\nheight = 10\n[snake]\nsize = 3\nspeed = 0\n", "snake.speed"},
		{"negative step", "[window]\nwidth = 10\nheight = 10\n[snake]\nsize = 3\n[speed]\nstep = -1\n", "speed.step"},
		{"max below start", "[window]\nwidth = 10\nheight = 10\n[snake]\nsize = 3\nspeed = 6\n[speed]\nmax = 4\n", "speed.max"},
		{"bad direction", "[window]\nwidth = 10\nheight = 10\n[snake]\nsize = 3\ndirection = \"north\"\n", "snake.direction"},
		{"head off grid", "[window]\nwidth = 10\nheight = 10\n[snake]\nsize = 3\nx = 10\n", "snake.x"},
		{"body off grid", "[window]\nwidth = 10\nheight = 10\n[snake]\nsize = 4\nx = 2\ny = 0\n", "snake.size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.content), FormatTOML, "test.toml")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)

			var cfgErr *Error
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.key, cfgErr.Key)
		})
	}
}

func TestUnknownKeysRejected(t *testing.T) {
	_, err := Parse([]byte("[window]\nwidth = 10\nheight = 10\nwdith = 3\n[snake]\nsize = 3\n"), FormatTOML, "a.toml")
	assert.Error(t, err, "toml typo should fail")

	_, err = Parse([]byte("window:\n  width: 10\n  height: 10\nsnake:\n  size: 3\n  sise: 4\n"), FormatYAML, "a.yaml")
	assert.Error(t, err, "yaml typo should fail")
}

func TestMalformedFile(t *testing.T) {
	_, err := Parse([]byte("[window\nwidth = "), FormatTOML, "bad.toml")
	require.Error(t, err)

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "bad.toml", cfgErr.Path)
	assert.Empty(t, cfgErr.Key)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b/config.TOML")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	f, err = FormatFromPath("config.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFromPath("config.json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadCustomPath(t *testing.T) {
	path := writeFile(t, "custom.toml", "[window]\nwidth = 12\nheight = 12\n[snake]\nsize = 2\n")

	cfg, source, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 12, cfg.Window.Width)
}

func TestLoadCustomPathMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)

	var cfgErr *Error
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, source, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, EmbeddedSource, source)
	assert.Equal(t, 30, cfg.Window.Width)

	// Local file is picked up
	require.NoError(t, os.WriteFile(filepath.Join(work, "config.yaml"),
		[]byte("window: {width: 20, height: 20}\nsnake: {size: 2}\n"), 0o600))
	cfg, source, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", source)
	assert.Equal(t, 20, cfg.Window.Width)

	// User file beats the local one
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".snake"), 0o755))
	userPath := filepath.Join(home, ".snake", "config.toml")
	require.NoError(t, os.WriteFile(userPath, []byte("[window]\nwidth = 25\nheight = 25\n[snake]\nsize = 2\n"), 0o600))
	cfg, source, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, userPath, source)
	assert.Equal(t, 25, cfg.Window.Width)

	// A broken discovered file is fatal, not skipped
	require.NoError(t, os.WriteFile(userPath, []byte("[window]\n"), 0o600))
	_, _, err = Load("")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(cfg, format)
			require.NoError(t, err)

			back, err := Parse(data, format, "encoded")
			require.NoError(t, err)
			assert.Equal(t, cfg, back)
		})
	}
}
