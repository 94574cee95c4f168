package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestEnvOr(t *testing.T) {
	t.Setenv(envLogLevel, "debug")
	if got := envOr(envLogLevel, "warn"); got != "debug" {
		t.Errorf("envOr() = %q, expected debug", got)
	}

	t.Setenv(envLogLevel, "")
	if got := envOr(envLogLevel, "warn"); got != "warn" {
		t.Errorf("envOr() with empty value = %q, expected fallback", got)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected log.Level
		wantErr  bool
	}{
		{"debug", log.DebugLevel, false},
		{"info", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			logger, closer, err := newLogger(tc.level, "")
			if tc.wantErr {
				if err == nil {
					t.Fatal("Expected an error for an unknown level")
				}
				return
			}
			if err != nil {
				t.Fatalf("newLogger() failed: %v", err)
			}
			defer closer()
			if logger.GetLevel() != tc.expected {
				t.Errorf("Level = %v, expected %v", logger.GetLevel(), tc.expected)
			}
		})
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")

	logger, closer, err := newLogger("info", path)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	sessionLogger(logger).Info("food eaten", "length", 5)
	if err := closer(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	out := string(data)
	for _, want := range []string{"snake", "food eaten", "length=5", "session="} {
		if !strings.Contains(out, want) {
			t.Errorf("Log output %q should contain %q", out, want)
		}
	}
}

func TestWriteExitMessage(t *testing.T) {
	state := core.GameState{Length: 7, Eaten: 3, GameOver: true}
	crash := fmt.Errorf("session ended: %w", snake.ErrGameOver)

	var buf bytes.Buffer
	if err := writeExitMessage(&buf, state, crash); err != nil {
		t.Fatalf("writeExitMessage() failed: %v", err)
	}
	if got := buf.String(); got != "Game over!\nLength: 7  Eaten: 3\n" {
		t.Errorf("Exit message = %q", got)
	}
}

func TestWriteExitMessageQuit(t *testing.T) {
	var buf bytes.Buffer
	if err := writeExitMessage(&buf, core.GameState{Length: 4}, nil); err != nil {
		t.Fatalf("writeExitMessage() failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Quitting should print nothing, got %q", buf.String())
	}
}

func TestWriteExitMessageFailure(t *testing.T) {
	boom := errors.New("tui: run program: no tty")

	var buf bytes.Buffer
	if err := writeExitMessage(&buf, core.GameState{}, boom); !errors.Is(err, boom) {
		t.Errorf("writeExitMessage() = %v, expected %v", err, boom)
	}
	if strings.Contains(buf.String(), "Game over!") {
		t.Error("A program failure is not a game over")
	}
}

func TestPlayConfigErrorClosesLog(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[window]\nwidth = 10\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	logPath := filepath.Join(dir, "snake.log")

	oldConfig, oldFile, oldLevel := flagConfig, flagLogFile, flagLogLevel
	t.Cleanup(func() { flagConfig, flagLogFile, flagLogLevel = oldConfig, oldFile, oldLevel })
	flagConfig, flagLogFile, flagLogLevel = cfgPath, logPath, "warn"

	var out bytes.Buffer
	err := play(&out)
	if !errors.Is(err, config.ErrMissingKey) {
		t.Fatalf("play() = %v, expected a missing key error", err)
	}
	if out.Len() != 0 {
		t.Errorf("Nothing should reach stdout, got %q", out.String())
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "configuration failed") {
		t.Errorf("Log file should record the failure, got %q", data)
	}
}

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) {
	return 0, os.ErrClosed
}

func TestWriteConfig(t *testing.T) {
	var buf bytes.Buffer
	if err := writeConfig(&buf, config.DefaultTOML()); err != nil {
		t.Fatalf("writeConfig() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "[window]") {
		t.Errorf("Output = %q, expected the default config", buf.String())
	}

	if err := writeConfig(brokenPipe{}, []byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("writeConfig() on a closed writer = %v, expected os.ErrClosed", err)
	}
}
