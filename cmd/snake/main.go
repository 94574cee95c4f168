// snake is a terminal snake game.
//
// Usage:
//
//	snake                      - Play with the discovered configuration
//	snake play                 - Same as above
//	snake config               - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (TOML or YAML); overrides discovery
//	--seed <value>      - RNG seed for food placement (0 = time based)
//	--fps <rate>        - Render frame rate (default: 60)
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
//	--log-file <path>   - Write logs to a file instead of stderr
//
// Flag defaults can be set with SNAKE_CONFIG, SNAKE_LOG_LEVEL and
// SNAKE_LOG_FILE, also read from a .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake runs the classic snake game in your terminal.

Steer with the arrow keys, WASD or hjkl. Each food makes the snake one
cell longer and the game faster. Hitting a wall ends the game.

Configuration is read from --config, then ~/.snake/config.{toml,yaml,yml},
then ./config.{toml,yaml,yml}, and finally the built-in defaults.

Examples:
  snake
  snake --seed 42
  snake play --config ./big-board.yaml
  snake config --format yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	loadDotEnv()

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", envOr(envConfig, ""), "Path to a TOML or YAML config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render frame rate")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envOr(envLogLevel, "warn"), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", envOr(envLogFile, ""), "Write logs to this file instead of stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
