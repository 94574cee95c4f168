package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	flagFormat  string
	flagDefault bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after discovery and
defaults have been applied. Use it to check a config file or as a template.

Examples:
  snake config
  snake config --format yaml > ~/.snake/config.yaml
  snake config --config ./mine.toml
  snake config --default`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", string(config.FormatTOML), "Output format: toml or yaml")
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefault && config.Format(flagFormat) == config.FormatTOML {
		writeOrExit(config.DefaultTOML())
		return
	}

	var (
		cfg    config.Config
		source string
		err    error
	)
	if flagDefault {
		cfg, err = config.Default()
		source = config.EmbeddedSource
	} else {
		cfg, source, err = config.Load(flagConfig)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := config.Encode(cfg, config.Format(flagFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "# source: %s\n", source)
	writeOrExit(out)
}

// writeOrExit prints data to stdout and exits 1 if it cannot be written.
func writeOrExit(data []byte) {
	if err := writeConfig(os.Stdout, data); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func writeConfig(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	return nil
}
