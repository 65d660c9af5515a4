package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/collate/internal/config"
	"github.com/vango-dev/collate/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	noColor    bool
}

func main() {
	flags := &globalFlags{}
	if err := newRootCmd(flags).Execute(); err != nil {
		errors.Print(os.Stderr, err, !flags.noColor)
		os.Exit(1)
	}
}

func newRootCmd(flags *globalFlags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "collate",
		Short: "Compose wrapper layers into a single component",
		Long: `collate folds a list of wrapper layers (context providers, themes,
routers) into one component, so a deep provider pyramid becomes a flat list.

This CLI renders and serves the bundled demo stack:

  collate render --prop theme=dark
  collate serve --port 8080
  collate layers`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (default: collate.json or collate.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		renderCmd(flags),
		serveCmd(flags),
		layersCmd(),
		initCmd(),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig loads the config named by --config, or the one in the working
// directory, then applies COLLATE_* overrides and validates the result.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.LoadFile(flags.configPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// success prints a success message.
func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", fmt.Sprintf(format, args...))
}
