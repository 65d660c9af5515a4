package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/collate/internal/config"
	"github.com/vango-dev/collate/internal/demo"
	"github.com/vango-dev/collate/internal/errors"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a default config file",
		Long: `Write a config file with the default settings and the full demo stack.

The format follows the extension: .json, .yaml or .yml.

Examples:
  collate init
  collate init collate.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileNames[0]
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.CodeInvalidArg).
					WithDetail(filepath.Base(path) + " already exists.").
					WithSuggestion("Use --force to overwrite it")
			}

			cfg := config.New()
			cfg.Layers = demo.LayerNames()
			cfg.Props = map[string]string{"theme": "light", "locale": "en"}
			if err := cfg.SaveTo(path); err != nil {
				return err
			}

			success(cmd, "Wrote %s", path)
			info(cmd, "Run 'collate serve' to start the demo server")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
