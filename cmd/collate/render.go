package main

import (
	"io"
	"maps"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/collate/internal/demo"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		props    map[string]string
		layers   []string
		pretty   bool
		fragment bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo stack to stdout",
		Long: `Render the demo provider stack once and print the HTML.

Props and layers default to the config file. Flags override them.

Examples:
  collate render
  collate render --prop a=1 --prop b=2 --layers c,b,a --fragment
  collate render --pretty > page.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			values := maps.Clone(cfg.Props)
			if values == nil {
				values = make(map[string]string)
			}
			maps.Copy(values, props)
			if len(layers) == 0 {
				layers = cfg.Layers
			}

			logger := cfg.NewLogger(os.Stderr)
			stats, err := demo.RenderHTML(cmd.Context(), cmd.OutOrStdout(), demo.Options{
				Layers:   layers,
				Props:    demo.PropsFromMap(values),
				Fragment: fragment,
				Title:    cfg.Render.Title,
				Lang:     cfg.Render.Lang,
				Pretty:   pretty || cfg.Render.Pretty,
				Logger:   logger,
			})
			if err != nil {
				return err
			}
			if fragment {
				_, _ = io.WriteString(cmd.OutOrStdout(), "\n")
			}
			logger.Debug("rendered",
				"components", stats.Components,
				"elements", stats.Elements,
			)
			return nil
		},
	}

	cmd.Flags().StringToStringVarP(&props, "prop", "p", nil, "Prop override as key=value (a, b, c, theme, locale, user)")
	cmd.Flags().StringSliceVarP(&layers, "layers", "l", nil, "Layers to compose, outermost first (default: all)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the HTML")
	cmd.Flags().BoolVarP(&fragment, "fragment", "f", false, "Omit the HTML document shell")

	return cmd
}
