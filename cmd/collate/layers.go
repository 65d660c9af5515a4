package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/collate/internal/demo"
)

func layersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layers",
		Short: "List the demo layers",
		Long:  `List the layers the demo stack can compose, in default order (outermost first).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, l := range demo.Layers() {
				fmt.Fprintf(tw, "%s\t%s\n", l.Name, l.Description)
			}
			return tw.Flush()
		},
	}
}
