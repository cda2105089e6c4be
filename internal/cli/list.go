package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/visualizer"
)

func (c *CLI) listCommand() *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available visualizers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if namesOnly {
				for _, name := range visualizer.Names() {
					fmt.Fprintln(c.out, name)
				}

				return nil
			}
			fmt.Fprintln(c.out, catalogTable(visualizer.Catalog()))

			return nil
		},
	}
	cmd.Flags().BoolVar(&namesOnly, "names", false, "print names only, one per line")

	return cmd
}
