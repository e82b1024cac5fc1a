package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tally/pkg/commands/options"
	"tableflip.dev/tally/pkg/runner/assets"
)

func addAssets(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "List the demo asset inventory through the filter feature.",
		Example: `
tally assets
tally assets --category "Office Equipment"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := &assets.Assets{Category: fo.Category, Query: fo.Query}
			err := a.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}
	options.AddFilterArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
