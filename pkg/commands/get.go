package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tally/pkg/commands/options"
	"tableflip.dev/tally/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}
	so := &options.SortOptions{}
	cmd := &cobra.Command{
		Use:   "get",
		Short: "List habits with streaks and today's progress.",
		Example: `
tally get
tally get --table --sort streak
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := &get.Get{
				ShowID:    do.ShowID,
				ShowNotes: do.ShowNotes,
				Table:     do.Table,
				Sort:      so.Sort,
			}
			err := g.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}
	options.AddDisplayArgs(cmd, do)
	options.AddSortArg(cmd, so)

	topLevel.AddCommand(cmd)
}
