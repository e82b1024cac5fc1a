package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tally/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	empty := false
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Interactive habit tracker.",
		Example: `
tally ui
tally ui --empty
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			u := &ui.UI{Empty: empty}
			err := u.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}
	cmd.Flags().BoolVar(&empty, "empty", false, "Start without the sample habits.")

	topLevel.AddCommand(cmd)
}
