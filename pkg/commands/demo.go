package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tally/pkg/runner/demo"
)

func addDemo(topLevel *cobra.Command) {
	steps := 3
	live := false
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Drive the counter feature through a scripted scenario.",
		Example: `
tally demo
tally demo --steps 5 --live
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &demo.Demo{Steps: steps, Live: live}
			err := d.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 3, "Number of increments before fetching a fact.")
	cmd.Flags().BoolVar(&live, "live", false, "Fetch the fact from numbersapi.com instead of locally.")

	topLevel.AddCommand(cmd)
}
