package options

import (
	"github.com/spf13/cobra"
)

// DisplayOptions
type DisplayOptions struct {
	ShowID    bool
	ShowNotes bool
	Table     bool
}

func AddDisplayArgs(cmd *cobra.Command, do *DisplayOptions) {
	cmd.Flags().BoolVar(&do.ShowID, "id", false,
		"Show habit ids.")
	cmd.Flags().BoolVar(&do.ShowNotes, "notes", false,
		"Show habit notes.")
	cmd.Flags().BoolVar(&do.Table, "table", false,
		"Render as a table with streak and weekly columns.")
}
