package options

import (
	"github.com/spf13/cobra"
)

// SortOptions
type SortOptions struct {
	Sort string
}

func AddSortArg(cmd *cobra.Command, so *SortOptions) {
	cmd.Flags().StringVar(&so.Sort, "sort", "",
		"Sort mode. One of 'newest', 'streak' or 'weekly'.")
}
