package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions
type FilterOptions struct {
	Category string
	Query    string
}

func AddFilterArgs(cmd *cobra.Command, fo *FilterOptions) {
	cmd.Flags().StringVar(&fo.Category, "category", "",
		"Only show assets in this category.")
	cmd.Flags().StringVarP(&fo.Query, "query", "q", "",
		"Only show assets whose name or tags match.")
}
