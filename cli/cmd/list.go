package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lyssadev/currency-converter/registry"
)

func list() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all supported currencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintln(w, "CODE\tCURRENCY NAME")
			for _, entry := range registry.List() {
				fmt.Fprintf(w, "%s\t%s\n", entry.Code, entry.Name)
			}

			return w.Flush()
		},
	}
}
