package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func history(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show saved conversions",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := config.History.LoadAll()
			if err != nil {
				return err
			}

			if len(records) == 0 {
				// Expected initial state, not an error.
				fmt.Fprintln(cmd.OutOrStdout(), "No conversion history found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintln(w, "DATE\tFROM\tTO\tRESULT")
			for _, record := range records {
				fmt.Fprintf(w, "%s\t%v %s\t%s\t%.2f\n",
					record.Timestamp.Format("2006-01-02 15:04:05"),
					record.FromAmount, record.FromCurrency,
					record.ToCurrency, record.Result,
				)
			}

			return w.Flush()
		},
	}
}
