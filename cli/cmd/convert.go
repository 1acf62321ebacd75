package cmd

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	converter "github.com/lyssadev/currency-converter"
)

type convertFlags struct {
	amount  float64
	from    string
	to      string
	save    bool
	offline bool
}

func convert(config *Config) *cobra.Command {
	flags := &convertFlags{}

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an amount from one currency to another",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := converter.Online
			if flags.offline {
				mode = converter.Offline
			}

			conversion, err := config.Converter.Convert(cmd.Context(), flags.amount, flags.from, flags.to, mode)
			if err != nil {
				return err
			}

			printResultPanel(cmd.OutOrStdout(), conversion)

			if flags.save {
				if err := config.Converter.SaveToHistory(conversion); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), "Conversion saved to history.")
			}

			return nil
		},
	}

	convertCmd.Flags().Float64Var(&flags.amount, "amount", 0, "Amount to convert")
	convertCmd.Flags().StringVar(&flags.from, "from", "", "Source currency code")
	convertCmd.Flags().StringVar(&flags.to, "to", "", "Target currency code")
	convertCmd.Flags().BoolVar(&flags.save, "save", false, "Save conversion to history")
	convertCmd.Flags().BoolVar(&flags.offline, "offline", false, "Use cached exchange rates")

	convertCmd.MarkFlagRequired("amount")
	convertCmd.MarkFlagRequired("from")
	convertCmd.MarkFlagRequired("to")

	return convertCmd
}

func printResultPanel(w io.Writer, conversion converter.Conversion) {
	body := fmt.Sprintf("%.2f %s → %.2f %s",
		conversion.FromAmount, conversion.FromCurrency,
		conversion.Result, conversion.ToCurrency,
	)
	border := strings.Repeat("─", utf8.RuneCountInString(body)+2)

	fmt.Fprintln(w, "Currency Conversion Result")
	fmt.Fprintf(w, "┌%s┐\n", border)
	fmt.Fprintf(w, "│ %s │\n", body)
	fmt.Fprintf(w, "└%s┘\n", border)
}
