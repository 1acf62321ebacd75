// Package cmd defines the cobra command tree. Commands write to their
// command's output streams only, so tests can swap in buffers.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	converter "github.com/lyssadev/currency-converter"
)

type (
	Config struct {
		Ctx       context.Context
		Converter converter.Converter
		History   converter.HistoryStore
	}
)

func Execute(config *Config) error {
	rootCmd := &cobra.Command{
		Use:          "currency-converter",
		Short:        "Currency converter with offline rate caching",
		Version:      "v1.0.0",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(convert(config), list(), history(config))

	ctx := config.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	return rootCmd.ExecuteContext(ctx)
}
