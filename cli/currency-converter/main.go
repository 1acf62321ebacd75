package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lyssadev/currency-converter/cli/cmd"
)

func main() {
	config, err := getConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	service, history := createConverter(config)

	err = cmd.Execute(&cmd.Config{
		Ctx:       context.Background(),
		Converter: service,
		History:   history,
	})

	if err != nil {
		os.Exit(1)
	}
}
