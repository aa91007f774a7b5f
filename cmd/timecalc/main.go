package main

import (
	"fmt"
	"os"

	"github.com/stigoleg/timecalc/internal/cli"
)

const appVersion = "1.0.0"

func main() {
	app := cli.NewApp(appVersion, cli.WithSignals(stopSignals()...))
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
