package main

import (
	"os"

	"chrono/internal/cli"
)

func main() {
	if cli.RootCmd.Execute() != nil {
		os.Exit(1)
	}
}
