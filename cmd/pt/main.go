package main

import (
	"os"

	"github.com/Noel007-cse/plot-twist-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
