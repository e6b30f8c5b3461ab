package main

import (
	"os"

	"github.com/katalvlaran/ararpy/cmd/ararcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
