package main

import (
	"os"

	"github.com/dkellis099/Model-Screener/cmd/mfctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
