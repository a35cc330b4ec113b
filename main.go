package main

import (
	"os"

	"github.com/padlock-dev/padlock/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
