package main

import (
	"os"

	"github.com/csv2bean-dev/csv2bean/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
