package main

import (
	"os"

	"github.com/tradelens-dev/tradelens/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
