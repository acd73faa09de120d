package main

import (
	"os"

	"github.com/mwynn/careerdeck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
