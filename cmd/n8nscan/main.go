package main

import (
	"os"

	"github.com/jcconnects/n8nscan/cmd/n8nscan/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(2)
	}
}
