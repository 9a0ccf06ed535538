package main

import (
	"os"

	"github.com/mgk2100/ppt-generator/cmd/pptgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
