package main

import (
	"os"

	"github.com/mcpv/episcreen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
