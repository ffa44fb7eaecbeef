package main

import (
	"os"

	"github.com/apoint123/lyconv/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
