package main

import (
	"os"

	"coursereg/cmd/coursereg/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
