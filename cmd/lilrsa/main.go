package main

import (
	"os"

	"lilrsa/cmd/lilrsa/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
