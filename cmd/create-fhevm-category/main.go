package main

import (
	"os"

	"fhevm-examples/cmd/create-fhevm-category/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
