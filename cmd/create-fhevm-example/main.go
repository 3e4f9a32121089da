package main

import (
	"os"

	"fhevm-examples/cmd/create-fhevm-example/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
