package main

import (
	"flag"
	"fmt"
	"os"

	"fhevm-examples/internal/config"
	"fhevm-examples/internal/docs"
	"fhevm-examples/internal/logging"
	"fhevm-examples/internal/registry"
)

func main() {
	root := flag.String("root", "", "examples repository root (default: discovered from the working directory)")
	out := flag.String("out", "docs", "output directory for the generated tree")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	log := logging.New(*verbose)
	defer func() { _ = log.Sync() }()

	dir := *root
	if dir == "" {
		found, err := config.FindRoot(".")
		if err != nil {
			fmt.Fprintln(os.Stderr, "generate-docs:", err)
			os.Exit(1)
		}
		dir = found
	}

	g := docs.NewGenerator(dir, *out, registry.NewExamples(), registry.NewCategories(), log)
	if err := g.Build(); err != nil {
		fmt.Fprintln(os.Stderr, "generate-docs:", err)
		os.Exit(1)
	}
	fmt.Println("Documentation written to", *out)
}
