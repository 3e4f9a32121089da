// Package main runs the documentation generator for the FHEVM examples
// repository.
//
// The tool walks the compiled-in registries and renders a GitBook-style tree:
//
//	README.md        Landing page with scaffolding instructions
//	SUMMARY.md       Navigation index grouped by category
//	<category>/*.md  One page per contract, embedding contract and test
//
// Behaviour
//
//   - Sources are read from the repository root, discovered by walking up
//     from the working directory unless -root is given.
//   - The output tree (default docs/) is overwritten in place, so the tool
//     can run after every registry or source change.
//   - Contracts whose source file is missing are skipped with a warning;
//     a missing test only drops the page's test section.
package main
