// Package commands defines the create-fhevm-category CLI.
//
// Commands
//
//   - (root)  Scaffold a Hardhat project holding every contract of a category
//   - list    Print the categories the registry knows about
//
// # Implementation
//
// Wiring matches create-fhevm-example: the root command resolves the
// repository root and settings, builds a zap logger and assembles the
// scaffolder before the run. list skips the wiring entirely.
package commands
