// Package commands defines the create-fhevm-example CLI.
//
// Commands
//
//   - (root)  Scaffold a standalone Hardhat project for one example
//   - list    Print the examples the registry knows about
//
// # Implementation
//
// The root command resolves the repository root and settings file, builds a
// zap logger and assembles the scaffolder before the run, so the handler
// works against one wired bundle. list skips that wiring; it needs nothing
// but the compiled-in registry.
package commands
