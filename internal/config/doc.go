// Package config loads optional scaffolder settings from .fhevm-scaffold.yaml
// and locates the examples repository root.
//
// Precedence for the repository root is: the --root flag, then the root key in
// the settings file, then upward discovery from the working directory.
package config
