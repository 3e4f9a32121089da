// Package registry holds the compiled-in tables of examples and categories.
//
// The tables are the single source of truth for what the generator binaries
// can scaffold. Adding an example means adding its contract and test under
// contracts/ and test/, then registering the paths here.
package registry
