// Package app wires settings, registries and the scaffolder into the bundle
// the generator binaries run on.
package app
