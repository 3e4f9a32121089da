// Package version carries the project name and release version shared by the
// generator binaries and the manifest they write.
package version

// Name is the canonical project name.
const Name = "fhevm-examples"

// Version is the current version of the scaffolding tools.
const Version = "0.3.0"

// Generator returns the value stamped into generated manifests, e.g.
// "fhevm-examples v0.3.0".
func Generator() string { return Name + " v" + Version }
