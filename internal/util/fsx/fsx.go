package fsx

import "os"

// Exists reports whether path exists, whatever its type. Stat errors other
// than absence are treated as existing so callers fail on the real operation
// with a useful error.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
