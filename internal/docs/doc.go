// Package docs generates the repository documentation from the registries,
// pairing each contract with the test that drives it.
package docs
