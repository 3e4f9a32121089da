// Package keccak computes the EVM-flavoured Keccak-256 digests recorded in
// generated project manifests.
package keccak
