// Package scaffold turns registry entries into standalone Hardhat projects.
//
// A generated project is self-contained: contract and test sources copied
// from the repository, a rendered README and deploy script, package.json,
// Hardhat and tooling configuration, and an integrity manifest listing every
// written file with its Keccak-256 digest.
package scaffold
