// Package solidity extracts contract names from Solidity source text.
//
// The scaffolder names generated files and deploy scripts after the contract
// a source file declares. Extraction is deliberately not a Solidity parser:
// it strips comments and string literals, then scans for deployable
// `contract <Name>` declarations and insists on exactly one.
package solidity
