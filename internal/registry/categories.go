package registry

import "fhevm-examples/internal/domain"

// categories groups contracts into themed Hardhat projects. Items may carry
// shared fixtures and helper modules that standalone examples never need.
var categories = map[string]domain.CategoryConfig{
	"basic": {
		Name:        "Getting started",
		Description: "Single-concept contracts covering encrypted state, inputs, arithmetic and decryption.",
		Items: []domain.ContractItem{
			{Contract: "contracts/basic/FHECounter.sol", Test: "test/basic/FHECounter.ts"},
			{Contract: "contracts/basic/FHEAdd.sol", Test: "test/basic/FHEAdd.ts"},
			{Contract: "contracts/basic/EncryptSingleValue.sol", Test: "test/basic/EncryptSingleValue.ts"},
			{Contract: "contracts/basic/UserDecryptSingleValue.sol", Test: "test/basic/UserDecryptSingleValue.ts"},
		},
	},
	"tokens": {
		Name:        "Confidential tokens",
		Description: "ERC20-style tokens with encrypted balances and transfer amounts.",
		Items: []domain.ContractItem{
			{Contract: "contracts/tokens/ConfidentialERC20.sol", Test: "test/tokens/ConfidentialERC20.ts"},
		},
	},
	"auctions": {
		Name:        "Auctions",
		Description: "Sealed-bid auctions settled without revealing losing bids.",
		Items: []domain.ContractItem{
			{Contract: "contracts/auctions/BlindAuction.sol", Test: "test/auctions/BlindAuction.ts"},
		},
	},
	"governance": {
		Name:        "Governance",
		Description: "Confidential voting with encrypted ballots and tallies.",
		Items: []domain.ContractItem{
			{
				Contract:   "contracts/governance/ConfidentialVoting.sol",
				Test:       "test/governance/ConfidentialVoting.ts",
				Fixture:    "test/fixtures/Signers.ts",
				Additional: []string{"test/governance/utils.ts"},
			},
		},
	},
}
