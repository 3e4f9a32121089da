package registry

import "fhevm-examples/internal/domain"

// examples is the compiled-in table of standalone examples. Paths are
// relative to the repository root; every contract file holds exactly one
// deployable contract and every test file is self-contained.
var examples = map[string]domain.ExampleConfig{
	"fhe-counter": {
		Contract:    "contracts/basic/FHECounter.sol",
		Test:        "test/basic/FHECounter.ts",
		Description: "Increment and decrement an encrypted 32-bit counter.",
	},
	"fhe-add": {
		Contract:    "contracts/basic/FHEAdd.sol",
		Test:        "test/basic/FHEAdd.ts",
		Description: "Add two encrypted integers and read the encrypted sum.",
	},
	"encrypt-single-value": {
		Contract:    "contracts/basic/EncryptSingleValue.sol",
		Test:        "test/basic/EncryptSingleValue.ts",
		Description: "Submit one encrypted value on-chain with an input proof.",
	},
	"user-decrypt-single-value": {
		Contract:    "contracts/basic/UserDecryptSingleValue.sol",
		Test:        "test/basic/UserDecryptSingleValue.ts",
		Description: "Store an encrypted value and decrypt it from the client side.",
	},
	"confidential-erc20": {
		Contract:    "contracts/tokens/ConfidentialERC20.sol",
		Test:        "test/tokens/ConfidentialERC20.ts",
		Description: "ERC20-style token whose balances and transfer amounts stay encrypted.",
	},
	"blind-auction": {
		Contract:    "contracts/auctions/BlindAuction.sol",
		Test:        "test/auctions/BlindAuction.ts",
		Description: "Sealed-bid auction where bids remain encrypted until the winner is resolved.",
	},
}
