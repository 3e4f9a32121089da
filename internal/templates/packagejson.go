package templates

// PackageJSON is the manifest written into every generated project. Maps
// marshal with sorted keys, which keeps the output deterministic.
type PackageJSON struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Version         string            `json:"version"`
	License         string            `json:"license"`
	Author          string            `json:"author,omitempty"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Engines         map[string]string `json:"engines"`
}

// NewPackageJSON builds the manifest for a generated project. The id becomes
// the package name under an fhevm- prefix.
func NewPackageJSON(id, description, version, license, author string) PackageJSON {
	return PackageJSON{
		Name:        "fhevm-" + id,
		Description: description,
		Version:     version,
		License:     license,
		Author:      author,
		Scripts: map[string]string{
			"clean":     "hardhat clean",
			"compile":   "hardhat compile",
			"deploy":    "hardhat deploy",
			"test":      "hardhat test",
			"typechain": "hardhat typechain",
		},
		Dependencies: map[string]string{
			"@fhevm/solidity": "^0.7.0",
		},
		DevDependencies: map[string]string{
			"@fhevm/hardhat-plugin":                  "^0.0.1-6",
			"@nomicfoundation/hardhat-chai-matchers": "^2.0.8",
			"@nomicfoundation/hardhat-ethers":        "^3.0.8",
			"@typechain/ethers-v6":                   "^0.5.1",
			"@typechain/hardhat":                     "^9.1.0",
			"@types/chai":                            "^4.3.20",
			"@types/mocha":                           "^10.0.10",
			"@types/node":                            "^20.17.30",
			"chai":                                   "^4.5.0",
			"ethers":                                 "^6.13.5",
			"hardhat":                                "^2.24.3",
			"hardhat-deploy":                         "^0.12.4",
			"mocha":                                  "^11.1.0",
			"ts-node":                                "^10.9.2",
			"typechain":                              "^8.3.2",
			"typescript":                             "^5.8.3",
		},
		Engines: map[string]string{
			"node": ">=20",
		},
	}
}
