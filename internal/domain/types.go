package domain

// ExampleConfig describes one standalone example: a single Solidity contract,
// its test suite, and a short description used in listings and generated
// READMEs. Paths are relative to the repository root.
type ExampleConfig struct {
	Contract    string
	Test        string
	Description string
}

// ContractItem is one contract inside a category. Fixture and Additional are
// optional; Additional files are copied preserving their repo-relative paths.
type ContractItem struct {
	Contract   string
	Test       string
	Fixture    string
	Additional []string
}

// CategoryConfig groups related contracts under one scaffoldable unit.
// Items keep declaration order; that order drives the generated deploy script
// and README table.
type CategoryConfig struct {
	Name        string
	Description string
	Items       []ContractItem
}

// ExampleEntry pairs a registry id with its config for sorted listings.
type ExampleEntry struct {
	ID string
	ExampleConfig
}

// CategoryEntry pairs a registry id with its config for sorted listings.
type CategoryEntry struct {
	ID string
	CategoryConfig
}

// Report summarises what a scaffold run wrote.
type Report struct {
	Kind      string   // "example" or "category"
	ID        string   // registry id the run was invoked with
	OutputDir string
	Contracts []string // deployable contract names in deploy-script order
	Files     []string // paths written, relative to OutputDir
	Skipped   int      // files or items skipped with a warning (categories only)
}

// Manifest is the integrity inventory written as fhevm.manifest.json in the
// root of every generated project.
type Manifest struct {
	Generator string         `json:"generator"`
	Kind      string         `json:"kind"`
	ID        string         `json:"id"`
	Contracts []string       `json:"contracts"`
	Files     []ManifestFile `json:"files"`
}

// ManifestFile records one generated file with its Keccak-256 source digest.
type ManifestFile struct {
	Path      string `json:"path"`
	Bytes     int64  `json:"bytes"`
	Keccak256 string `json:"keccak256"`
}
