package registry_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fhevm-examples/internal/config"
	"fhevm-examples/internal/registry"
	"fhevm-examples/internal/solidity"
)

// repoRoot locates the checked-out repository so table entries can be
// verified against the files they point at.
func repoRoot(t *testing.T) string {
	t.Helper()
	root, err := config.FindRoot(".")
	require.NoError(t, err)
	return root
}

func TestExampleFilesExist(t *testing.T) {
	root := repoRoot(t)
	for _, e := range registry.NewExamples().List() {
		assert.FileExists(t, filepath.Join(root, e.Contract), e.ID)
		assert.FileExists(t, filepath.Join(root, e.Test), e.ID)
		assert.True(t, strings.HasSuffix(e.Contract, ".sol"), e.ID)
		assert.NotEmpty(t, e.Description, e.ID)
	}
}

func TestCategoryFilesExist(t *testing.T) {
	root := repoRoot(t)
	for _, c := range registry.NewCategories().List() {
		require.NotEmpty(t, c.Items, c.ID)
		for _, item := range c.Items {
			assert.FileExists(t, filepath.Join(root, item.Contract), c.ID)
			if item.Test != "" {
				assert.FileExists(t, filepath.Join(root, item.Test), c.ID)
			}
			if item.Fixture != "" {
				assert.FileExists(t, filepath.Join(root, item.Fixture), c.ID)
			}
			for _, extra := range item.Additional {
				assert.FileExists(t, filepath.Join(root, extra), c.ID)
			}
		}
	}
}

// Every registered contract must expose exactly one deployable contract, or
// the generated deploy scripts would target the wrong name.
func TestRegisteredContractsHaveOneDeployableName(t *testing.T) {
	root := repoRoot(t)
	seen := map[string]bool{}
	for _, e := range registry.NewExamples().List() {
		seen[e.Contract] = true
	}
	for _, c := range registry.NewCategories().List() {
		for _, item := range c.Items {
			seen[item.Contract] = true
		}
	}
	for path := range seen {
		src, err := os.ReadFile(filepath.Join(root, path))
		require.NoError(t, err, path)
		name, err := solidity.ContractName(src)
		require.NoError(t, err, path)
		assert.Equal(t, strings.TrimSuffix(filepath.Base(path), ".sol"), name, path)
	}
}

// relImport matches relative module specifiers in import statements.
var relImport = regexp.MustCompile(`from\s+["'](\.[^"']*)["']`)

// Standalone projects flatten the test into a bare test/ directory and copy
// nothing else from the test tree, so the only relative import an example
// test may carry is the typechain path the scaffolder rebases.
func TestExampleTestsAreSelfContained(t *testing.T) {
	root := repoRoot(t)
	for _, e := range registry.NewExamples().List() {
		src, err := os.ReadFile(filepath.Join(root, e.Test))
		require.NoError(t, err, e.ID)
		for _, m := range relImport.FindAllStringSubmatch(string(src), -1) {
			assert.Equal(t, "../../types", m[1], "%s imports %s", e.Test, m[1])
		}
	}
}

func TestLookupUnknownID(t *testing.T) {
	_, ok := registry.NewExamples().Lookup("does-not-exist")
	assert.False(t, ok)
	_, ok = registry.NewCategories().Lookup("does-not-exist")
	assert.False(t, ok)
}

func TestListSorted(t *testing.T) {
	entries := registry.NewExamples().List()
	require.NotEmpty(t, entries)
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].ID, entries[i].ID)
	}
}
