package docs_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"fhevm-examples/internal/docs"
	"fhevm-examples/internal/domain"
)

type fakeExamples []domain.ExampleEntry

func (f fakeExamples) Lookup(id string) (domain.ExampleConfig, bool) {
	for _, e := range f {
		if e.ID == id {
			return e.ExampleConfig, true
		}
	}
	return domain.ExampleConfig{}, false
}

func (f fakeExamples) List() []domain.ExampleEntry { return f }

type fakeCategories []domain.CategoryEntry

func (f fakeCategories) Lookup(id string) (domain.CategoryConfig, bool) {
	for _, c := range f {
		if c.ID == id {
			return c.CategoryConfig, true
		}
	}
	return domain.CategoryConfig{}, false
}

func (f fakeCategories) List() []domain.CategoryEntry {
	out := make([]domain.CategoryEntry, len(f))
	copy(out, f)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func writeDocsRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	write := func(rel, body string) {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	write("contracts/basic/FHECounter.sol", "contract FHECounter {}\n")
	write("test/basic/FHECounter.ts", "describe(\"FHECounter\", function () {});\n")
	write("contracts/basic/NoTest.sol", "contract NoTest {}\n")
	return root
}

func docsRegistries() (fakeExamples, fakeCategories) {
	examples := fakeExamples{
		{ID: "fhe-counter", ExampleConfig: domain.ExampleConfig{
			Contract:    "contracts/basic/FHECounter.sol",
			Test:        "test/basic/FHECounter.ts",
			Description: "An encrypted counter.",
		}},
	}
	categories := fakeCategories{
		{ID: "basic", CategoryConfig: domain.CategoryConfig{
			Name:        "Getting started",
			Description: "Single-concept contracts.",
			Items: []domain.ContractItem{
				{Contract: "contracts/basic/FHECounter.sol", Test: "test/basic/FHECounter.ts"},
				{Contract: "contracts/basic/NoTest.sol", Test: "test/basic/NoTest.ts"},
				{Contract: "contracts/basic/Gone.sol", Test: "test/basic/Gone.ts"},
			},
		}},
	}
	return examples, categories
}

func TestBuild(t *testing.T) {
	root := writeDocsRepo(t)
	out := filepath.Join(t.TempDir(), "docs")
	examples, categories := docsRegistries()
	core, logs := observer.New(zap.WarnLevel)

	g := docs.NewGenerator(root, out, examples, categories, zap.New(core))
	require.NoError(t, g.Build())

	summary, err := os.ReadFile(filepath.Join(out, "SUMMARY.md"))
	require.NoError(t, err)
	assert.Contains(t, string(summary), "## Getting started")
	assert.Contains(t, string(summary), "- [FHECounter](basic/FHECounter.md)")
	assert.NotContains(t, string(summary), "Gone", "missing contracts get no summary entry")

	page, err := os.ReadFile(filepath.Join(out, "basic", "FHECounter.md"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "An encrypted counter.")
	assert.Contains(t, string(page), "```solidity\ncontract FHECounter {}\n```")
	assert.Contains(t, string(page), "## Test")

	// NoTest.sol is not in the example registry, so its page falls back to
	// the category description and omits the test section.
	page, err = os.ReadFile(filepath.Join(out, "basic", "NoTest.md"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "Single-concept contracts.")
	assert.NotContains(t, string(page), "## Test")

	assert.NoFileExists(t, filepath.Join(out, "basic", "Gone.md"))
	assert.Equal(t, 1, logs.FilterMessage("skipping page, contract source missing").Len())
	assert.Equal(t, 1, logs.FilterMessage("test source missing, page rendered without it").Len())

	index, err := os.ReadFile(filepath.Join(out, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "1 standalone examples")
}

func TestBuildIsRerunnable(t *testing.T) {
	root := writeDocsRepo(t)
	out := filepath.Join(t.TempDir(), "docs")
	examples, categories := docsRegistries()

	g := docs.NewGenerator(root, out, examples, categories, nil)
	require.NoError(t, g.Build())
	require.NoError(t, g.Build(), "regeneration over an existing tree must succeed")
}
