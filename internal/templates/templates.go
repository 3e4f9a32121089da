package templates

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed files/*.tmpl
var content embed.FS

var pages = template.Must(template.ParseFS(content, "files/*.tmpl"))

// ExampleData feeds the single-example README and deploy templates.
type ExampleData struct {
	// ID is the registry id, e.g. "fhe-counter".
	ID string
	// Description comes from the example registry.
	Description string
	// ContractName is the deployable contract declared in the source file.
	ContractName string
	// TestFile is the project-relative test path, e.g. "test/FHECounter.ts".
	TestFile string
}

// CategoryContract describes one contract inside a category project.
type CategoryContract struct {
	// Name is the declared contract name, or the file stem when the source
	// could not be parsed.
	Name string
	// File is the project-relative contract path.
	File string
	// Test is the project-relative test path, empty when the test is missing.
	Test string
	// Deployable marks contracts whose name was derived from the source and
	// which therefore appear in the deploy script.
	Deployable bool
}

// CategoryData feeds the category README and deploy templates.
type CategoryData struct {
	ID          string
	Name        string
	Description string
	Contracts   []CategoryContract
}

// Deployable returns the contracts the deploy script targets.
func (d CategoryData) Deployable() []CategoryContract {
	var out []CategoryContract
	for _, c := range d.Contracts {
		if c.Deployable {
			out = append(out, c)
		}
	}
	return out
}

// HardhatData feeds the Hardhat config template.
type HardhatData struct {
	SolidityVersion string
}

// PageData feeds one generated documentation page.
type PageData struct {
	Title        string
	Description  string
	ContractPath string
	TestPath     string
	ContractSrc  string
	TestSrc      string
}

// SummaryPage is one link in the documentation summary.
type SummaryPage struct {
	Title string
	Path  string
}

// SummarySection groups summary links under a category heading.
type SummarySection struct {
	Name  string
	Pages []SummaryPage
}

// SummaryData feeds the documentation SUMMARY.md template.
type SummaryData struct {
	Sections []SummarySection
}

// IndexData feeds the documentation landing page template.
type IndexData struct {
	ExampleCount  int
	CategoryCount int
}

// ExampleReadme renders the README for a standalone example project.
func ExampleReadme(d ExampleData) ([]byte, error) {
	return render("readme-example.md.tmpl", d)
}

// CategoryReadme renders the README for a category project.
func CategoryReadme(d CategoryData) ([]byte, error) {
	return render("readme-category.md.tmpl", d)
}

// ExampleDeploy renders the hardhat-deploy script for one contract.
func ExampleDeploy(d ExampleData) ([]byte, error) {
	return render("deploy-example.ts.tmpl", d)
}

// CategoryDeploy renders the hardhat-deploy script for a category project.
func CategoryDeploy(d CategoryData) ([]byte, error) {
	return render("deploy-category.ts.tmpl", d)
}

// HardhatConfig renders hardhat.config.ts pinned to the given compiler.
func HardhatConfig(solidityVersion string) ([]byte, error) {
	return render("hardhat.config.ts.tmpl", HardhatData{SolidityVersion: solidityVersion})
}

// DocsPage renders one documentation page.
func DocsPage(d PageData) ([]byte, error) {
	return render("docs-page.md.tmpl", d)
}

// DocsSummary renders the documentation SUMMARY.md.
func DocsSummary(d SummaryData) ([]byte, error) {
	return render("docs-summary.md.tmpl", d)
}

// DocsIndex renders the documentation landing page.
func DocsIndex(d IndexData) ([]byte, error) {
	return render("docs-readme.md.tmpl", d)
}

func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
