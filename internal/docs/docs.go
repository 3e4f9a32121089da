package docs

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"fhevm-examples/internal/domain"
	"fhevm-examples/internal/templates"
)

// Generator renders the GitBook-style documentation tree for the examples
// repository: a landing page, a SUMMARY.md index and one page per contract.
type Generator struct {
	root       string
	out        string
	examples   domain.ExampleRegistry
	categories domain.CategoryRegistry
	log        *zap.Logger
}

// NewGenerator returns a docs generator reading sources under root and
// writing the tree below out. A nil logger is replaced with a no-op one.
func NewGenerator(root, out string, examples domain.ExampleRegistry, categories domain.CategoryRegistry, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{root: root, out: out, examples: examples, categories: categories, log: log}
}

// Build renders the whole tree. Existing files are overwritten so the docs
// can be regenerated after every registry or source change. Pages whose
// contract source is missing are skipped with a warning.
func (g *Generator) Build() error {
	byContract := make(map[string]string)
	for _, e := range g.examples.List() {
		byContract[e.Contract] = e.Description
	}

	var sections []templates.SummarySection
	for _, cat := range g.categories.List() {
		section := templates.SummarySection{Name: cat.Name}
		for _, item := range cat.Items {
			stem := strings.TrimSuffix(filepath.Base(item.Contract), ".sol")
			desc := byContract[item.Contract]
			if desc == "" {
				desc = cat.Description
			}
			page, err := g.page(item, stem, desc)
			if err != nil {
				g.log.Warn("skipping page, contract source missing",
					zap.String("contract", item.Contract),
					zap.Error(err))
				continue
			}
			rel := filepath.Join(cat.ID, stem+".md")
			if err := g.write(rel, page); err != nil {
				return err
			}
			section.Pages = append(section.Pages, templates.SummaryPage{
				Title: stem,
				Path:  filepath.ToSlash(rel),
			})
		}
		if len(section.Pages) > 0 {
			sections = append(sections, section)
		}
	}

	summary, err := templates.DocsSummary(templates.SummaryData{Sections: sections})
	if err != nil {
		return err
	}
	if err := g.write("SUMMARY.md", summary); err != nil {
		return err
	}

	index, err := templates.DocsIndex(templates.IndexData{
		ExampleCount:  len(g.examples.List()),
		CategoryCount: len(g.categories.List()),
	})
	if err != nil {
		return err
	}
	if err := g.write("README.md", index); err != nil {
		return err
	}

	g.log.Info("docs generated", zap.String("dir", g.out), zap.Int("sections", len(sections)))
	return nil
}

// page renders one contract page from its on-disk sources. A missing
// contract is an error; a missing test just drops the test section.
func (g *Generator) page(item domain.ContractItem, title, description string) ([]byte, error) {
	contract, err := os.ReadFile(filepath.Join(g.root, item.Contract))
	if err != nil {
		return nil, err
	}
	data := templates.PageData{
		Title:        title,
		Description:  description,
		ContractPath: filepath.ToSlash(item.Contract),
		ContractSrc:  ensureNewline(string(contract)),
	}
	if item.Test != "" {
		test, err := os.ReadFile(filepath.Join(g.root, item.Test))
		if err != nil {
			g.log.Warn("test source missing, page rendered without it", zap.String("file", item.Test))
		} else {
			data.TestPath = filepath.ToSlash(item.Test)
			data.TestSrc = ensureNewline(string(test))
		}
	}
	return templates.DocsPage(data)
}

func (g *Generator) write(rel string, b []byte) error {
	path := filepath.Join(g.out, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
