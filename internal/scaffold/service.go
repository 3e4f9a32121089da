package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"fhevm-examples/internal/config"
	"fhevm-examples/internal/domain"
	"fhevm-examples/internal/solidity"
	"fhevm-examples/internal/templates"
	"fhevm-examples/internal/util/fsx"
	"fhevm-examples/internal/version"
)

// ManifestName is the integrity manifest written into every generated
// project, listing each file with its size and Keccak-256 digest.
const ManifestName = "fhevm.manifest.json"

// Service scaffolds standalone example and category projects from the
// examples repository.
type Service struct {
	root       string
	cfg        config.Config
	examples   domain.ExampleRegistry
	categories domain.CategoryRegistry
	log        *zap.Logger
}

// New returns a scaffolder reading sources under root. A nil logger is
// replaced with a no-op one.
func New(root string, cfg config.Config, examples domain.ExampleRegistry, categories domain.CategoryRegistry, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{root: root, cfg: cfg, examples: examples, categories: categories, log: log}
}

var _ domain.Scaffolder = (*Service)(nil)

// CreateExample generates a standalone Hardhat project for one example. The
// contract file is renamed after the contract it declares and the test moves
// into a flat test/ directory. An empty outputDir defaults to the example id.
func (s *Service) CreateExample(id, outputDir string) (*domain.Report, error) {
	ex, ok := s.examples.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q (run `create-fhevm-example list`)", domain.ErrUnknownExample, id)
	}
	if outputDir == "" {
		outputDir = id
	}
	if fsx.Exists(outputDir) {
		return nil, fmt.Errorf("%w: %s", domain.ErrOutputExists, outputDir)
	}

	contractSrc, err := s.readSource(ex.Contract)
	if err != nil {
		return nil, err
	}
	testSrc, err := s.readSource(ex.Test)
	if err != nil {
		return nil, err
	}

	name, err := solidity.ContractName(contractSrc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ex.Contract, err)
	}

	out := newOutput(outputDir)
	if err := out.writeFile(filepath.Join("contracts", name+".sol"), contractSrc); err != nil {
		return nil, err
	}
	testFile := filepath.Join("test", filepath.Base(ex.Test))
	if err := out.writeFile(testFile, rebaseTestImports(testSrc)); err != nil {
		return nil, err
	}
	if err := out.writeSkeleton(); err != nil {
		return nil, err
	}

	data := templates.ExampleData{
		ID:           id,
		Description:  ex.Description,
		ContractName: name,
		TestFile:     filepath.ToSlash(testFile),
	}
	readme, err := templates.ExampleReadme(data)
	if err != nil {
		return nil, err
	}
	if err := out.writeFile("README.md", readme); err != nil {
		return nil, err
	}
	deploy, err := templates.ExampleDeploy(data)
	if err != nil {
		return nil, err
	}
	if err := out.writeFile(filepath.Join("deploy", "deploy.ts"), deploy); err != nil {
		return nil, err
	}
	if err := s.writeProjectFiles(out, id, ex.Description); err != nil {
		return nil, err
	}

	man := out.manifest(version.Generator(), "example", id, []string{name})
	if err := out.writeJSON(ManifestName, man); err != nil {
		return nil, err
	}

	s.log.Info("example scaffolded",
		zap.String("example", id),
		zap.String("contract", name),
		zap.String("dir", outputDir))

	return &domain.Report{
		Kind:      "example",
		ID:        id,
		OutputDir: outputDir,
		Contracts: []string{name},
		Files:     out.list(),
	}, nil
}

// CreateCategory generates one Hardhat project holding every contract of a
// category. Sources keep their repository-relative layout so shared fixtures
// keep resolving. Missing files are skipped with a warning; the run fails
// only when no contract of the category exists at all.
func (s *Service) CreateCategory(id, outputDir string) (*domain.Report, error) {
	cat, ok := s.categories.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q (run `create-fhevm-category list`)", domain.ErrUnknownCategory, id)
	}
	if outputDir == "" {
		outputDir = id
	}
	if fsx.Exists(outputDir) {
		return nil, fmt.Errorf("%w: %s", domain.ErrOutputExists, outputDir)
	}

	out := newOutput(outputDir)
	var contracts []templates.CategoryContract
	var names []string
	skipped := 0

	for _, item := range cat.Items {
		src, err := s.readSource(item.Contract)
		if errors.Is(err, domain.ErrMissingSource) {
			s.log.Warn("skipping contract, source missing", zap.String("file", item.Contract))
			skipped++
			continue
		}
		if err != nil {
			return nil, err
		}

		entry := templates.CategoryContract{File: filepath.ToSlash(item.Contract)}
		name, err := solidity.ContractName(src)
		if err != nil {
			s.log.Warn("cannot derive contract name, excluding from deploy script",
				zap.String("file", item.Contract),
				zap.Error(err))
			entry.Name = strings.TrimSuffix(filepath.Base(item.Contract), ".sol")
			skipped++
		} else {
			entry.Name = name
			entry.Deployable = true
			names = append(names, name)
		}
		if err := out.writeFile(item.Contract, src); err != nil {
			return nil, err
		}

		entry.Test, err = s.copySupport(out, item.Test, &skipped)
		if err != nil {
			return nil, err
		}
		if _, err := s.copySupport(out, item.Fixture, &skipped); err != nil {
			return nil, err
		}
		for _, extra := range item.Additional {
			if _, err := s.copySupport(out, extra, &skipped); err != nil {
				return nil, err
			}
		}

		contracts = append(contracts, entry)
	}

	if len(contracts) == 0 {
		return nil, fmt.Errorf("%w: no contract of category %q found under %s", domain.ErrMissingSource, id, s.root)
	}

	if err := out.writeSkeleton(); err != nil {
		return nil, err
	}

	data := templates.CategoryData{ID: id, Name: cat.Name, Description: cat.Description, Contracts: contracts}
	readme, err := templates.CategoryReadme(data)
	if err != nil {
		return nil, err
	}
	if err := out.writeFile("README.md", readme); err != nil {
		return nil, err
	}
	deploy, err := templates.CategoryDeploy(data)
	if err != nil {
		return nil, err
	}
	if err := out.writeFile(filepath.Join("deploy", "deploy.ts"), deploy); err != nil {
		return nil, err
	}
	if err := s.writeProjectFiles(out, id, cat.Description); err != nil {
		return nil, err
	}

	man := out.manifest(version.Generator(), "category", id, names)
	if err := out.writeJSON(ManifestName, man); err != nil {
		return nil, err
	}

	s.log.Info("category scaffolded",
		zap.String("category", id),
		zap.Int("contracts", len(contracts)),
		zap.Int("skipped", skipped),
		zap.String("dir", outputDir))

	return &domain.Report{
		Kind:      "category",
		ID:        id,
		OutputDir: outputDir,
		Contracts: names,
		Files:     out.list(),
		Skipped:   skipped,
	}, nil
}

// writeProjectFiles adds the artifacts common to both project kinds.
func (s *Service) writeProjectFiles(out *output, id, description string) error {
	hh, err := templates.HardhatConfig(s.cfg.Solidity)
	if err != nil {
		return err
	}
	if err := out.writeFile("hardhat.config.ts", hh); err != nil {
		return err
	}
	pkg := templates.NewPackageJSON(id, description, s.cfg.PackageVersion, s.cfg.License, s.cfg.Author)
	return out.writeJSON("package.json", pkg)
}

// readSource reads a repository-relative file, mapping absence to
// domain.ErrMissingSource with the relative path in the message.
func (s *Service) readSource(rel string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(s.root, rel))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingSource, rel)
	}
	return b, err
}

// copySupport copies one optional repository file into the project under its
// original relative path. Absence is logged and counted, not fatal.
func (s *Service) copySupport(out *output, rel string, skipped *int) (string, error) {
	if rel == "" {
		return "", nil
	}
	b, err := s.readSource(rel)
	if errors.Is(err, domain.ErrMissingSource) {
		s.log.Warn("skipping missing file", zap.String("file", rel))
		*skipped++
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if err := out.writeFile(rel, b); err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// rebaseTestImports rewrites relative imports written for the repository's
// nested test tree (test/<category>/Name.ts) so they resolve from the flat
// test/ directory of a standalone project.
func rebaseTestImports(src []byte) []byte {
	src = bytes.ReplaceAll(src, []byte(`"../../types"`), []byte(`"../types"`))
	return bytes.ReplaceAll(src, []byte(`'../../types'`), []byte(`'../types'`))
}
