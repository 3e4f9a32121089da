package app

import (
	"go.uber.org/zap"

	"fhevm-examples/internal/config"
	"fhevm-examples/internal/domain"
	"fhevm-examples/internal/registry"
	"fhevm-examples/internal/scaffold"
)

// Wire bundles the registries, settings and scaffolder for the CLIs.
type Wire struct {
	Root       string
	Settings   config.Config
	Examples   domain.ExampleRegistry
	Categories domain.CategoryRegistry
	Scaffolder domain.Scaffolder
}

// NewWire constructs the dependency graph from cfg. The repository root is
// resolved from the flag, then the settings file, then upward discovery.
func NewWire(cfg Config) (*Wire, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	settingsPath := cfg.ConfigFile
	if settingsPath == "" {
		settingsPath = config.Filename
	}
	settings, err := config.Load(settingsPath)
	if err != nil {
		return nil, err
	}

	root := cfg.Root
	if root == "" {
		root = settings.Root
	}
	if root == "" {
		root, err = config.FindRoot(".")
		if err != nil {
			return nil, err
		}
	}

	examples := registry.NewExamples()
	categories := registry.NewCategories()
	scaffolder := scaffold.New(root, settings, examples, categories, log)

	return &Wire{
		Root:       root,
		Settings:   settings,
		Examples:   examples,
		Categories: categories,
		Scaffolder: scaffolder,
	}, nil
}
