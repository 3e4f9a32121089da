package registry

import (
	"sort"

	"fhevm-examples/internal/domain"
)

// Examples serves the compiled-in example table.
type Examples struct{}

// NewExamples returns the example registry.
func NewExamples() *Examples {
	return &Examples{}
}

// Lookup reports the example registered under id.
func (*Examples) Lookup(id string) (domain.ExampleConfig, bool) {
	cfg, ok := examples[id]
	return cfg, ok
}

// List returns every example sorted by id.
func (*Examples) List() []domain.ExampleEntry {
	out := make([]domain.ExampleEntry, 0, len(examples))
	for id, cfg := range examples {
		out = append(out, domain.ExampleEntry{ID: id, ExampleConfig: cfg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Categories serves the compiled-in category table.
type Categories struct{}

// NewCategories returns the category registry.
func NewCategories() *Categories {
	return &Categories{}
}

// Lookup reports the category registered under id.
func (*Categories) Lookup(id string) (domain.CategoryConfig, bool) {
	cfg, ok := categories[id]
	return cfg, ok
}

// List returns every category sorted by id.
func (*Categories) List() []domain.CategoryEntry {
	out := make([]domain.CategoryEntry, 0, len(categories))
	for id, cfg := range categories {
		out = append(out, domain.CategoryEntry{ID: id, CategoryConfig: cfg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var (
	_ domain.ExampleRegistry  = (*Examples)(nil)
	_ domain.CategoryRegistry = (*Categories)(nil)
)
