package domain

// ExampleRegistry resolves standalone example ids.
type ExampleRegistry interface {
	Lookup(id string) (ExampleConfig, bool)
	List() []ExampleEntry
}

// CategoryRegistry resolves category ids.
type CategoryRegistry interface {
	Lookup(id string) (CategoryConfig, bool)
	List() []CategoryEntry
}

// Scaffolder creates standalone project skeletons from registry entries.
type Scaffolder interface {
	CreateExample(id, outputDir string) (*Report, error)
	CreateCategory(id, outputDir string) (*Report, error)
}
