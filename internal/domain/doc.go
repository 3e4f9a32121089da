// Package domain defines core data models and interfaces shared across the
// scaffolding tools. It contains plain types (registry configs, reports,
// manifests) and contracts (interfaces) only.
package domain
