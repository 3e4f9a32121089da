package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Filename is the well-known settings file looked up next to the working
// directory when --config is not given.
const Filename = ".fhevm-scaffold.yaml"

// Config holds scaffolder preferences. Every field has a default, so the
// settings file is never required.
type Config struct {
	// Root overrides discovery of the examples repository root.
	Root string `yaml:"root"`
	// License is stamped into generated package.json files.
	License string `yaml:"license"`
	// Author is stamped into generated package.json files when set.
	Author string `yaml:"author"`
	// Solidity is the compiler version pinned in generated Hardhat configs.
	Solidity string `yaml:"solidity"`
	// PackageVersion is the version given to generated packages.
	PackageVersion string `yaml:"packageVersion"`
}

// Default returns the configuration used when no settings file exists.
func Default() Config {
	return Config{
		License:        "BSD-3-Clause-Clear",
		Solidity:       "0.8.24",
		PackageVersion: "0.1.0",
	}
}

// Load reads the settings file at path over the defaults. A missing file is
// not an error; unknown keys are.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// An empty settings file decodes to io.EOF; treat it like no file.
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// FindRoot walks up from start looking for the examples repository root,
// identified by contracts/ and test/ directories side by side.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if hasRepoMarkers(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no examples repository found above %s (expected contracts/ and test/ directories; use --root)", start)
		}
		dir = parent
	}
}

func hasRepoMarkers(dir string) bool {
	for _, sub := range []string{"contracts", "test"} {
		info, err := os.Stat(filepath.Join(dir, sub))
		if err != nil || !info.IsDir() {
			return false
		}
	}
	return true
}
