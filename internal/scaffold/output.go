package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"fhevm-examples/internal/domain"
	"fhevm-examples/internal/keccak"
	"fhevm-examples/internal/skeleton"
)

// output accumulates the files written into one generated project together
// with their sizes and digests for the manifest.
type output struct {
	dir     string
	files   []domain.ManifestFile
	written map[string]bool
}

func newOutput(dir string) *output {
	return &output{dir: dir, written: make(map[string]bool)}
}

// writeFile writes rel below the project root, creating parents as needed.
// Duplicate writes of the same path are ignored so shared fixtures land once.
func (o *output) writeFile(rel string, b []byte) error {
	rel = filepath.Clean(rel)
	if o.written[rel] {
		return nil
	}
	path := filepath.Join(o.dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := writeFileAtomic(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	o.written[rel] = true
	o.files = append(o.files, domain.ManifestFile{
		Path:      filepath.ToSlash(rel),
		Bytes:     int64(len(b)),
		Keccak256: keccak.Sum256Hex(b),
	})
	return nil
}

// writeJSON marshals v with two-space indentation, matching npm conventions.
func (o *output) writeJSON(rel string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return o.writeFile(rel, append(b, '\n'))
}

func (o *output) writeSkeleton() error {
	files, err := skeleton.Each()
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := o.writeFile(f.Name, f.Data); err != nil {
			return err
		}
	}
	return nil
}

// manifest snapshots the files written so far, sorted by path. It is built
// before the manifest file itself is written and therefore never lists it.
func (o *output) manifest(generator, kind, id string, contracts []string) domain.Manifest {
	if contracts == nil {
		contracts = []string{}
	}
	files := make([]domain.ManifestFile, len(o.files))
	copy(files, o.files)
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return domain.Manifest{
		Generator: generator,
		Kind:      kind,
		ID:        id,
		Contracts: contracts,
		Files:     files,
	}
}

// list returns the project-relative paths written so far, sorted.
func (o *output) list() []string {
	out := make([]string, 0, len(o.files))
	for _, f := range o.files {
		out = append(out, f.Path)
	}
	sort.Strings(out)
	return out
}

// writeFileAtomic writes through a temp file in the target directory followed
// by a rename, so an interrupted run never leaves a half-written file.
func writeFileAtomic(path string, b []byte, mode os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
