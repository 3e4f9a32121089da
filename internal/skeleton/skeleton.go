package skeleton

import (
	"embed"
	"io/fs"
	"sort"
)

// Static project files copied into every generated workspace. The all:
// prefix keeps dotfiles like .gitignore in the embed.
//
//go:embed all:files
var content embed.FS

// File is one skeleton entry destined for the root of a generated project.
type File struct {
	// Name is the path inside the generated project.
	Name string
	// Data is the file body.
	Data []byte
}

// Each returns the embedded skeleton files in stable name order.
func Each() ([]File, error) {
	var out []File
	err := fs.WalkDir(content, "files", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := content.ReadFile(path)
		if err != nil {
			return err
		}
		out = append(out, File{Name: path[len("files/"):], Data: b})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
