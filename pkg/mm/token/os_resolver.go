package token

import (
	"os"
	"path/filepath"
)

// OSResolver resolves "$[ name $]" directives against the filesystem,
// relative to a base directory (typically the directory containing the
// root database).
type OSResolver struct {
	BaseDir string
}

// Resolve implements FileResolver by reading the named file from disk.
func (r OSResolver) Resolve(name string) ([]byte, bool) {
	path := name
	if r.BaseDir != "" && !filepath.IsAbs(name) {
		path = filepath.Join(r.BaseDir, name)
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	return bytes, true
}
