package testutils

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	dirPermissions  = 0775
	filePermissions = 0664
)

// WriteTree creates the given files below root. Keys are slash-separated paths relative to root, values the file contents.
// A key ending in "/" creates an empty directory.
func WriteTree(t testing.TB, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			if err := os.MkdirAll(p, dirPermissions); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), dirPermissions); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), filePermissions); err != nil {
			t.Fatal(err)
		}
	}
}
