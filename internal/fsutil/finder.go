// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// HCLExt is the extension of menu files.
const HCLExt = ".hcl"

// FindMenuFiles resolves path to the menu files it names. A regular file is
// returned as is, whatever its extension. A directory is searched
// recursively for files ending in HCLExt, returned in lexical order.
func FindMenuFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(d.Name()) == HCLExt {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found in %s", HCLExt, path)
	}

	sort.Strings(files)
	return files, nil
}
