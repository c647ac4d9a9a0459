// Package fsutil lists template trees and classifies their files.
package fsutil

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// sniffLen is how many leading bytes IsBinary inspects.
const sniffLen = 8000

// MatchesAny returns true if the slash-separated path matches any glob.
func MatchesAny(path string, globs []string) bool {
	normalized := filepath.ToSlash(path)
	for _, g := range globs {
		if g == "" {
			continue
		}
		ok, err := doublestar.Match(g, normalized)
		if err == nil && ok {
			return true
		}
	}
	return false
}

// ListFiles returns the slash-separated paths of all files under root,
// relative to root and sorted, skipping anything matched by ignore.
// Symlinked directories are not followed.
func ListFiles(root string, ignore []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if MatchesAny(rel, ignore) || MatchesAny(rel+"/", ignore) {
				return filepath.SkipDir
			}
			return nil
		}
		if MatchesAny(rel, ignore) {
			return nil
		}

		if d.Type()&os.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				// Broken symlink
				return nil
			}
			if target.IsDir() {
				return nil
			}
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// IsBinary reports whether data looks like binary content: a NUL byte in
// the first 8000 bytes.
func IsBinary(data []byte) bool {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}
