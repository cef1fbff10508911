package events

import (
	"os"
	"path/filepath"
)

// walkDirs calls fn for root and every descendant directory, skipping
// .git/objects and .git/lfs (high-churn, never relevant) while still
// descending into .git itself so .git/HEAD and .git/refs/** are
// watchable.
func walkDirs(root string, fn func(dir string) error) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		base := filepath.Base(path)
		if base == "objects" || base == "lfs" {
			if filepath.Base(filepath.Dir(path)) == ".git" {
				return filepath.SkipDir
			}
		}
		return fn(path)
	})
}

func statIsDir(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return fi.IsDir(), nil
}
