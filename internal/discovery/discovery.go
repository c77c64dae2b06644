// Package discovery locates draft files for batch review.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// draftPatterns are the glob patterns matched against paths relative to the
// scanned root. Results are de-duplicated and sorted for deterministic
// batch ordering.
var draftPatterns = []string{
	"**/*.txt",
	"**/*.md",
}

// Draft is one discovered draft file with its contents loaded.
type Draft struct {
	Path     string // relative to the scanned root
	AbsPath  string
	Contents string
}

// Discovery scans a root directory for draft files.
type Discovery struct {
	root    string
	exclude []string
}

// New creates a Discovery for the given root. exclude patterns are globs
// matched against relative paths; matching files are skipped.
func New(root string, exclude []string) *Discovery {
	return &Discovery{root: root, exclude: exclude}
}

// Discover walks the root and returns all draft files in sorted path order.
func (d *Discovery) Discover() ([]Draft, error) {
	info, err := os.Stat(d.root)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", d.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", d.root)
	}

	seen := map[string]bool{}
	var paths []string

	err = filepath.WalkDir(d.root, func(path string, entry os.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}
		rel, err := filepath.Rel(d.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.excluded(rel) {
			return nil
		}
		for _, pattern := range draftPatterns {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				if !seen[rel] {
					seen[rel] = true
					paths = append(paths, rel)
				}
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", d.root, err)
	}

	sort.Strings(paths)

	drafts := make([]Draft, 0, len(paths))
	for _, rel := range paths {
		abs := filepath.Join(d.root, filepath.FromSlash(rel))
		data, err := os.ReadFile(abs)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", abs, err)
		}
		drafts = append(drafts, Draft{Path: rel, AbsPath: abs, Contents: string(data)})
	}
	return drafts, nil
}

func (d *Discovery) excluded(rel string) bool {
	for _, pattern := range d.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
