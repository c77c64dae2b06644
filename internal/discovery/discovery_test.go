package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, contents string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

func TestDiscoverFindsDraftsSorted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b/draft2.txt", "二")
	writeFile(t, root, "a/draft1.md", "一")
	writeFile(t, root, "notes.pdf", "ignored")
	writeFile(t, root, "draft0.txt", "零")

	drafts, err := New(root, nil).Discover()
	require.NoError(t, err)

	var paths []string
	for _, d := range drafts {
		paths = append(paths, d.Path)
	}
	assert.Equal(t, []string{"a/draft1.md", "b/draft2.txt", "draft0.txt"}, paths)
	assert.Equal(t, "一", drafts[0].Contents)
}

func TestDiscoverExcludePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.txt", "x")
	writeFile(t, root, "archive/old.txt", "x")
	writeFile(t, root, "README.md", "x")

	drafts, err := New(root, []string{"archive/**", "README.md"}).Discover()
	require.NoError(t, err)

	require.Len(t, drafts, 1)
	assert.Equal(t, "keep.txt", drafts[0].Path)
}

func TestDiscoverNotADirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file.txt", "x")

	_, err := New(filepath.Join(root, "file.txt"), nil).Discover()
	assert.Error(t, err)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"), nil).Discover()
	assert.Error(t, err)
}
