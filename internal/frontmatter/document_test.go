package frontmatter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFindIndex_PrefersMDX(t *testing.T) {
	require.Equal(t, "index.mdx", FindIndex([]string{"index.md", "index.mdx"}))
	require.Equal(t, "index.md", FindIndex([]string{"banner.png", "index.md"}))
	require.Equal(t, "", FindIndex([]string{"README.md", "index.txt"}))
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.md"), "---\ntitle: 'First'\n---\nHello there\n")

	doc, err := Read(dir, nil)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "index.md"), doc.Path)
	require.Equal(t, "First", doc.Fields["title"])
	require.Equal(t, []byte("Hello there\n"), doc.Body)
}

func TestRead_NoIndex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "notes.md"), "---\ntitle: x\n---\n")

	_, err := Read(dir, nil)
	require.ErrorIs(t, err, ErrNoIndex)
}

func TestRead_NoFrontmatter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.mdx"), "# Just a heading\n")

	doc, err := Read(dir, nil)
	require.ErrorIs(t, err, ErrNoFrontmatter)
	require.Equal(t, filepath.Join(dir, "index.mdx"), doc.Path)
}

func TestRead_EmptyBlockCountsAsNoFrontmatter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.md"), "---\n---\n# Body only\n")

	_, err := Read(dir, nil)
	require.ErrorIs(t, err, ErrNoFrontmatter)
}
