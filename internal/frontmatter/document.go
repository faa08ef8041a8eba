package frontmatter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// IndexNames lists the recognised index documents in lookup order.
var IndexNames = []string{"index.mdx", "index.md"}

var (
	// ErrNoIndex indicates a directory has no recognised index document.
	ErrNoIndex = errors.New("no index document")
	// ErrNoFrontmatter indicates the index document has no frontmatter block,
	// or an empty one.
	ErrNoFrontmatter = errors.New("no frontmatter block")
)

// Document is an index document with its parsed frontmatter.
type Document struct {
	Path   string
	Fields map[string]string
	Body   []byte
}

// FindIndex returns the name of the index document among files, or "".
func FindIndex(files []string) string {
	present := make(map[string]bool, len(files))
	for _, f := range files {
		present[f] = true
	}
	for _, name := range IndexNames {
		if present[name] {
			return name
		}
	}
	return ""
}

// Read locates and parses the index document of dir. files is the directory
// listing of dir; pass nil to have Read list it.
func Read(dir string, files []string) (Document, error) {
	if files == nil {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return Document{}, err
		}
		for _, e := range entries {
			files = append(files, e.Name())
		}
	}

	name := FindIndex(files)
	if name == "" {
		return Document{}, ErrNoIndex
	}

	path := filepath.Join(dir, name)
	content, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", name, err)
	}

	// An empty block carries nothing to read and counts as absent.
	block, body, had, _, err := Split(content)
	if err != nil || !had || len(block) == 0 {
		return Document{Path: path}, ErrNoFrontmatter
	}

	return Document{
		Path:   path,
		Fields: ParseFlat(block),
		Body:   body,
	}, nil
}
