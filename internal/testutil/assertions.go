// Package testutil holds assertions shared by tests that inspect generated
// output on disk.
package testutil

import (
	"encoding/binary"
	"image"
	_ "image/jpeg" // decode JPEG cards
	_ "image/png"  // decode PNG cards
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// FileAssertions checks files below a base directory. Methods chain.
type FileAssertions struct {
	t       *testing.T
	baseDir string
}

// NewFileAssertions creates a new file assertions helper.
func NewFileAssertions(t *testing.T, baseDir string) *FileAssertions {
	return &FileAssertions{t: t, baseDir: baseDir}
}

func (fa *FileAssertions) path(rel string) string {
	return filepath.Join(fa.baseDir, filepath.FromSlash(rel))
}

// AssertFileExists validates that a file exists.
func (fa *FileAssertions) AssertFileExists(rel string) *FileAssertions {
	fa.t.Helper()
	if _, err := os.Stat(fa.path(rel)); err != nil {
		fa.t.Errorf("Expected file to exist: %s", fa.path(rel))
	}
	return fa
}

// AssertNoFile validates that nothing exists at rel.
func (fa *FileAssertions) AssertNoFile(rel string) *FileAssertions {
	fa.t.Helper()
	if _, err := os.Stat(fa.path(rel)); err == nil {
		fa.t.Errorf("Expected no file at %s", fa.path(rel))
	}
	return fa
}

// AssertFileContains validates that a file contains expected content.
func (fa *FileAssertions) AssertFileContains(rel, expected string) *FileAssertions {
	fa.t.Helper()
	// #nosec G304 - test helper, paths are controlled by test code
	data, err := os.ReadFile(fa.path(rel))
	if err != nil {
		fa.t.Errorf("Failed to read file %s: %v", fa.path(rel), err)
		return fa
	}
	if !strings.Contains(string(data), expected) {
		fa.t.Errorf("Expected file %s to contain %q\nActual content:\n%s", rel, expected, data)
	}
	return fa
}

// AssertImage validates that rel decodes as an image of the given format
// ("png" or "jpeg") and dimensions.
func (fa *FileAssertions) AssertImage(rel, format string, width, height int) *FileAssertions {
	fa.t.Helper()
	f, err := os.Open(fa.path(rel))
	if err != nil {
		fa.t.Errorf("Failed to open image %s: %v", fa.path(rel), err)
		return fa
	}
	defer func() { _ = f.Close() }()

	cfg, got, err := image.DecodeConfig(f)
	if err != nil {
		fa.t.Errorf("Failed to decode image %s: %v", rel, err)
		return fa
	}
	if got != format {
		fa.t.Errorf("Expected %s to be %s, got %s", rel, format, got)
	}
	if cfg.Width != width || cfg.Height != height {
		fa.t.Errorf("Expected %s to be %dx%d, got %dx%d", rel, width, height, cfg.Width, cfg.Height)
	}
	return fa
}

// AssertICO validates the directory of an ICO file: one entry per size, in
// order. Size 256 is stored as 0.
func (fa *FileAssertions) AssertICO(rel string, sizes ...int) *FileAssertions {
	fa.t.Helper()
	// #nosec G304 - test helper, paths are controlled by test code
	data, err := os.ReadFile(fa.path(rel))
	if err != nil {
		fa.t.Errorf("Failed to read icon %s: %v", fa.path(rel), err)
		return fa
	}
	if len(data) < 6 || binary.LittleEndian.Uint16(data[2:4]) != 1 {
		fa.t.Errorf("Expected %s to be an ICO file", rel)
		return fa
	}
	count := int(binary.LittleEndian.Uint16(data[4:6]))
	if count != len(sizes) {
		fa.t.Errorf("Expected %d icon entries in %s, found %d", len(sizes), rel, count)
		return fa
	}
	for i, size := range sizes {
		off := 6 + 16*i
		if len(data) < off+16 {
			fa.t.Errorf("Truncated icon directory in %s", rel)
			return fa
		}
		got := int(data[off])
		if got == 0 {
			got = 256
		}
		if got != size {
			fa.t.Errorf("Expected icon entry %d in %s to be %dpx, got %dpx", i, rel, size, got)
		}
	}
	return fa
}

// Chdir changes the working directory to dir for the duration of the test,
// restoring the previous directory on cleanup. It mirrors testing.T.Chdir
// for toolchains that predate it.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	if filepath.IsAbs(dir) {
		t.Setenv("PWD", dir)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			panic("testutil.Chdir: restoring working directory: " + err.Error())
		}
	})
}
