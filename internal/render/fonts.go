package render

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Weight selects a font file.
type Weight int

const (
	Regular Weight = iota
	Bold
)

type faceKey struct {
	weight Weight
	size   float64
}

// Fonts caches faces per weight and pixel size. Faces are not safe for
// concurrent drawing; templates render sequentially.
type Fonts struct {
	regular *opentype.Font
	bold    *opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

// LoadFonts parses the embedded Go Regular and Go Bold fonts.
func LoadFonts() (*Fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Fonts{regular: regular, bold: bold, faces: make(map[faceKey]font.Face)}, nil
}

// Face returns a face of the given weight with size in pixels (72 DPI).
func (f *Fonts) Face(w Weight, size float64) (font.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := faceKey{weight: w, size: size}
	if face, ok := f.faces[key]; ok {
		return face, nil
	}

	src := f.regular
	if w == Bold {
		src = f.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face (size %.1f): %w", size, err)
	}
	f.faces[key] = face
	return face, nil
}

// Close closes every cached face.
func (f *Fonts) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var errs []error
	for key, face := range f.faces {
		if err := face.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(f.faces, key)
	}
	return errors.Join(errs...)
}
