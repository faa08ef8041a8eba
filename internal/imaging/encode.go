// Package imaging encodes rendered images to files: PNG at maximum
// compression, JPEG at a configured quality, and multi-size ICO containers.
// SVG output is produced by the renderer directly and only written here.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Format is an output encoding.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	ICO  Format = "ico"
	SVG  Format = "svg"
)

// DefaultQuality is used for JPEG when Options.Quality is unset.
const DefaultQuality = 90

// Options control encoding.
type Options struct {
	Format  Format
	Quality int
}

// Encode writes img in the requested format.
func Encode(w io.Writer, img image.Image, opts Options) error {
	switch opts.Format {
	case PNG, "":
		enc := &png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(w, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	case JPEG:
		q := opts.Quality
		if q <= 0 {
			q = DefaultQuality
		}
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: q}); err != nil {
			return fmt.Errorf("encode jpeg: %w", err)
		}
	case ICO:
		return EncodeICO(w, []image.Image{img})
	case SVG:
		return fmt.Errorf("svg cannot be encoded from a raster image")
	default:
		return fmt.Errorf("unsupported format: %s", opts.Format)
	}
	return nil
}

// EncodeBytes encodes img into memory.
func EncodeBytes(img image.Image, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Scale resamples src to size with Catmull-Rom.
func Scale(src image.Image, size image.Point) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
