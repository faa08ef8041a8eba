package config

import "strings"

// Format is the raster encoding used for generated images.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// NormalizeFormat canonicalises user input. Unknown values are returned
// lowercased so validation can report them.
func NormalizeFormat(raw string) Format {
	switch v := strings.ToLower(strings.TrimSpace(raw)); v {
	case "png":
		return FormatPNG
	case "jpg", "jpeg":
		return FormatJPEG
	default:
		return Format(v)
	}
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return "png"
}
