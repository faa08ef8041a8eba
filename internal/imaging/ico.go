package imaging

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
)

const (
	icoHeaderSize = 6
	icoEntrySize  = 16
	icoMaxSide    = 256
)

// EncodeICO writes an ICO container holding each image as an embedded PNG,
// which every current browser accepts. Images must be at most 256px square.
func EncodeICO(w io.Writer, images []image.Image) error {
	if len(images) == 0 {
		return fmt.Errorf("encode ico: no images")
	}

	payloads := make([][]byte, len(images))
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	for i, img := range images {
		b := img.Bounds()
		if b.Dx() > icoMaxSide || b.Dy() > icoMaxSide || b.Empty() {
			return fmt.Errorf("encode ico: image %d is %dx%d, want 1..%d px", i, b.Dx(), b.Dy(), icoMaxSide)
		}
		var buf bytes.Buffer
		if err := enc.Encode(&buf, img); err != nil {
			return fmt.Errorf("encode ico: image %d: %w", i, err)
		}
		payloads[i] = buf.Bytes()
	}

	var out bytes.Buffer
	header := []uint16{0, 1, uint16(len(images))}
	if err := binary.Write(&out, binary.LittleEndian, header); err != nil {
		return err
	}

	offset := uint32(icoHeaderSize + icoEntrySize*len(images))
	for i, img := range images {
		b := img.Bounds()
		entry := struct {
			Width, Height, Colors, Reserved uint8
			Planes, BitCount                uint16
			Size, Offset                    uint32
		}{
			Width:    icoDim(b.Dx()),
			Height:   icoDim(b.Dy()),
			Planes:   1,
			BitCount: 32,
			Size:     uint32(len(payloads[i])),
			Offset:   offset,
		}
		if err := binary.Write(&out, binary.LittleEndian, entry); err != nil {
			return err
		}
		offset += entry.Size
	}
	for _, p := range payloads {
		out.Write(p)
	}

	_, err := w.Write(out.Bytes())
	return err
}

// icoDim encodes a side length; 0 means 256.
func icoDim(n int) uint8 {
	if n >= icoMaxSide {
		return 0
	}
	return uint8(n)
}
