package imaging

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestEncode_PNG(t *testing.T) {
	red := color.RGBA{0xAF, 0x30, 0x29, 0xFF}
	data, err := EncodeBytes(solid(40, 20, red), Options{Format: PNG})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(40, 20), img.Bounds().Size())
	r, g, b, a := img.At(10, 10).RGBA()
	assert.Equal(t, []uint32{0xAF, 0x30, 0x29, 0xFF}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})
}

func TestEncode_JPEG(t *testing.T) {
	data, err := EncodeBytes(solid(32, 32, color.White), Options{Format: JPEG, Quality: 90})
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(32, 32), img.Bounds().Size())

	low, err := EncodeBytes(solid(32, 32, color.White), Options{Format: JPEG})
	require.NoError(t, err)
	assert.NotEmpty(t, low)
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	_, err := EncodeBytes(solid(1, 1, color.White), Options{Format: "webp"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format: webp")
}

func TestScale(t *testing.T) {
	src := solid(512, 512, color.RGBA{0, 0, 0xFF, 0xFF})
	dst := Scale(src, image.Pt(16, 16))
	assert.Equal(t, image.Rect(0, 0, 16, 16), dst.Bounds())
	_, _, b, a := dst.At(8, 8).RGBA()
	assert.InDelta(t, 0xFFFF, b, 0x200)
	assert.InDelta(t, 0xFFFF, a, 0x200)
}

func TestEncodeICO(t *testing.T) {
	var buf bytes.Buffer
	images := []image.Image{solid(16, 16, color.Black), solid(32, 32, color.Black), solid(256, 256, color.Black)}
	require.NoError(t, EncodeICO(&buf, images))

	data := buf.Bytes()
	require.Greater(t, len(data), icoHeaderSize+3*icoEntrySize)
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(data[0:2]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[2:4]))
	assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(data[4:6]))

	wantSides := []byte{16, 32, 0}
	for i, side := range wantSides {
		entry := data[icoHeaderSize+i*icoEntrySize:]
		assert.Equal(t, side, entry[0], "width of entry %d", i)
		assert.Equal(t, side, entry[1], "height of entry %d", i)
		assert.Equal(t, uint16(32), binary.LittleEndian.Uint16(entry[6:8]))

		size := binary.LittleEndian.Uint32(entry[8:12])
		offset := binary.LittleEndian.Uint32(entry[12:16])
		payload := data[offset : offset+size]
		cfg, err := png.DecodeConfig(bytes.NewReader(payload))
		require.NoError(t, err)
		assert.Equal(t, images[i].Bounds().Dx(), cfg.Width)
	}
}

func TestEncodeICO_Rejects(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, EncodeICO(&buf, nil))
	require.Error(t, EncodeICO(&buf, []image.Image{solid(300, 300, color.Black)}))
	assert.Zero(t, buf.Len())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "og-image.png")
	assert.False(t, Exists(path))

	require.NoError(t, WriteFile(path, []byte("first")))
	require.NoError(t, WriteFile(path, []byte("second")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
	assert.True(t, Exists(path))
	assert.False(t, Exists(filepath.Dir(path)))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}
