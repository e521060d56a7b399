package image

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(w, h int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return m
}

func writeFixture(t *testing.T, name string, m image.Image) {
	t.Helper()
	f, err := os.Create(name)
	require.NoError(t, err)
	defer f.Close()
	_, err = SaveTo(f, m, WriteOption{Format: name})
	require.NoError(t, err)
}

func TestResizeImage(t *testing.T) {
	for _, name := range []string{ResizerNfnt, ResizerXdraw} {
		rz, err := NewResizer(name)
		require.NoError(t, err)

		m, err := ResizeImage(gradient(64, 48), 10, 30, rz)
		assert.NoError(t, err, name)
		assert.Equal(t, image.Rect(0, 0, 10, 30), m.Bounds(), name)

		gray := image.NewGray(image.Rect(0, 0, 40, 40))
		m, err = ResizeImage(gray, 20, 5, rz)
		assert.NoError(t, err, name)
		assert.IsType(t, &image.Gray{}, m, name)
		assert.Equal(t, 20, m.Bounds().Dx())
		assert.Equal(t, 5, m.Bounds().Dy())

		gray16 := image.NewGray16(image.Rect(0, 0, 40, 40))
		m, err = ResizeImage(gray16, 8, 8, rz)
		assert.NoError(t, err, name)
		assert.IsType(t, &image.Gray16{}, m, name)
	}
}

func TestResizeImageInvalid(t *testing.T) {
	for _, wh := range [][2]int{{0, 10}, {10, 0}, {-1, 10}, {10, -5}} {
		m, err := ResizeImage(gradient(8, 8), wh[0], wh[1], nil)
		assert.Nil(t, m)
		assert.True(t, errors.Is(err, ErrInvalidDimension), "%v", wh)
	}
}

func TestNewResizer(t *testing.T) {
	rz, err := NewResizer("")
	assert.NoError(t, err)
	assert.IsType(t, nfntResizer{}, rz)

	_, err = NewResizer("lanczos")
	assert.ErrorIs(t, err, ErrUnknownResizer)
}

func TestResizeFile(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	src := filepath.Join(in, "cat.png")
	writeFixture(t, src, gradient(640, 480))

	dest := filepath.Join(out, "cat.png")
	attr, err := ResizeFile(src, dest, ResizeOption{Width: 100, Height: 50})
	require.NoError(t, err)
	assert.Equal(t, Dimension(100), attr.Width)
	assert.Equal(t, Dimension(50), attr.Height)
	assert.Equal(t, ".png", attr.Ext)
	assert.Equal(t, "image/png", attr.Mime)
	assert.Equal(t, "cat.png", attr.Name)

	fi, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, int64(attr.Size), fi.Size())

	m, format, err := DecodeFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Rect(0, 0, 100, 50), m.Bounds())
}

func TestResizeFileErrors(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	notes := filepath.Join(in, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("not an image"), 0644))
	_, err := ResizeFile(notes, filepath.Join(out, "notes.txt"), ResizeOption{Width: 10, Height: 10})
	assert.ErrorIs(t, err, image.ErrFormat)
	assert.NoFileExists(t, filepath.Join(out, "notes.txt"))

	src := filepath.Join(in, "a.png")
	writeFixture(t, src, gradient(16, 16))

	_, err = ResizeFile(src, filepath.Join(out, "a.xyz"), ResizeOption{Width: 10, Height: 10})
	assert.ErrorIs(t, err, ErrorFormat)
	assert.NoFileExists(t, filepath.Join(out, "a.xyz"))

	_, err = ResizeFile(src, filepath.Join(out, "a.png"), ResizeOption{Width: 0, Height: 10})
	assert.ErrorIs(t, err, ErrInvalidDimension)
	assert.NoFileExists(t, filepath.Join(out, "a.png"))

	_, err = ResizeFile(filepath.Join(in, "missing.png"), filepath.Join(out, "m.png"), ResizeOption{Width: 10, Height: 10})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ResizeFile(src, filepath.Join(out, "nodir", "a.png"), ResizeOption{Width: 10, Height: 10})
	assert.Error(t, err)
}

// Upscaling a black|white pair must blend the inner pixels, nearest neighbour would not.
func TestResizeImageBilinear(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 1))
	src.SetGray(0, 0, color.Gray{Y: 0})
	src.SetGray(1, 0, color.Gray{Y: 255})

	for _, name := range []string{ResizerNfnt, ResizerXdraw} {
		rz, err := NewResizer(name)
		require.NoError(t, err)

		m, err := ResizeImage(src, 4, 1, rz)
		require.NoError(t, err, name)
		gm, ok := m.(*image.Gray)
		require.True(t, ok, name)

		left, right := gm.GrayAt(1, 0).Y, gm.GrayAt(2, 0).Y
		assert.Greater(t, left, uint8(0), name)
		assert.Less(t, left, uint8(255), name)
		assert.Greater(t, right, uint8(0), name)
		assert.Less(t, right, uint8(255), name)
		assert.Less(t, left, right, name)
		assert.LessOrEqual(t, gm.GrayAt(0, 0).Y, left, name)
		assert.GreaterOrEqual(t, gm.GrayAt(3, 0).Y, right, name)
	}
}
