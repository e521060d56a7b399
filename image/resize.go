package image

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	"github.com/go-imsto/batchresize/base"
)

// Resizer scales an image to an exact size
type Resizer interface {
	Resize(img image.Image, size image.Point) image.Image
}

const (
	ResizerNfnt  = "nfnt"
	ResizerXdraw = "xdraw"
)

// NewResizer returns a bilinear resizer backed by the named library
func NewResizer(name string) (Resizer, error) {
	switch name {
	case "", ResizerNfnt:
		return nfntResizer{}, nil
	case ResizerXdraw:
		return xdrawResizer{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownResizer, name)
}

// nfntResizer uses "github.com/nfnt/resize"
type nfntResizer struct{}

func (nfntResizer) Resize(img image.Image, size image.Point) image.Image {
	return resize.Resize(uint(size.X), uint(size.Y), img, resize.Bilinear)
}

// xdrawResizer uses "golang.org/x/image/draw"
type xdrawResizer struct{}

func (xdrawResizer) Resize(img image.Image, size image.Point) image.Image {
	dst := newLike(img, image.Rect(0, 0, size.X, size.Y))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// newLike allocates a canvas with the pixel model of src where one exists
func newLike(src image.Image, r image.Rectangle) draw.Image {
	switch src.(type) {
	case *image.Gray:
		return image.NewGray(r)
	case *image.Gray16:
		return image.NewGray16(r)
	case *image.NRGBA:
		return image.NewNRGBA(r)
	case *image.NRGBA64:
		return image.NewNRGBA64(r)
	case *image.RGBA64:
		return image.NewRGBA64(r)
	}
	return image.NewRGBA(r)
}

// ResizeImage is a hard resize to width x height, the aspect ratio is not kept
func ResizeImage(img image.Image, width, height int, rz Resizer) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if rz == nil {
		rz = nfntResizer{}
	}
	return rz.Resize(img, image.Pt(width, height)), nil
}

// ResizeOption ...
type ResizeOption struct {
	Width, Height int
	Resizer       Resizer
	WriteOption
}

func (ro ResizeOption) String() string {
	return fmt.Sprintf("%dx%d q%d", ro.Width, ro.Height, ro.Quality)
}

// ResizeFile decodes src, resizes it and writes dest in the format named by
// dest's extension. dest is only created once the resized image is ready.
func ResizeFile(src, dest string, opt ResizeOption) (*Attr, error) {
	img, _, err := DecodeFile(src)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}

	m, err := ResizeImage(img, opt.Width, opt.Height, opt.Resizer)
	if err != nil {
		return nil, fmt.Errorf("resize %s: %w", src, err)
	}

	et := base.ParseExt(dest)
	wopt := opt.WriteOption
	wopt.Format = Ext2Format(dest)
	if wopt.Format == "" {
		return nil, fmt.Errorf("encode %s: %w", dest, ErrorFormat)
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(0644))
	if err != nil {
		return nil, err
	}
	n, err := SaveTo(out, m, wopt)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", dest, err)
	}

	mb := m.Bounds()
	attr := NewAttr(uint(mb.Dx()), uint(mb.Dy()), uint8(wopt.Quality))
	attr.Size = Size(n)
	attr.Ext = filepath.Ext(dest)
	attr.Mime = et.Mime()
	attr.Name = filepath.Base(dest)
	return attr, nil
}
