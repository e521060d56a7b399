package image

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/chai2010/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/go-imsto/batchresize/base"
)

const (
	MinQuality     = 1
	MaxQuality     = 100
	DefaultQuality = jpeg.DefaultQuality // 75
)

// WriteOption ...
type WriteOption struct {
	Format  string // gif, jpeg, png, bmp, tiff, webp; an extension is accepted too
	Quality Quality
}

func (wo WriteOption) quality() int {
	q := int(wo.Quality)
	if q < MinQuality {
		return DefaultQuality
	}
	if q > MaxQuality {
		return MaxQuality
	}
	return q
}

// Ext2Format returns the format name for an extension or file name, or "" when unsupported
func Ext2Format(s string) string {
	if et := base.ParseExt(s); et != base.EtNone {
		return et.String()
	}
	return ""
}

// Decode reads any registered format, the pixel model is kept as stored
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(bufio.NewReader(r))
}

// DecodeFile ...
func DecodeFile(name string) (image.Image, string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return Decode(f)
}

// SaveTo encodes m as opt.Format and returns the number of bytes written
func SaveTo(w io.Writer, m image.Image, opt WriteOption) (int, error) {
	mw := NewCountWriter(w)

	var err error
	switch base.ParseExt(opt.Format) {
	case base.EtJPEG:
		err = jpeg.Encode(mw, m, &jpeg.Options{Quality: opt.quality()})
	case base.EtPNG:
		err = png.Encode(mw, m)
	case base.EtGIF:
		err = gif.Encode(mw, m, nil)
	case base.EtBMP:
		err = bmp.Encode(mw, m)
	case base.EtTIFF:
		err = tiff.Encode(mw, m, &tiff.Options{Compression: tiff.Deflate})
	case base.EtWEBP:
		err = webp.Encode(mw, m, &webp.Options{Quality: float32(opt.quality())})
	default:
		return 0, fmt.Errorf("%w: %q", ErrorFormat, opt.Format)
	}

	return mw.Len(), err
}
