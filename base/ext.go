package base

import (
	"path/filepath"
	"strings"
)

// ImagExt ...
type ImagExt byte

const (
	EtNone ImagExt = iota
	EtGIF
	EtJPEG
	EtPNG
	EtBMP
	EtTIFF
	EtWEBP
)

func (z ImagExt) String() string {
	switch z {
	case EtGIF:
		return "gif"
	case EtJPEG:
		return "jpeg"
	case EtPNG:
		return "png"
	case EtBMP:
		return "bmp"
	case EtTIFF:
		return "tiff"
	case EtWEBP:
		return "webp"
	}
	return "unknown"
}

// Mime returns the media type registered for the format.
func (z ImagExt) Mime() string {
	if z == EtNone {
		return ""
	}
	return "image/" + z.String()
}

// ParseExt accepts a bare format name, an extension or a file name
func ParseExt(s string) ImagExt {
	if pos := strings.LastIndex(s, "."); pos != -1 {
		s = s[pos+1:]
	}
	switch strings.ToLower(s) {
	case "gif":
		return EtGIF
	case "jpeg", "jpg":
		return EtJPEG
	case "png":
		return EtPNG
	case "bmp":
		return EtBMP
	case "tif", "tiff":
		return EtTIFF
	case "webp":
		return EtWEBP
	}
	return EtNone
}

// DerivedName returns the final path segment of p, the name an output file keeps.
func DerivedName(p string) string {
	return filepath.Base(p)
}
