package image

import (
	"fmt"
)

type Dimension uint32
type Size uint32
type Quality uint8

// Attr describes an encoded image
type Attr struct {
	Width   Dimension `json:"width"`
	Height  Dimension `json:"height"`
	Quality Quality   `json:"quality,omitempty"`
	Size    Size      `json:"size"`
	Ext     string    `json:"ext,omitempty"`
	Mime    string    `json:"mime,omitempty"`
	Name    string    `json:"name,omitempty"`
}

func (a Attr) String() string {
	return fmt.Sprintf("%s %dx%d %d bytes", a.Name, a.Width, a.Height, a.Size)
}

// NewAttr ...
func NewAttr(w, h uint, q uint8) *Attr {
	return &Attr{
		Width:   Dimension(w),
		Height:  Dimension(h),
		Quality: Quality(q),
	}
}
