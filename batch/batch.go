// Package batch resizes every entry of a folder into another folder.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-imsto/batchresize/base"
	cimg "github.com/go-imsto/batchresize/image"
	zlog "github.com/go-imsto/batchresize/log"
)

// Request is fixed for the whole run
type Request struct {
	InputDir  string
	Width     int
	Height    int
	OutputDir string
}

func (r Request) String() string {
	return fmt.Sprintf("%s -> %s %dx%d", r.InputDir, r.OutputDir, r.Width, r.Height)
}

// Entry is one listed path and the name its output keeps
type Entry struct {
	Path string
	Name string
}

func newEntry(p string) Entry {
	return Entry{Path: p, Name: base.DerivedName(p)}
}

type options struct {
	resizer cimg.Resizer
	quality cimg.Quality
}

// Option ...
type Option func(*options)

// WithResizer sets the resize engine, nfnt by default
func WithResizer(rz cimg.Resizer) Option {
	return func(o *options) {
		o.resizer = rz
	}
}

// WithQuality sets the encode quality of lossy outputs, clamped to 1..100.
// Zero keeps the encoder default.
func WithQuality(q int) Option {
	return func(o *options) {
		switch {
		case q > cimg.MaxQuality:
			o.quality = cimg.MaxQuality
		case q > 0:
			o.quality = cimg.Quality(q)
		case q < 0:
			o.quality = cimg.MinQuality
		}
	}
}

// List returns the entries directly under dir, in name order.
// Dot files are left out, subdirectories and non-images are not.
func List(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		if strings.HasPrefix(de.Name(), ".") {
			continue
		}
		entries = append(entries, newEntry(filepath.Join(dir, de.Name())))
	}
	return entries, nil
}

// Run resizes every entry of req.InputDir into req.OutputDir.
// It stops at the first error; outputs written before it are kept.
func Run(req Request, opts ...Option) error {
	entries, err := List(req.InputDir)
	if err != nil {
		return fmt.Errorf("list %s: %w", req.InputDir, err)
	}
	zlog.Debugw("batch start", "req", req.String(), "entries", len(entries))
	return process(entries, req.Width, req.Height, req.OutputDir, opts)
}

// RunFiles is Run over explicit paths. Paths sharing a derived name write
// the same output, the last one wins.
func RunFiles(paths []string, width, height int, outputDir string, opts ...Option) error {
	entries := make([]Entry, len(paths))
	for i, p := range paths {
		entries[i] = newEntry(p)
	}
	return process(entries, width, height, outputDir, opts)
}

func process(entries []Entry, width, height int, outputDir string, opts []Option) error {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	ropt := cimg.ResizeOption{
		Width:       width,
		Height:      height,
		Resizer:     o.resizer,
		WriteOption: cimg.WriteOption{Quality: o.quality},
	}
	zlog.Debugw("resizing", "entries", len(entries), "option", ropt.String(), "dest", outputDir)
	for _, e := range entries {
		attr, err := cimg.ResizeFile(e.Path, filepath.Join(outputDir, e.Name), ropt)
		if err != nil {
			return err
		}
		zlog.Debugw("resized", "src", e.Path, "attr", attr.String(), "mime", attr.Mime)
	}
	return nil
}
