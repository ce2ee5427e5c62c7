package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/tinysprite/pntree/sprite"
)

// pngStreamItem is one successfully decoded PNG from a pngStream.
type pngStreamItem struct {
	Name  string
	Frame *sprite.Frame
}

// pngStream walks every file matching a glob pattern, decoding each as a
// PNG in turn. It mirrors the original tool's glob-driven iterator
// (pngstream.rs): a bad pattern fails immediately, but a single unreadable
// or malformed file only fails that one item, letting the caller continue
// with the rest of the batch.
type pngStream struct {
	paths []string
	idx   int
}

func newPNGStream(pattern string) (*pngStream, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid glob pattern %q", pattern)
	}
	return &pngStream{paths: paths}, nil
}

// Next returns the next decoded PNG, or ok=false once every matched path
// has been consumed. A decode failure is returned as an error with ok=true,
// so the caller can log it and keep iterating.
func (s *pngStream) Next() (item *pngStreamItem, err error, ok bool) {
	if s.idx >= len(s.paths) {
		return nil, nil, false
	}
	path := s.paths[s.idx]
	s.idx++

	f, openErr := os.Open(path)
	if openErr != nil {
		return nil, errors.Wrapf(openErr, "open %s", path), true
	}
	defer f.Close()

	frame, decodeErr := sprite.FromPNG(f)
	if decodeErr != nil {
		return nil, errors.Wrapf(decodeErr, "decode %s", path), true
	}
	return &pngStreamItem{Name: filepath.Base(path), Frame: frame}, nil, true
}
