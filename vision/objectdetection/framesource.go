package objectdetection

import (
	"context"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// FrameSource is the boundary to whatever supplies frames: a camera, a video
// decoder, or files on disk. Next returns the frame together with a release
// function for implementations that reuse frame buffers. When the source is
// exhausted, Next returns io.EOF.
type FrameSource interface {
	Next(ctx context.Context) (image.Image, func(), error)
	Close() error
}

// StaticSource serves the same frame forever. Useful for single images and tests.
type StaticSource struct {
	Img image.Image
}

// Next returns the static frame.
func (s *StaticSource) Next(ctx context.Context) (image.Image, func(), error) {
	return s.Img, func() {}, nil
}

// Close does nothing.
func (s *StaticSource) Close() error {
	return nil
}

var frameExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

// DirectorySource streams the image files of a directory in name order,
// standing in for a video capture device.
type DirectorySource struct {
	paths []string
	next  int
}

// NewDirectorySource lists the image files in dir. It fails if the directory
// cannot be read or holds no images.
func NewDirectorySource(dir string) (*DirectorySource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open frame directory %q", dir)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if frameExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, errors.Errorf("frame directory %q holds no images", dir)
	}
	sort.Strings(paths)
	return &DirectorySource{paths: paths}, nil
}

// Next decodes and returns the next frame, or io.EOF after the last one.
func (d *DirectorySource) Next(ctx context.Context) (image.Image, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if d.next >= len(d.paths) {
		return nil, nil, io.EOF
	}
	path := d.paths[d.next]
	d.next++
	img, err := imaging.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "cannot decode frame %q", path)
	}
	return img, func() {}, nil
}

// Close does nothing; frames are closed as they are decoded.
func (d *DirectorySource) Close() error {
	return nil
}
