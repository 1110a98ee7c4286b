package chrome

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// imageLoader decodes one image file format, identified by file extension.
type imageLoader struct {
	name   string
	exts   []string
	decode func(r io.Reader) (image.Image, error)
}

// imageLoaders is the fixed loader table scanned in order; the first loader
// claiming the file extension wins.
var imageLoaders = []imageLoader{
	{name: "png", exts: []string{".png"}, decode: png.Decode},
	{name: "jpeg", exts: []string{".jpg", ".jpeg"}, decode: jpeg.Decode},
	{name: "bmp", exts: []string{".bmp"}, decode: bmp.Decode},
}

// loaderForPath finds an image loader capable of the file's extension.
func loaderForPath(path string) (imageLoader, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, l := range imageLoaders {
		for _, e := range l.exts {
			if e == ext {
				return l, true
			}
		}
	}
	return imageLoader{}, false
}

// loadIconImage opens and decodes an icon file through the loader table.
func loadIconImage(path string) (image.Image, error) {
	loader, ok := loaderForPath(path)
	if !ok {
		return nil, errors.Errorf("no image loader for file %q", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open icon file %q", path)
	}
	defer f.Close()

	img, err := loader.decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode icon file %q", path)
	}
	return img, nil
}

// packARGB packs a decoded image into the window-system icon buffer layout:
// a [width, height] header followed by one 32-bit ARGB word per pixel in
// row-major order. The window system expects straight (non-premultiplied)
// alpha, so pixels go through the NRGBA model rather than Color.RGBA.
func packARGB(img image.Image) []uint32 {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf := make([]uint32, 2+width*height)
	buf[0] = uint32(width)
	buf[1] = uint32(height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			word := uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
			buf[2+y*width+x] = word
		}
	}
	return buf
}
