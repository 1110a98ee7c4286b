package chrome

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderForPath(t *testing.T) {
	for path, want := range map[string]string{
		"icon.png":            "png",
		"ICON.PNG":            "png",
		"photo.jpg":           "jpeg",
		"photo.JPEG":          "jpeg",
		"legacy.bmp":          "bmp",
		"/usr/share/a.png":    "png",
		"dir.with.dots/b.jpg": "jpeg",
	} {
		l, ok := loaderForPath(path)
		require.True(t, ok, "path %q", path)
		assert.Equal(t, want, l.name, "path %q", path)
	}

	for _, path := range []string{"icon.gif", "icon.svg", "icon", "icon.png.bak"} {
		_, ok := loaderForPath(path)
		assert.False(t, ok, "path %q", path)
	}
}

func TestPackARGB(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xFF, A: 0xFF})             // opaque red
	img.SetNRGBA(1, 0, color.NRGBA{G: 0xFF, A: 0xFF})             // opaque green
	img.SetNRGBA(0, 1, color.NRGBA{B: 0xFF, A: 0xFF})             // opaque blue
	img.SetNRGBA(1, 1, color.NRGBA{})                             // transparent

	buf := packARGB(img)
	require.Len(t, buf, 2+4)
	assert.Equal(t, uint32(2), buf[0])
	assert.Equal(t, uint32(2), buf[1])
	assert.Equal(t, uint32(0xFFFF0000), buf[2])
	assert.Equal(t, uint32(0xFF00FF00), buf[3])
	assert.Equal(t, uint32(0xFF0000FF), buf[4])
	assert.Equal(t, uint32(0x00000000), buf[5])
}

func TestPackARGBKeepsStraightAlpha(t *testing.T) {
	// Translucent pixels must come out non-premultiplied: half-transparent
	// white stays white, not gray.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x80})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0x40, G: 0x80, B: 0xC0, A: 0x20})

	buf := packARGB(img)
	require.Len(t, buf, 2+2)
	assert.Equal(t, uint32(0x80FFFFFF), buf[2])
	assert.Equal(t, uint32(0x204080C0), buf[3])
}

func TestPackARGBNonZeroOrigin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(3, 7, 5, 8))
	img.SetNRGBA(3, 7, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF})

	buf := packARGB(img)
	require.Len(t, buf, 2+2)
	assert.Equal(t, uint32(2), buf[0])
	assert.Equal(t, uint32(1), buf[1])
	assert.Equal(t, uint32(0xFF102030), buf[2])
}

func TestLoadIconImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	decoded, err := loadIconImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), decoded.Bounds())
}

func TestLoadIconImageFailures(t *testing.T) {
	// Unknown extension: no loader found.
	_, err := loadIconImage("icon.tga")
	assert.ErrorContains(t, err, "no image loader")

	// Known extension but missing file.
	_, err = loadIconImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorContains(t, err, "open icon file")

	// Known extension but corrupt payload.
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))
	_, err = loadIconImage(path)
	assert.ErrorContains(t, err, "decode icon file")
}

func TestSetWindowIconDegradesOnLoadFailure(t *testing.T) {
	// Loading fails before any platform call, so no device is needed.
	assert.False(t, SetWindowIcon(nil, "no-such-icon.png"))
	assert.False(t, SetWindowIcon(nil, "icon.tga"))
}
