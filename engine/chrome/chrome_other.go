//go:build !linux && !windows

package chrome

import (
	"image"

	"github.com/cswager/voxen/engine/device"
)

// platformSetIcon hands the decoded image to the windowing library, which
// owns icon handling on platforms without a direct window-system API here.
func platformSetIcon(dev device.Device, img image.Image) bool {
	dev.SetIcon(img)
	return true
}

// platformSetClassHint is a no-op outside X11.
func platformSetClassHint(dev device.Device, name string) {}
