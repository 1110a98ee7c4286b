// Package chrome applies platform window decorations that live outside the
// drawing pipeline: the window icon and the window-manager class hint. Every
// operation here is best-effort; a client without an icon is fully
// functional, so failures degrade to a boolean instead of an error chain.
package chrome

import (
	"github.com/cswager/voxen/common"
	"github.com/cswager/voxen/engine/device"
)

// SetWindowIcon decodes the icon file and hands it to the platform window
// system. All failure modes (no loader for the extension, unreadable file,
// decode error, no reachable native window) are non-fatal: the function logs
// a warning and returns false, and the caller proceeds without an icon.
//
// Parameters:
//   - dev: the windowed device to decorate
//   - iconPath: path to the icon image file
//
// Returns:
//   - bool: true if the icon was applied
func SetWindowIcon(dev device.Device, iconPath string) bool {
	img, err := loadIconImage(iconPath)
	if err != nil {
		common.Logger().Warn("could not load window icon", "path", iconPath, "err", err)
		return false
	}
	if !platformSetIcon(dev, img) {
		common.Logger().Warn("window system rejected icon", "path", iconPath)
		return false
	}
	return true
}

// SetClassHint tells the window manager which application class the window
// belongs to, using name for both the resource name and class. No-op on
// platforms without class hints.
//
// Parameters:
//   - dev: the windowed device to decorate
//   - name: the application class name
func SetClassHint(dev device.Device, name string) {
	platformSetClassHint(dev, name)
}
