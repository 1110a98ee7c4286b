// Package display answers questions about the host's display hardware: which
// video modes it advertises, the current desktop resolution, and the UI scale
// (density) relative to a 96 DPI reference. Mode queries go through a
// throwaway windowless device; density is read from the display server with a
// settings fallback.
package display

import (
	"fmt"
	"io"

	"github.com/cswager/voxen/engine/device"
	"github.com/cswager/voxen/engine/driver"
)

// newNullDevice creates the throwaway windowless query device. It is a
// package variable so tests can substitute a fake platform.
var newNullDevice = func() (device.Device, error) {
	return device.CreateDevice(device.CreationParams{
		DriverKind: driver.KindNull,
		Width:      640,
		Height:     480,
		Bits:       24,
	})
}

// Modes enumerates every video mode the display hardware advertises, through
// a throwaway windowless device that is disposed before returning. Failure to
// create that device is an environment defect (broken driver stack), not a
// recoverable error: Modes panics.
//
// Returns:
//   - []device.VideoMode: the advertised modes, in platform order
func Modes() []device.VideoMode {
	dev, err := newNullDevice()
	if err != nil {
		panic(fmt.Sprintf("display: failed to create null device for mode query: %v", err))
	}
	defer dev.Close()
	return dev.VideoModes()
}

// DesktopMode returns the platform's current desktop resolution and depth,
// reported separately from the enumerated mode list. Panics under the same
// conditions as Modes.
//
// Returns:
//   - device.VideoMode: the active desktop mode
func DesktopMode() device.VideoMode {
	dev, err := newNullDevice()
	if err != nil {
		panic(fmt.Sprintf("display: failed to create null device for desktop mode query: %v", err))
	}
	defer dev.Close()
	return dev.DesktopMode()
}

// DesktopSize returns the current desktop resolution in pixels.
//
// Returns:
//   - int: width in pixels
//   - int: height in pixels
func DesktopSize() (int, int) {
	m := DesktopMode()
	return m.Width, m.Height
}

// PrintVideoModes writes the advertised mode list and the active desktop mode
// to w in WxHxD form. Unlike Modes, a null-device failure here is reported by
// returning false rather than panicking, so a command-line listing can degrade
// gracefully.
//
// Parameters:
//   - w: destination for the listing
//
// Returns:
//   - bool: false if the windowless query device could not be created
func PrintVideoModes(w io.Writer) bool {
	dev, err := newNullDevice()
	if err != nil {
		return false
	}
	defer dev.Close()

	fmt.Fprintln(w, "Available video modes (WxHxD):")
	for _, m := range dev.VideoModes() {
		fmt.Fprintf(w, "%dx%dx%d\n", m.Width, m.Height, m.Depth)
	}

	active := dev.DesktopMode()
	fmt.Fprintln(w, "Active video mode (WxHxD):")
	fmt.Fprintf(w, "%dx%dx%d\n", active.Width, active.Height, active.Depth)
	return true
}
