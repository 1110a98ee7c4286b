package device

import (
	"github.com/cswager/voxen/common"
	"github.com/cswager/voxen/engine/driver"
)

// CreationParams carries every knob the device honors at creation time. The
// backend kind is fixed once the device exists; changing it requires a full
// device re-creation.
type CreationParams struct {
	// DriverKind selects the graphics backend.
	DriverKind driver.Kind

	// Title is the window title.
	Title string

	// Width and Height are the requested window client size in pixels.
	Width  int
	Height int

	// Bits is the color depth of the framebuffer.
	Bits uint16

	// ZBufferBits is the depth buffer precision.
	ZBufferBits uint16

	// AntiAlias is the multisample count (0 disables MSAA).
	AntiAlias uint16

	// Fullscreen places the window on the primary monitor in fullscreen.
	Fullscreen bool

	// Stencilbuffer requests a stencil buffer.
	Stencilbuffer bool

	// Stereobuffer requests quad-buffered stereo, needed by pageflip stereo.
	Stereobuffer bool

	// Vsync synchronizes presentation with the vertical blank.
	Vsync bool

	// HighPrecisionFPU is honored for configuration fidelity; the Go runtime
	// does not expose FPU precision control.
	HighPrecisionFPU bool
}

// withDefaults fills unset size and depth fields with the values used for
// throwaway query devices.
func (p CreationParams) withDefaults() CreationParams {
	if p.Width <= 0 {
		p.Width = 640
	}
	if p.Height <= 0 {
		p.Height = 480
	}
	p.Bits = common.Coalesce(p.Bits, 24)
	p.ZBufferBits = common.Coalesce(p.ZBufferBits, 24)
	return p
}
