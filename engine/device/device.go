// Package device creates and owns the process's graphics/window device. It is
// a thin layer over GLFW for windowing, with a WebGPU surface descriptor
// exposed for the rendering cores; there is exactly one visible device per
// process, constructed explicitly and passed by reference to consumers.
package device

import (
	"image"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/cswager/voxen/engine/driver"
)

// Device is a graphics/window device handle. A device created with
// driver.KindNull has no window and serves capability queries only.
type Device interface {
	// VideoDriver returns the drawing boundary for this device.
	//
	// Returns:
	//   - VideoDriver: the active video driver
	VideoDriver() VideoDriver

	// DriverKind returns the backend the device was created with.
	//
	// Returns:
	//   - driver.Kind: the fixed backend kind
	DriverKind() driver.Kind

	// Title returns the window title the device was created with.
	//
	// Returns:
	//   - string: the window title
	Title() string

	// WindowSize returns the current framebuffer size in pixels.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	WindowSize() (int, int)

	// SetResizable toggles whether the user can resize the window.
	//
	// Parameters:
	//   - resizable: true to allow resizing
	SetResizable(resizable bool)

	// SetIcon hands a decoded icon image to the platform window system.
	// No-op on windowless devices.
	//
	// Parameters:
	//   - img: the decoded icon image
	SetIcon(img image.Image)

	// VideoModes returns every resolution/depth combination the display
	// hardware advertises.
	//
	// Returns:
	//   - []VideoMode: the advertised modes
	VideoModes() []VideoMode

	// DesktopMode returns the platform's current desktop resolution and
	// depth, distinct from the enumerated mode list.
	//
	// Returns:
	//   - VideoMode: the active desktop mode
	DesktopMode() VideoMode

	// SurfaceDescriptor returns a platform-appropriate WebGPU surface
	// descriptor for the window, or nil for windowless devices.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the surface descriptor, or nil
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run pumps pending window events and reports whether the device should
	// keep running.
	//
	// Returns:
	//   - bool: false once the window has been asked to close
	Run() bool

	// Close destroys the window and releases the windowing stack.
	//
	// Returns:
	//   - error: error if the device was already closed
	Close() error
}

// glfwRefs counts live devices so the GLFW library is terminated only when
// the last one closes. A throwaway null device must not tear down the stack
// under a live main window.
var (
	glfwMu   sync.Mutex
	glfwRefs int
)

func acquireGLFW() error {
	glfwMu.Lock()
	defer glfwMu.Unlock()
	if glfwRefs == 0 {
		if err := glfw.Init(); err != nil {
			return errors.Wrap(err, "initialize windowing stack")
		}
	}
	glfwRefs++
	return nil
}

func releaseGLFW() {
	glfwMu.Lock()
	defer glfwMu.Unlock()
	if glfwRefs == 0 {
		return
	}
	glfwRefs--
	if glfwRefs == 0 {
		glfw.Terminate()
	}
}

// CreateDevice creates a device for the given parameters. A null driver kind
// yields a windowless query device; backends unsupported on this host yield
// an error the caller is expected to treat as fatal.
//
// Parameters:
//   - params: the creation parameters
//
// Returns:
//   - Device: the created device
//   - error: error if the backend is unavailable or window creation fails
func CreateDevice(params CreationParams) (Device, error) {
	params = params.withDefaults()

	if params.DriverKind == driver.KindNull {
		return newNullDevice(params)
	}

	supported := false
	for _, d := range driver.SupportedDrivers() {
		if d.Kind == params.DriverKind {
			supported = true
			break
		}
	}
	if !supported {
		return nil, errors.Errorf("video driver %q is not supported on this platform",
			params.DriverKind.InternalName())
	}

	return newGLFWDevice(params)
}
