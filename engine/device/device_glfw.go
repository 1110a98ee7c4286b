package device

import (
	"image"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/cswager/voxen/common"
	"github.com/cswager/voxen/engine/driver"
)

// glfwDevice is the windowed device implementation. It owns the single GLFW
// window and the driver boundary attached to it.
type glfwDevice struct {
	params CreationParams
	window *glfw.Window
	drv    *glfwDriver
	closed bool
}

var _ Device = &glfwDevice{}

// newGLFWDevice creates the visible window for the requested backend, applying
// the creation parameters as window hints.
func newGLFWDevice(params CreationParams) (Device, error) {
	// GLFW requires all windowing calls on the thread that initialized it.
	runtime.LockOSThread()

	if err := acquireGLFW(); err != nil {
		return nil, err
	}

	glfw.DefaultWindowHints()
	applyContextHints(params.DriverKind)
	applyFramebufferHints(params)
	// Resizability is toggled after creation through SetResizable.
	glfw.WindowHint(glfw.Resizable, glfw.False)

	var monitor *glfw.Monitor
	if params.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	window, err := glfw.CreateWindow(params.Width, params.Height, params.Title, monitor, nil)
	if err != nil {
		releaseGLFW()
		return nil, errors.Wrap(err, "create window")
	}

	if hasGLContext(params.DriverKind) {
		window.MakeContextCurrent()
		if params.Vsync {
			glfw.SwapInterval(1)
		} else {
			glfw.SwapInterval(0)
		}
	}

	dev := &glfwDevice{
		params: params,
		window: window,
	}
	dev.drv = newGLFWDriver(dev)

	common.Logger().Info("device created",
		"driver", params.DriverKind.InternalName(),
		"size", [2]int{params.Width, params.Height},
		"fullscreen", params.Fullscreen,
		"vsync", params.Vsync,
	)
	return dev, nil
}

// applyContextHints selects the client API for the backend kind. The software
// rasterizers render on the CPU and present through a surface, so they get no
// GL context at all.
func applyContextHints(kind driver.Kind) {
	switch kind {
	case driver.KindOpenGL:
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	case driver.KindOGLES1:
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
		glfw.WindowHint(glfw.ContextVersionMajor, 1)
	case driver.KindOGLES2:
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
		glfw.WindowHint(glfw.ContextVersionMajor, 2)
	default:
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	}
}

// applyFramebufferHints translates depth, MSAA and stereo parameters into
// framebuffer hints.
func applyFramebufferHints(params CreationParams) {
	bits := 8
	if params.Bits < 24 {
		bits = 5
	}
	glfw.WindowHint(glfw.RedBits, bits)
	glfw.WindowHint(glfw.GreenBits, bits)
	glfw.WindowHint(glfw.BlueBits, bits)
	glfw.WindowHint(glfw.DepthBits, int(params.ZBufferBits))
	if params.Stencilbuffer {
		glfw.WindowHint(glfw.StencilBits, 8)
	}
	glfw.WindowHint(glfw.Samples, int(params.AntiAlias))
	if params.Stereobuffer {
		glfw.WindowHint(glfw.Stereo, glfw.True)
	}
}

// hasGLContext reports whether the backend kind owns a GL context, which
// determines whether vsync and presentation go through SwapInterval and
// SwapBuffers.
func hasGLContext(kind driver.Kind) bool {
	switch kind {
	case driver.KindOpenGL, driver.KindOGLES1, driver.KindOGLES2:
		return true
	default:
		return false
	}
}

func (d *glfwDevice) VideoDriver() VideoDriver {
	return d.drv
}

func (d *glfwDevice) DriverKind() driver.Kind {
	return d.params.DriverKind
}

func (d *glfwDevice) Title() string {
	return d.params.Title
}

func (d *glfwDevice) WindowSize() (int, int) {
	return d.window.GetFramebufferSize()
}

func (d *glfwDevice) SetResizable(resizable bool) {
	v := glfw.False
	if resizable {
		v = glfw.True
	}
	d.window.SetAttrib(glfw.Resizable, v)
}

func (d *glfwDevice) SetIcon(img image.Image) {
	if img == nil {
		return
	}
	d.window.SetIcon([]image.Image{img})
}

func (d *glfwDevice) VideoModes() []VideoMode {
	return monitorModes()
}

func (d *glfwDevice) DesktopMode() VideoMode {
	return monitorDesktopMode()
}

func (d *glfwDevice) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(d.window)
}

func (d *glfwDevice) Run() bool {
	glfw.PollEvents()
	return !d.window.ShouldClose()
}

func (d *glfwDevice) Close() error {
	if d.closed {
		return errors.New("device already closed")
	}
	d.closed = true
	d.window.Destroy()
	releaseGLFW()
	return nil
}

// monitorModes enumerates the primary monitor's advertised video modes.
func monitorModes() []VideoMode {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return nil
	}
	raw := monitor.GetVideoModes()
	modes := make([]VideoMode, 0, len(raw))
	for _, m := range raw {
		modes = append(modes, VideoMode{
			Width:  m.Width,
			Height: m.Height,
			Depth:  m.RedBits + m.GreenBits + m.BlueBits,
		})
	}
	return modes
}

// monitorDesktopMode reads the primary monitor's current mode.
func monitorDesktopMode() VideoMode {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return VideoMode{}
	}
	m := monitor.GetVideoMode()
	if m == nil {
		return VideoMode{}
	}
	return VideoMode{
		Width:  m.Width,
		Height: m.Height,
		Depth:  m.RedBits + m.GreenBits + m.BlueBits,
	}
}

// glfwDriver is the VideoDriver bound to a windowed device. The shim records
// 2D pass state and leaves pixel work to the backend; presentation happens in
// EndScene for context-owning backends.
type glfwDriver struct {
	dev      *glfwDevice
	clear    Color
	viewport Rect
}

var _ VideoDriver = &glfwDriver{}

func newGLFWDriver(dev *glfwDevice) *glfwDriver {
	return &glfwDriver{dev: dev}
}

func (d *glfwDriver) Name() string {
	return d.dev.params.DriverKind.InternalName()
}

func (d *glfwDriver) ScreenSize() (int, int) {
	return d.dev.WindowSize()
}

func (d *glfwDriver) BeginScene(clear Color) {
	d.clear = clear
}

func (d *glfwDriver) EndScene() {
	if hasGLContext(d.dev.params.DriverKind) {
		d.dev.window.SwapBuffers()
	}
}

func (d *glfwDriver) Draw2DImageScaled(tex Texture, dest, src Rect) {
	// The 2D pass is executed by the backend; nothing to validate here.
}

func (d *glfwDriver) SetColorMask(r, g, b, a bool) {}

func (d *glfwDriver) SetDrawBuffer(buf DrawBuffer) {}

func (d *glfwDriver) SetViewport(r Rect) {
	d.viewport = r
}
