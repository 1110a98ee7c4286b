package device

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/pkg/errors"

	"github.com/cswager/voxen/engine/driver"
)

// nullDevice is the windowless device used only to query platform
// capabilities (video modes, desktop resolution). It initializes the
// windowing stack for monitor access but never creates a window.
type nullDevice struct {
	params CreationParams
	drv    *nullDriver
	closed bool
}

var _ Device = &nullDevice{}

func newNullDevice(params CreationParams) (Device, error) {
	if err := acquireGLFW(); err != nil {
		return nil, errors.Wrap(err, "create null device")
	}
	return &nullDevice{
		params: params,
		drv:    &nullDriver{w: params.Width, h: params.Height},
	}, nil
}

func (d *nullDevice) VideoDriver() VideoDriver {
	return d.drv
}

func (d *nullDevice) DriverKind() driver.Kind {
	return driver.KindNull
}

func (d *nullDevice) Title() string {
	return d.params.Title
}

func (d *nullDevice) WindowSize() (int, int) {
	return d.params.Width, d.params.Height
}

func (d *nullDevice) SetResizable(resizable bool) {}

func (d *nullDevice) SetIcon(img image.Image) {}

func (d *nullDevice) VideoModes() []VideoMode {
	return monitorModes()
}

func (d *nullDevice) DesktopMode() VideoMode {
	return monitorDesktopMode()
}

func (d *nullDevice) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return nil
}

func (d *nullDevice) Run() bool {
	return !d.closed
}

func (d *nullDevice) Close() error {
	if d.closed {
		return errors.New("device already closed")
	}
	d.closed = true
	releaseGLFW()
	return nil
}

// nullDriver discards all drawing. It reports the creation size as the screen
// size so layout code keeps working against a query device.
type nullDriver struct {
	w, h int
}

var _ VideoDriver = &nullDriver{}

func (d *nullDriver) Name() string {
	return driver.KindNull.InternalName()
}

func (d *nullDriver) ScreenSize() (int, int) {
	return d.w, d.h
}

func (d *nullDriver) BeginScene(clear Color)                       {}
func (d *nullDriver) EndScene()                                    {}
func (d *nullDriver) Draw2DImageScaled(tex Texture, dest, src Rect) {}
func (d *nullDriver) SetColorMask(r, g, b, a bool)                 {}
func (d *nullDriver) SetDrawBuffer(buf DrawBuffer)                 {}
func (d *nullDriver) SetViewport(r Rect)                           {}
