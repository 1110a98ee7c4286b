package rendering

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/pkg/errors"

	"github.com/cswager/voxen/engine/device"
	"github.com/cswager/voxen/engine/driver"
)

type drawCall struct {
	tex  string
	dest device.Rect
	src  device.Rect
}

// fakeDriver records every call made through the VideoDriver boundary.
type fakeDriver struct {
	name string
	w, h int

	begins    []device.Color
	ends      int
	draws     []drawCall
	masks     [][4]bool
	buffers   []device.DrawBuffer
	viewports []device.Rect
}

var _ device.VideoDriver = &fakeDriver{}

func (d *fakeDriver) Name() string           { return d.name }
func (d *fakeDriver) ScreenSize() (int, int) { return d.w, d.h }

func (d *fakeDriver) BeginScene(clear device.Color) { d.begins = append(d.begins, clear) }
func (d *fakeDriver) EndScene()                     { d.ends++ }

func (d *fakeDriver) Draw2DImageScaled(tex device.Texture, dest, src device.Rect) {
	d.draws = append(d.draws, drawCall{tex: tex.Name(), dest: dest, src: src})
}

func (d *fakeDriver) SetColorMask(r, g, b, a bool) {
	d.masks = append(d.masks, [4]bool{r, g, b, a})
}

func (d *fakeDriver) SetDrawBuffer(buf device.DrawBuffer) { d.buffers = append(d.buffers, buf) }
func (d *fakeDriver) SetViewport(r device.Rect)           { d.viewports = append(d.viewports, r) }

// fakeDevice is a windowless Device whose Run answers true a fixed number of
// times before reporting a close request.
type fakeDevice struct {
	drv       *fakeDriver
	kind      driver.Kind
	title     string
	runFrames int
	resizable []bool
	closed    bool
}

var _ device.Device = &fakeDevice{}

func (d *fakeDevice) VideoDriver() device.VideoDriver { return d.drv }
func (d *fakeDevice) DriverKind() driver.Kind         { return d.kind }
func (d *fakeDevice) Title() string                   { return d.title }
func (d *fakeDevice) WindowSize() (int, int)          { return d.drv.ScreenSize() }

func (d *fakeDevice) SetResizable(resizable bool) {
	d.resizable = append(d.resizable, resizable)
}

func (d *fakeDevice) SetIcon(img image.Image) {}

func (d *fakeDevice) VideoModes() []device.VideoMode { return nil }
func (d *fakeDevice) DesktopMode() device.VideoMode  { return device.VideoMode{} }

func (d *fakeDevice) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }

func (d *fakeDevice) Run() bool {
	if d.runFrames <= 0 {
		return false
	}
	d.runFrames--
	return true
}

func (d *fakeDevice) Close() error {
	if d.closed {
		return errors.New("already closed")
	}
	d.closed = true
	return nil
}

// fakeClient records the eyes the world was drawn for.
type fakeClient struct {
	eyes []Eye
}

func (c *fakeClient) DrawWorld(drv device.VideoDriver, eye Eye) {
	c.eyes = append(c.eyes, eye)
}

type hudCall struct {
	showMinimap   bool
	drawWieldTool bool
	drawCrosshair bool
}

// fakeHud records overlay draws.
type fakeHud struct {
	calls []hudCall
}

func (h *fakeHud) Draw(drv device.VideoDriver, showMinimap, drawWieldTool, drawCrosshair bool) {
	h.calls = append(h.calls, hudCall{showMinimap, drawWieldTool, drawCrosshair})
}

type fakeGUIText struct {
	removed bool
}

func (t *fakeGUIText) Remove() { t.removed = true }

// fakeGUIEnv records added texts and DrawAll invocations.
type fakeGUIEnv struct {
	texts    []string
	rects    []device.Rect
	handles  []*fakeGUIText
	drawAlls int
}

func (g *fakeGUIEnv) AddStaticText(text string, r device.Rect) GUIText {
	g.texts = append(g.texts, text)
	g.rects = append(g.rects, r)
	handle := &fakeGUIText{}
	g.handles = append(g.handles, handle)
	return handle
}

func (g *fakeGUIEnv) DrawAll() { g.drawAlls++ }

// fakeClouds records animation steps and renders.
type fakeClouds struct {
	steps   []float64
	renders int
}

func (c *fakeClouds) Step(dtime float64) { c.steps = append(c.steps, dtime) }
func (c *fakeClouds) Render()            { c.renders++ }

// fakeFonts measures every string at a fixed size.
type fakeFonts struct {
	width  int
	height int
}

func (f *fakeFonts) TextWidth(text string) int { return f.width }
func (f *fakeFonts) LineHeight() int           { return f.height }

// fakeTexture is a named texture of fixed size.
type fakeTexture struct {
	name string
	w, h int
}

func (t *fakeTexture) Name() string       { return t.name }
func (t *fakeTexture) Size() (int, int)   { return t.w, t.h }

// fakeTextureSource serves textures from a map, erroring on unknown names.
type fakeTextureSource struct {
	textures map[string]device.Texture
}

func (s *fakeTextureSource) Texture(name string) (device.Texture, error) {
	tex, ok := s.textures[name]
	if !ok {
		return nil, errors.Errorf("no texture %q", name)
	}
	return tex, nil
}
