package rendering

import "github.com/cswager/voxen/engine/device"

// anaglyphCore renders red/cyan stereo by drawing each eye through a color
// mask into the same frame.
type anaglyphCore struct {
	coreContext
}

var _ renderCore = &anaglyphCore{}

func (c *anaglyphCore) Initialize() {}

func (c *anaglyphCore) Draw(sky device.Color, showHUD, showMinimap, drawWieldTool, drawCrosshair bool) {
	c.drv.BeginScene(sky)

	// Left eye writes only the red channel, right eye only green and blue.
	c.drv.SetColorMask(true, false, false, true)
	c.drawWorld(EyeLeft)
	c.drv.SetColorMask(false, true, true, true)
	c.drawWorld(EyeRight)
	c.drv.SetColorMask(true, true, true, true)

	c.drawHUD(showHUD, showMinimap, drawWieldTool, drawCrosshair)
	c.drv.EndScene()
}

func (c *anaglyphCore) VirtualSize() (int, int) {
	return c.drv.ScreenSize()
}

// pageflipCore renders quad-buffered stereo, one eye per stereo back buffer.
// It requires a device created with a stereo buffer.
type pageflipCore struct {
	coreContext
}

var _ renderCore = &pageflipCore{}

func (c *pageflipCore) Initialize() {}

func (c *pageflipCore) Draw(sky device.Color, showHUD, showMinimap, drawWieldTool, drawCrosshair bool) {
	c.drv.BeginScene(sky)

	// The HUD is drawn once per buffer so it appears in both eyes.
	c.drv.SetDrawBuffer(device.BufferLeft)
	c.drawWorld(EyeLeft)
	c.drawHUD(showHUD, showMinimap, drawWieldTool, drawCrosshair)

	c.drv.SetDrawBuffer(device.BufferRight)
	c.drawWorld(EyeRight)
	c.drawHUD(showHUD, showMinimap, drawWieldTool, drawCrosshair)

	c.drv.SetDrawBuffer(device.BufferBoth)
	c.drv.EndScene()
}

func (c *pageflipCore) VirtualSize() (int, int) {
	return c.drv.ScreenSize()
}

// sideBySideCore renders both eyes into one frame, each in half the screen.
// UI layout sees half the physical width through VirtualSize.
type sideBySideCore struct {
	coreContext
}

var _ renderCore = &sideBySideCore{}

func (c *sideBySideCore) Initialize() {}

func (c *sideBySideCore) Draw(sky device.Color, showHUD, showMinimap, drawWieldTool, drawCrosshair bool) {
	w, h := c.drv.ScreenSize()
	c.drv.BeginScene(sky)

	c.drv.SetViewport(device.Rect{X: 0, Y: 0, W: w / 2, H: h})
	c.drawWorld(EyeLeft)
	c.drawHUD(showHUD, showMinimap, drawWieldTool, drawCrosshair)

	c.drv.SetViewport(device.Rect{X: w / 2, Y: 0, W: w / 2, H: h})
	c.drawWorld(EyeRight)
	c.drawHUD(showHUD, showMinimap, drawWieldTool, drawCrosshair)

	// An empty rect restores the full-screen viewport.
	c.drv.SetViewport(device.Rect{})
	c.drv.EndScene()
}

func (c *sideBySideCore) VirtualSize() (int, int) {
	w, h := c.drv.ScreenSize()
	return w / 2, h
}
