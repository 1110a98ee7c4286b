package rendering

import "github.com/cswager/voxen/engine/device"

// plainCore is the default mono draw mode.
type plainCore struct {
	coreContext
}

var _ renderCore = &plainCore{}

func (c *plainCore) Initialize() {}

func (c *plainCore) Draw(sky device.Color, showHUD, showMinimap, drawWieldTool, drawCrosshair bool) {
	c.drv.BeginScene(sky)
	c.drawWorld(EyeCenter)
	c.drawHUD(showHUD, showMinimap, drawWieldTool, drawCrosshair)
	c.drv.EndScene()
}

func (c *plainCore) VirtualSize() (int, int) {
	return c.drv.ScreenSize()
}
