package rendering

import (
	"github.com/cswager/voxen/common"
	"github.com/cswager/voxen/engine/device"
)

// renderCore is one draw-mode strategy. A core owns the frame sequence: begin
// the scene with the sky color, draw the world once per eye, overlay the HUD,
// end the scene.
type renderCore interface {
	// Initialize prepares any per-core state before the first frame.
	Initialize()

	// Draw renders one full frame.
	//
	// Parameters:
	//   - sky: the frame clear color
	//   - showHUD: whether the overlay is drawn
	//   - showMinimap: whether the minimap is drawn
	//   - drawWieldTool: whether the wielded item is drawn
	//   - drawCrosshair: whether the crosshair is drawn
	Draw(sky device.Color, showHUD, showMinimap, drawWieldTool, drawCrosshair bool)

	// VirtualSize returns the logical screen size UI layout should use, which
	// differs from the physical size for split-screen stereo modes.
	//
	// Returns:
	//   - int: virtual width in pixels
	//   - int: virtual height in pixels
	VirtualSize() (int, int)
}

// coreContext carries the collaborators every core draws through.
type coreContext struct {
	drv    device.VideoDriver
	client Client
	hud    Hud
}

func (c coreContext) drawWorld(eye Eye) {
	if c.client != nil {
		c.client.DrawWorld(c.drv, eye)
	}
}

func (c coreContext) drawHUD(show, showMinimap, drawWieldTool, drawCrosshair bool) {
	if show && c.hud != nil {
		c.hud.Draw(c.drv, showMinimap, drawWieldTool, drawCrosshair)
	}
}

// createCore builds the rendering core selected by the draw-mode name. An
// empty name means plain; an unknown name logs a warning and falls back to
// plain rather than failing.
func createCore(mode string, drv device.VideoDriver, client Client, hud Hud) renderCore {
	ctx := coreContext{drv: drv, client: client, hud: hud}

	switch mode {
	case "", "plain":
		return &plainCore{ctx}
	case "anaglyph":
		return &anaglyphCore{ctx}
	case "pageflip":
		return &pageflipCore{ctx}
	case "sidebyside":
		return &sideBySideCore{ctx}
	default:
		common.Logger().Warn("unknown 3d_mode, falling back to plain", "mode", mode)
		return &plainCore{ctx}
	}
}
