package rendering

import "github.com/cswager/voxen/engine/device"

// Eye identifies which stereo eye a world pass is rendered for.
type Eye int

const (
	// EyeCenter is the mono view used by the plain core.
	EyeCenter Eye = iota

	// EyeLeft is the left-eye view of a stereo core.
	EyeLeft

	// EyeRight is the right-eye view of a stereo core.
	EyeRight
)

// Client renders the 3D world. The world camera, map geometry and entity
// drawing all live behind this boundary.
type Client interface {
	// DrawWorld renders the world for the given eye through the driver.
	//
	// Parameters:
	//   - drv: the video driver to draw through
	//   - eye: the eye the pass is rendered for
	DrawWorld(drv device.VideoDriver, eye Eye)
}

// Hud renders the in-game overlay (hotbar, crosshair, minimap, wielded item).
type Hud interface {
	// Draw renders the overlay through the driver.
	//
	// Parameters:
	//   - drv: the video driver to draw through
	//   - showMinimap: whether the minimap is drawn
	//   - drawWieldTool: whether the wielded item is drawn
	//   - drawCrosshair: whether the crosshair is drawn
	Draw(drv device.VideoDriver, showMinimap, drawWieldTool, drawCrosshair bool)
}

// GUIText is a handle to one piece of static text added to a GUI environment.
type GUIText interface {
	// Remove detaches the text from the environment.
	Remove()
}

// GUIEnv is the GUI widget environment used by the loading and menu screens.
type GUIEnv interface {
	// AddStaticText places centered static text inside the given rectangle.
	//
	// Parameters:
	//   - text: the text to display
	//   - r: the screen rectangle the text is placed in
	//
	// Returns:
	//   - GUIText: a handle used to remove the text again
	AddStaticText(text string, r device.Rect) GUIText

	// DrawAll renders every widget in the environment.
	DrawAll()
}

// CloudScene is the animated cloud background drawn behind menus.
type CloudScene interface {
	// Step advances the cloud animation.
	//
	// Parameters:
	//   - dtime: the time step in seconds
	Step(dtime float64)

	// Render draws the clouds into the current frame.
	Render()
}

// FontEngine measures text for layout purposes.
type FontEngine interface {
	// TextWidth returns the rendered width of the text in pixels.
	//
	// Parameters:
	//   - text: the text to measure
	//
	// Returns:
	//   - int: the width in pixels
	TextWidth(text string) int

	// LineHeight returns the height of one text line in pixels.
	//
	// Returns:
	//   - int: the line height in pixels
	LineHeight() int
}

// TextureSource supplies decoded textures by logical name.
type TextureSource interface {
	// Texture returns the texture registered under the given name.
	//
	// Parameters:
	//   - name: the texture's logical name
	//
	// Returns:
	//   - device.Texture: the texture
	//   - error: error if the texture cannot be provided
	Texture(name string) (device.Texture, error)
}
