package rendering

import (
	"time"

	"github.com/cswager/voxen/common"
	"github.com/cswager/voxen/engine/device"
	"github.com/cswager/voxen/engine/driver"
	"github.com/cswager/voxen/engine/profiler"
	"github.com/cswager/voxen/settings"
)

// engine implements the Engine interface.
// It owns the process's single graphics device and the active rendering core.
type engine struct {
	conf *settings.Store

	dev device.Device
	drv device.VideoDriver

	core renderCore

	clouds CloudScene
	fonts  FontEngine

	profiler         *profiler.Profiler
	profilingEnabled bool

	title         string
	deviceFactory func(device.CreationParams) (device.Device, error)
}

// Engine is the integration layer between the game client and the windowing
// and drawing stack. It negotiates the video driver from configuration,
// creates the device, and drives frames through a draw-mode core.
type Engine interface {
	// Device returns the underlying graphics device.
	//
	// Returns:
	//   - device.Device: the device instance
	Device() device.Device

	// Driver returns the device's video driver.
	//
	// Returns:
	//   - device.VideoDriver: the active video driver
	Driver() device.VideoDriver

	// WindowSize returns the logical screen size UI layout should use: the
	// active core's virtual size, or the driver screen size before a core is
	// initialized.
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

	// Initialize selects the rendering core from the 3d_mode settings key and
	// prepares it for drawing. Unknown mode names fall back to plain.
	//
	// Parameters:
	//   - client: the world-drawing collaborator
	//   - hud: the overlay-drawing collaborator
	Initialize(client Client, hud Hud)

	// Finalize tears down the active rendering core.
	Finalize()

	// DrawScene renders one frame through the active core. Initialize must
	// have been called first.
	//
	// Parameters:
	//   - sky: the frame clear color
	//   - showHUD: whether the overlay is drawn
	//   - showMinimap: whether the minimap is drawn
	//   - drawWieldTool: whether the wielded item is drawn
	//   - drawCrosshair: whether the crosshair is drawn
	DrawScene(sky device.Color, showHUD, showMinimap, drawWieldTool, drawCrosshair bool)

	// DrawLoadScreen draws a screen with a single centered text on it. The
	// text is removed when the screen is drawn the next time. A progress bar
	// is drawn when percent is between 0 and 100.
	//
	// Parameters:
	//   - text: the text to display
	//   - guienv: the GUI environment the text is placed in
	//   - tsrc: the source for the progress bar textures
	//   - dtime: the time step for the cloud background in seconds
	//   - percent: the progress bar position, or a value outside [0,100] to hide it
	//   - clouds: whether the animated cloud background may be drawn
	DrawLoadScreen(text string, guienv GUIEnv, tsrc TextureSource, dtime float64, percent int, clouds bool)

	// DrawMenuScene draws the menu background and all GUI widgets.
	//
	// Parameters:
	//   - guienv: the GUI environment to draw
	//   - dtime: the time step for the cloud background in seconds
	//   - clouds: whether the animated cloud background may be drawn
	DrawMenuScene(guienv GUIEnv, dtime float64, clouds bool)

	// Run drives the frame loop on the calling thread until the window is
	// asked to close or the frame callback returns false.
	//
	// Parameters:
	//   - frame: called once per frame with the delta time in seconds; return
	//     false to stop the loop
	Run(frame func(dtime float64) bool)

	// EnableProfiler enables frame statistics output to the log.
	EnableProfiler()

	// DisableProfiler disables frame statistics output.
	DisableProfiler()

	// Close destroys the device and releases the windowing stack.
	//
	// Returns:
	//   - error: error if the device was already closed
	Close() error
}

// Ensure engine implements Engine interface.
var _ Engine = &engine{}

// NewEngine negotiates the video driver and creates the graphics device from
// the settings store. The requested video_driver name is matched
// case-insensitively against the drivers supported on this host; a name
// matching nothing logs a warning and falls back to the default. Device
// creation failure is returned to the caller, which typically treats it as
// fatal.
//
// Parameters:
//   - conf: the settings store read for driver, resolution, and frame options
//   - options: functional options to further configure the engine
//
// Returns:
//   - Engine: the newly created engine
//   - error: error if the device cannot be created
func NewEngine(conf *settings.Store, options ...EngineOption) (Engine, error) {
	e := &engine{
		conf:          conf,
		profiler:      profiler.NewProfiler(),
		title:         "Voxen",
		deviceFactory: device.CreateDevice,
	}

	for _, opt := range options {
		opt(e)
	}

	// Stereo back buffers are only needed for quad-buffered page flipping.
	stereoBuffer := conf.Get("3d_mode") == "pageflip"

	requested := conf.Get("video_driver")
	desc, matched := driver.Select(requested, driver.SupportedDrivers())
	if !matched {
		common.Logger().Warn("invalid video_driver specified, defaulting to opengl",
			"requested", requested)
	}

	params := device.CreationParams{
		DriverKind:       desc.Kind,
		Title:            e.title,
		Width:            int(conf.GetUint16("screen_w")),
		Height:           int(conf.GetUint16("screen_h")),
		Bits:             conf.GetUint16("fullscreen_bpp"),
		ZBufferBits:      24,
		AntiAlias:        conf.GetUint16("fsaa"),
		Fullscreen:       conf.GetBool("fullscreen"),
		Stencilbuffer:    false,
		Stereobuffer:     stereoBuffer,
		Vsync:            conf.GetBool("vsync"),
		HighPrecisionFPU: conf.GetBool("high_precision_fpu"),
	}

	dev, err := e.deviceFactory(params)
	if err != nil {
		return nil, err
	}
	e.dev = dev
	e.drv = dev.VideoDriver()

	return e, nil
}

func (e *engine) Device() device.Device {
	return e.dev
}

func (e *engine) Driver() device.VideoDriver {
	return e.drv
}

func (e *engine) WindowSize() (int, int) {
	if e.core != nil {
		return e.core.VirtualSize()
	}
	return e.drv.ScreenSize()
}

func (e *engine) SetResizable(resizable bool) {
	e.dev.SetResizable(resizable)
}

func (e *engine) Initialize(client Client, hud Hud) {
	e.core = createCore(e.conf.Get("3d_mode"), e.drv, client, hud)
	e.core.Initialize()
}

func (e *engine) Finalize() {
	e.core = nil
}

func (e *engine) DrawScene(sky device.Color, showHUD, showMinimap, drawWieldTool, drawCrosshair bool) {
	e.core.Draw(sky, showHUD, showMinimap, drawWieldTool, drawCrosshair)
}

func (e *engine) Run(frame func(dtime float64) bool) {
	last := time.Now()

	for e.dev.Run() {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		if frame != nil && !frame(dt) {
			return
		}

		if e.profilingEnabled && e.profiler != nil {
			e.profiler.Tick()
		}
	}
}

// EnableProfiler enables frame statistics output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables frame statistics output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Close() error {
	return e.dev.Close()
}
