package rendering

import "github.com/cswager/voxen/engine/device"

// EngineOption is a functional option for configuring an Engine via NewEngine.
// Use the With* functions to create options that are applied directly to the
// engine instance.
type EngineOption func(*engine)

// WithTitle is an option builder that sets the window title.
//
// Parameters:
//   - title: the window title
//
// Returns:
//   - EngineOption: option function to apply
func WithTitle(title string) EngineOption {
	return func(e *engine) {
		e.title = title
	}
}

// WithCloudScene is an option builder that sets the animated cloud background
// used by the loading and menu screens. Without one, those screens clear to
// black.
//
// Parameters:
//   - clouds: the cloud scene collaborator
//
// Returns:
//   - EngineOption: option function to apply
func WithCloudScene(clouds CloudScene) EngineOption {
	return func(e *engine) {
		e.clouds = clouds
	}
}

// WithFontEngine is an option builder that sets the text measurer used for
// load screen layout. Without one, the load screen text rectangle collapses
// to a point at the screen center.
//
// Parameters:
//   - fonts: the font engine collaborator
//
// Returns:
//   - EngineOption: option function to apply
func WithFontEngine(fonts FontEngine) EngineOption {
	return func(e *engine) {
		e.fonts = fonts
	}
}

// WithProfiling enables or disables frame statistics output.
//
// Parameters:
//   - enabled: if true, enables profiling
//
// Returns:
//   - EngineOption: option function to apply
func WithProfiling(enabled bool) EngineOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithDeviceFactory is an option builder that replaces the device constructor
// used by NewEngine.
//
// Parameters:
//   - factory: the function creating the device from negotiated parameters
//
// Returns:
//   - EngineOption: option function to apply
func WithDeviceFactory(factory func(device.CreationParams) (device.Device, error)) EngineOption {
	return func(e *engine) {
		if factory != nil {
			e.deviceFactory = factory
		}
	}
}
