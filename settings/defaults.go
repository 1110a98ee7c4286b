package settings

// clientDefaults holds the built-in defaults for every video/display key the
// client reads. Keys absent from the on-disk file resolve to these values.
var clientDefaults = map[string]string{
	"video_driver":       "opengl",
	"screen_w":           "1024",
	"screen_h":           "600",
	"fullscreen":         "false",
	"fullscreen_bpp":     "24",
	"vsync":              "false",
	"fsaa":               "0",
	"3d_mode":            "plain",
	"screen_dpi":         "72",
	"high_precision_fpu": "true",
	"menu_clouds":        "true",
}
