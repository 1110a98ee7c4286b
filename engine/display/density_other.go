//go:build !linux

package display

// platformDisplayMetrics reports that no direct display-metrics API exists on
// this platform; density falls back to the configured screen_dpi value.
var platformDisplayMetrics = func() (widthPx, heightPx, widthMM, heightMM int, ok bool) {
	return 0, 0, 0, 0, false
}
