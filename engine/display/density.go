package display

import (
	"sync"

	"github.com/cswager/voxen/common"
	"github.com/cswager/voxen/settings"
)

// inchesPerMillimeter converts physical display metrics to DPI, using the
// same factor as the display server math.
const inchesPerMillimeter = 0.039370

var (
	densityOnce  sync.Once
	densityValue float64
)

// Density returns the display scale factor relative to a 96 DPI reference.
// On hosts with a reachable display server the physical metrics are read
// directly; otherwise the screen_dpi settings value is used. The computation
// runs at most once per process: all subsequent calls return the first
// computed value even if the display configuration changes (monitor hot-plug
// is out of scope). Safe for concurrent use.
//
// Parameters:
//   - conf: the settings store supplying the manual screen_dpi fallback
//
// Returns:
//   - float64: the density ratio (1.0 at 96 DPI)
func Density(conf *settings.Store) float64 {
	densityOnce.Do(func() {
		densityValue = calcDensity(conf)
	})
	return densityValue
}

// calcDensity performs the one-time density computation.
func calcDensity(conf *settings.Store) float64 {
	if widthPx, heightPx, widthMM, heightMM, ok := platformDisplayMetrics(); ok {
		return computeDensity(widthPx, heightPx, widthMM, heightMM)
	}
	common.Logger().Warn("display metrics unavailable, using configured screen_dpi")
	return conf.GetFloat("screen_dpi") / 96.0
}

// computeDensity derives the density ratio from raw display metrics: DPI is
// computed along both axes, rounded to the nearest integer, and the larger
// axis estimate wins.
func computeDensity(widthPx, heightPx, widthMM, heightMM int) float64 {
	dpiW := common.RoundToInt(float64(widthPx) / (float64(widthMM) * inchesPerMillimeter))
	dpiH := common.RoundToInt(float64(heightPx) / (float64(heightMM) * inchesPerMillimeter))
	dpi := dpiW
	if dpiH > dpi {
		dpi = dpiH
	}
	return float64(dpi) / 96.0
}
