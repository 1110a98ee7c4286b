//go:build linux

package display

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// platformDisplayMetrics reads the default screen's pixel and physical sizes
// from the X display server. The connection is opened for this single query
// and closed before returning. It is a package variable so tests can
// substitute fixed metrics.
var platformDisplayMetrics = func() (widthPx, heightPx, widthMM, heightMM int, ok bool) {
	conn, err := xgb.NewConn()
	if err != nil {
		return 0, 0, 0, 0, false
	}
	defer conn.Close()

	screen := xproto.Setup(conn).DefaultScreen(conn)
	if screen.WidthInMillimeters == 0 || screen.HeightInMillimeters == 0 {
		return 0, 0, 0, 0, false
	}
	return int(screen.WidthInPixels), int(screen.HeightInPixels),
		int(screen.WidthInMillimeters), int(screen.HeightInMillimeters), true
}
