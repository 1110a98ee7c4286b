//go:build linux

package chrome

import (
	"encoding/binary"
	"image"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/cswager/voxen/engine/device"
)

// nativeWindow extracts the X11 window id from the device's surface
// descriptor. Windowless devices and Wayland sessions carry no Xlib window,
// so chrome degrades to a no-op for them.
func nativeWindow(desc *wgpu.SurfaceDescriptor) (xproto.Window, bool) {
	if desc == nil || desc.XlibWindow == nil {
		return 0, false
	}
	return xproto.Window(desc.XlibWindow.Window), true
}

// platformSetIcon publishes the icon as the _NET_WM_ICON property of the
// device's native window. The property payload is the packed ARGB buffer;
// window managers pick the size they want from it.
func platformSetIcon(dev device.Device, img image.Image) bool {
	win, ok := nativeWindow(dev.SurfaceDescriptor())
	if !ok {
		return false
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return false
	}
	defer conn.Close()

	netWMIcon, err := internAtom(conn, "_NET_WM_ICON")
	if err != nil {
		return false
	}
	cardinal, err := internAtom(conn, "CARDINAL")
	if err != nil {
		return false
	}

	words := packARGB(img)
	data := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(data[4*i:], w)
	}

	err = xproto.ChangePropertyChecked(conn, xproto.PropModeReplace, win,
		netWMIcon, cardinal, 32, uint32(len(words)), data).Check()
	return err == nil
}

// platformSetClassHint sets the WM_CLASS property, with name used for both
// the resource name and the resource class.
func platformSetClassHint(dev device.Device, name string) {
	win, ok := nativeWindow(dev.SurfaceDescriptor())
	if !ok {
		return
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return
	}
	defer conn.Close()

	value := append(append([]byte(name), 0), append([]byte(name), 0)...)
	xproto.ChangeProperty(conn, xproto.PropModeReplace, win,
		xproto.AtomWmClass, xproto.AtomString, 8, uint32(len(value)), value)
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	return reply.Atom, nil
}
