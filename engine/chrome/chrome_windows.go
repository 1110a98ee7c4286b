//go:build windows

package chrome

import (
	"image"

	"github.com/AllenDang/w32"
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/cswager/voxen/engine/device"
)

// wmSetIcon is the WM_SETICON window message; wParam selects the icon slot.
const (
	wmSetIcon = 0x0080
	iconSmall = 0
	iconBig   = 1
)

// iconResourceID is the icon entry in the executable's resource section,
// embedded at build time via the resource compiler.
const iconResourceID = 130

// nativeWindow extracts the Win32 window handle from the device's surface
// descriptor. Windowless devices carry no handle.
func nativeWindow(desc *wgpu.SurfaceDescriptor) (w32.HWND, bool) {
	if desc == nil || desc.WindowsHWND == nil || desc.WindowsHWND.Hwnd == nil {
		return 0, false
	}
	return w32.HWND(uintptr(desc.WindowsHWND.Hwnd)), true
}

// platformSetIcon attaches the executable's embedded icon resource to the
// native window via WM_SETICON. When the executable carries no icon resource
// the decoded image is handed to the windowing library instead.
func platformSetIcon(dev device.Device, img image.Image) bool {
	hwnd, ok := nativeWindow(dev.SurfaceDescriptor())
	if !ok {
		return false
	}

	hicon := w32.LoadIcon(w32.GetModuleHandle(""), w32.MakeIntResource(iconResourceID))
	if hicon == 0 {
		dev.SetIcon(img)
		return true
	}

	w32.SendMessage(hwnd, wmSetIcon, iconBig, uintptr(hicon))
	w32.SendMessage(hwnd, wmSetIcon, iconSmall, uintptr(hicon))
	return true
}

// platformSetClassHint is a no-op: window classes are fixed at window
// creation on Windows.
func platformSetClassHint(dev device.Device, name string) {}
