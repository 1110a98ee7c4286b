//go:build windows

package driver

// platformSupported reports whether the backend kind can be created on this
// host. The legacy Direct3D 8/9 backends have no implementation in this
// engine build, so even on Windows they probe as unavailable.
func platformSupported(k Kind) bool {
	switch k {
	case KindNull, KindSoftware, KindBurningsVideo, KindOpenGL, KindOGLES2:
		return true
	default:
		return false
	}
}
