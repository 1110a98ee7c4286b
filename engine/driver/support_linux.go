//go:build linux

package driver

// platformSupported reports whether the backend kind can be created on this
// host. The two Direct3D backends are Windows-only and the ES 1.x context is
// not offered by the desktop GL stacks we create windows through.
func platformSupported(k Kind) bool {
	switch k {
	case KindNull, KindSoftware, KindBurningsVideo, KindOpenGL, KindOGLES2:
		return true
	default:
		return false
	}
}
