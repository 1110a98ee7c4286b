//go:build darwin

package driver

// platformSupported reports whether the backend kind can be created on this
// host. macOS offers desktop GL only; there is no ES context and no Direct3D.
func platformSupported(k Kind) bool {
	switch k {
	case KindNull, KindSoftware, KindBurningsVideo, KindOpenGL:
		return true
	default:
		return false
	}
}
