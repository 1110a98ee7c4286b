//go:build !linux && !windows && !darwin

package driver

// platformSupported reports whether the backend kind can be created on this
// host. Platforms without a known windowing stack get the windowless and
// software backends only.
func platformSupported(k Kind) bool {
	switch k {
	case KindNull, KindSoftware, KindBurningsVideo:
		return true
	default:
		return false
	}
}
