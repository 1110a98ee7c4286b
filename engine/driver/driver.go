// Package driver enumerates the graphics backends the host platform can
// provide and resolves the user-requested backend name against them. It holds
// no device state: negotiation picks a Kind, and the device package owns
// everything from creation onwards. A chosen backend is fixed for the
// lifetime of the device; switching requires full device re-creation.
package driver

import "strings"

// Kind identifies one graphics backend in the fixed, closed enumeration of
// possible backends. The ordinal order is significant: driver lookups scan in
// this order with first-match semantics.
type Kind int

const (
	// KindNull is the windowless backend used only for capability queries.
	KindNull Kind = iota

	// KindSoftware is the plain software rasterizer.
	KindSoftware

	// KindBurningsVideo is the second, higher-quality software rasterizer.
	KindBurningsVideo

	// KindDirect3D8 is the legacy Direct3D 8 backend.
	KindDirect3D8

	// KindDirect3D9 is the legacy Direct3D 9 backend.
	KindDirect3D9

	// KindOpenGL is the hardware-accelerated desktop OpenGL backend. It is
	// the fallback when a requested driver name matches nothing.
	KindOpenGL

	// KindOGLES1 is the OpenGL ES 1.x backend for embedded/mobile GL.
	KindOGLES1

	// KindOGLES2 is the OpenGL ES 2.x backend for embedded/mobile GL.
	KindOGLES2

	kindCount
)

// DefaultKind is the backend used when driver-name negotiation fails.
const DefaultKind = KindOpenGL

// Descriptor identifies one supported graphics backend. Descriptors are
// immutable values defined once per process in a static table.
type Descriptor struct {
	// Kind is the backend's position in the fixed enumeration.
	Kind Kind

	// InternalName is the stable lowercase identifier matched against the
	// video_driver settings value.
	InternalName string

	// FriendlyName is the human-readable backend name.
	FriendlyName string
}

// descriptors is the static per-process table, indexed by Kind.
var descriptors = [kindCount]Descriptor{
	{KindNull, "null", "NULL Driver"},
	{KindSoftware, "software", "Software Renderer"},
	{KindBurningsVideo, "burningsvideo", "Burning's Video"},
	{KindDirect3D8, "direct3d8", "Direct3D 8"},
	{KindDirect3D9, "direct3d9", "Direct3D 9"},
	{KindOpenGL, "opengl", "OpenGL"},
	{KindOGLES1, "ogles1", "OpenGL ES1"},
	{KindOGLES2, "ogles2", "OpenGL ES2"},
}

// Descriptor returns the static descriptor for the kind.
//
// Returns:
//   - Descriptor: the backend's descriptor
func (k Kind) Descriptor() Descriptor {
	return descriptors[k]
}

// InternalName returns the stable lowercase identifier for the kind.
//
// Returns:
//   - string: the internal name (e.g. "opengl")
func (k Kind) InternalName() string {
	return descriptors[k].InternalName
}

// FriendlyName returns the human-readable name for the kind.
//
// Returns:
//   - string: the friendly name (e.g. "OpenGL")
func (k Kind) FriendlyName() string {
	return descriptors[k].FriendlyName
}

// SupportedDrivers queries the host platform for every backend kind and
// returns the descriptors of those available, preserving the fixed
// enumeration order. The platform is queried live on every call; nothing is
// cached. The result never contains duplicates.
//
// Returns:
//   - []Descriptor: the ordered set of backends available on this host
func SupportedDrivers() []Descriptor {
	out := make([]Descriptor, 0, int(kindCount))
	for k := Kind(0); k < kindCount; k++ {
		if platformSupported(k) {
			out = append(out, descriptors[k])
		}
	}
	return out
}

// Select resolves a requested driver name against the available set by
// case-insensitive exact match on InternalName, scanning in order and
// returning the first match. When nothing matches it returns the default
// (OpenGL) descriptor and false; the caller is expected to log a warning and
// continue rather than fail. Select is a pure function.
//
// Parameters:
//   - requested: the driver name from configuration
//   - available: the ordered descriptor set to scan
//
// Returns:
//   - Descriptor: the matched descriptor, or the default on no match
//   - bool: true if the requested name matched an available backend
func Select(requested string, available []Descriptor) (Descriptor, bool) {
	for _, d := range available {
		if strings.EqualFold(requested, d.InternalName) {
			return d, true
		}
	}
	return descriptors[DefaultKind], false
}
