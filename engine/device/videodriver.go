package device

// Color is an 8-bit-per-channel ARGB color.
type Color struct {
	A, R, G, B uint8
}

// Rect is an integer pixel rectangle with origin at the top-left.
type Rect struct {
	X, Y, W, H int
}

// VideoMode is one (width, height, color depth) combination the display
// hardware advertises. It is a plain value with no ownership semantics.
type VideoMode struct {
	Width  int
	Height int
	Depth  int
}

// DrawBuffer selects the stereo output buffer for quad-buffered rendering.
type DrawBuffer int

const (
	// BufferBoth targets both stereo buffers (the mono default).
	BufferBoth DrawBuffer = iota

	// BufferLeft targets the left stereo back buffer.
	BufferLeft

	// BufferRight targets the right stereo back buffer.
	BufferRight
)

// Texture is an opaque handle to a named 2D image owned by a texture source.
type Texture interface {
	// Name returns the logical name the texture was requested by.
	//
	// Returns:
	//   - string: the texture's logical name
	Name() string

	// Size returns the texture dimensions in pixels.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	Size() (int, int)
}

// VideoDriver is the drawing boundary a device exposes. All actual pixel and
// GPU work lives behind it; this module only orchestrates calls into it.
// Implementations are not safe for concurrent use: the design assumes a
// single UI thread.
type VideoDriver interface {
	// Name returns the internal name of the backend the driver runs on.
	//
	// Returns:
	//   - string: the backend internal name (e.g. "opengl")
	Name() string

	// ScreenSize returns the current render target size in pixels.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	ScreenSize() (int, int)

	// BeginScene starts a frame, clearing color and depth to the given color.
	//
	// Parameters:
	//   - clear: the clear color for the frame
	BeginScene(clear Color)

	// EndScene finishes the frame and presents it.
	EndScene()

	// Draw2DImageScaled draws the src sub-rectangle of a texture scaled into
	// the dest rectangle, with alpha blending.
	//
	// Parameters:
	//   - tex: the texture to draw
	//   - dest: destination rectangle in screen pixels
	//   - src: source rectangle in texture pixels
	Draw2DImageScaled(tex Texture, dest, src Rect)

	// SetColorMask enables or disables writing of individual color channels,
	// used by the anaglyph stereo core.
	//
	// Parameters:
	//   - r, g, b, a: whether each channel is written
	SetColorMask(r, g, b, a bool)

	// SetDrawBuffer selects the stereo output buffer for subsequent draws,
	// used by the pageflip stereo core. Ignored by non-stereo devices.
	//
	// Parameters:
	//   - buf: the buffer to target
	SetDrawBuffer(buf DrawBuffer)

	// SetViewport restricts subsequent drawing to a screen sub-rectangle,
	// used by the side-by-side stereo core. An empty rect restores the full
	// screen.
	//
	// Parameters:
	//   - r: the viewport rectangle
	SetViewport(r Rect)
}
