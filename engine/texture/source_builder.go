package texture

import "github.com/cswager/voxen/engine/device"

// SourceOption is a functional option for configuring a Source via NewSource.
type SourceOption func(*source)

// WithLoadWorkers is an option builder that sets the number of worker
// goroutines used for parallel preloading. Values below 1 are ignored.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - SourceOption: a function that applies the worker count option to a source
func WithLoadWorkers(n int) SourceOption {
	return func(s *source) {
		if n >= 1 {
			s.loadWorkers = n
		}
	}
}

// WithTexture is an option builder that pre-populates the cache with a texture.
//
// Parameters:
//   - name: the cache key for the texture
//   - tex: the texture to cache
//
// Returns:
//   - SourceOption: a function that applies the texture option to a source
func WithTexture(name string, tex device.Texture) SourceOption {
	return func(s *source) {
		s.cache[name] = tex
	}
}
