package texture

import (
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/pkg/errors"

	"github.com/cswager/voxen/engine/device"

	_ "golang.org/x/image/bmp"
)

// texture is the implementation of a cached, decoded texture. The pixel data
// is converted to RGBA at load time so callers always see a uniform layout.
type texture struct {
	name   string
	width  int
	height int
	pix    []byte
}

var _ device.Texture = &texture{}

func (t *texture) Name() string {
	return t.name
}

func (t *texture) Size() (int, int) {
	return t.width, t.height
}

// Pixels returns the raw RGBA pixel data, 4 bytes per pixel in row-major order.
func (t *texture) Pixels() []byte {
	return t.pix
}

// source is the implementation of the Source interface.
type source struct {
	mu sync.RWMutex

	dir   string
	cache map[string]device.Texture

	// loadPool manages a bounded set of reusable goroutines for parallel
	// texture preloading. Workers persist across Preload calls.
	loadPool    worker.DynamicWorkerPool
	loadWorkers int
}

// Source defines the public-facing interface for loading and caching textures
// from a directory on disk. Texture lookups are keyed by file name relative to
// the source directory and each file is decoded at most once.
type Source interface {
	// Texture returns the decoded texture for the given file name, loading and
	// caching it on first use.
	//
	// Parameters:
	//   - name: the texture file name, relative to the source directory
	//
	// Returns:
	//   - device.Texture: the cached or freshly decoded texture
	//   - error: error if the file cannot be read or decoded
	Texture(name string) (device.Texture, error)

	// Preload decodes the named textures in parallel and populates the cache.
	// Names already cached are skipped. If any texture fails to load the first
	// error is returned, but the remaining textures are still attempted.
	//
	// Parameters:
	//   - names: the texture file names to decode
	//
	// Returns:
	//   - error: the first load error encountered, or nil
	Preload(names []string) error

	// Has reports whether the named texture is already cached.
	//
	// Parameters:
	//   - name: the texture file name
	//
	// Returns:
	//   - bool: true if the texture is cached
	Has(name string) bool

	// Clear discards all cached textures.
	Clear()

	// Dir returns the directory textures are loaded from.
	//
	// Returns:
	//   - string: the source directory path
	Dir() string
}

// Ensure source implements Source interface.
var _ Source = &source{}

// NewSource creates a texture Source rooted at the given directory.
//
// Parameters:
//   - dir: the directory texture files are loaded from
//   - options: functional options to further configure the source
//
// Returns:
//   - Source: the newly created texture source
func NewSource(dir string, options ...SourceOption) Source {
	s := &source{
		dir:         dir,
		cache:       make(map[string]device.Texture),
		loadWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, opt := range options {
		opt(s)
	}

	// Initialize the load pool after options so WithLoadWorkers can override the default.
	s.loadPool = worker.NewDynamicWorkerPool(s.loadWorkers, 256, 1*time.Second)

	return s
}

func (s *source) Texture(name string) (device.Texture, error) {
	s.mu.RLock()
	tex, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		return tex, nil
	}

	loaded, err := loadTexture(s.dir, name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another goroutine may have loaded the same name concurrently; keep the
	// first cached entry so callers always see one instance per name.
	if existing, ok := s.cache[name]; ok {
		return existing, nil
	}
	s.cache[name] = loaded
	return loaded, nil
}

func (s *source) Preload(names []string) error {
	var wg sync.WaitGroup
	var errMu sync.Mutex
	var firstErr error

	taskID := 0
	for _, name := range names {
		if s.Has(name) {
			continue
		}
		n := name // capture for closure
		id := taskID
		taskID++
		wg.Add(1)
		s.loadPool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()

				if _, err := s.Texture(n); err != nil {
					errMu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					errMu.Unlock()
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return firstErr
}

func (s *source) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.cache[name]
	return ok
}

func (s *source) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]device.Texture)
}

func (s *source) Dir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// loadTexture opens and decodes one texture file, converting it to RGBA.
func loadTexture(dir, name string) (device.Texture, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open texture file %q", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode texture file %q", path)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	return &texture{
		name:   name,
		width:  bounds.Dx(),
		height: bounds.Dy(),
		pix:    rgba.Pix,
	}, nil
}
