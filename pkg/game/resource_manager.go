package game

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"os"
	"strings"

	"github.com/decker502/firedodge/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

// ResourceManager is responsible for centralized management of game images.
// Images are loaded once and reused by every session.
//
// The ResourceManager implements the following key features:
// - Image loading and caching (PNG format support)
// - Reading from the embedded file system when it is initialized, otherwise from disk
// - Remembering failed loads so a missing sprite is never retried
//
// Thread Safety Note:
// This implementation is NOT thread-safe. For the single-threaded game loop,
// no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager()
//	img, err := rm.LoadImage("assets/images/player.png")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	imageCache  map[string]*ebiten.Image // Cache for loaded images: path -> Image
	failedLoads map[string]error         // Paths that failed to load: path -> first error
}

// NewResourceManager creates and initializes a new ResourceManager instance.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:  make(map[string]*ebiten.Image),
		failedLoads: make(map[string]error),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// If a previous attempt failed, the same error is returned without touching the file system.
//
// Parameters:
//   - path: The file path to the image resource (e.g., "assets/images/player.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}
	if err, failed := rm.failedLoads[path]; failed {
		return nil, err
	}

	img, err := rm.decodeImage(path)
	if err != nil {
		rm.failedLoads[path] = err
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// Returns nil if the image has not been loaded.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// HasFailed reports whether loading the path has already failed.
func (rm *ResourceManager) HasFailed(path string) bool {
	_, failed := rm.failedLoads[path]
	return failed
}

// Preload loads every path and returns the first error.
// All paths are attempted even when one fails.
func (rm *ResourceManager) Preload(paths ...string) error {
	var firstErr error
	for _, path := range paths {
		if _, err := rm.LoadImage(path); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (rm *ResourceManager) decodeImage(path string) (image.Image, error) {
	file, err := openResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// openResource opens assets/ paths from the embedded file system when available.
func openResource(path string) (io.ReadCloser, error) {
	if strings.HasPrefix(strings.TrimPrefix(path, "./"), "assets/") && embedded.IsInitialized() {
		return embedded.Open(path)
	}
	return os.Open(path)
}
