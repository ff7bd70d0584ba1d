package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/firedodge/pkg/embedded"
)

// encodeTestImage returns a 10x10 blue PNG.
func encodeTestImage(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, blue)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	return buf.Bytes()
}

// createTestImage writes a test PNG image to disk.
func createTestImage(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, encodeTestImage(t), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

// TestLoadImage_FromDisk tests loading and caching an image from the OS file system.
func TestLoadImage_FromDisk(t *testing.T) {
	embedded.Reset()
	path := filepath.Join(t.TempDir(), "images", "player.png")
	createTestImage(t, path)

	rm := NewResourceManager()
	img, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if img == nil {
		t.Fatal("LoadImage returned nil image")
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 10 || h != 10 {
		t.Errorf("Image size = %dx%d, want 10x10", w, h)
	}

	// Second load returns the cached instance
	again, err := rm.LoadImage(path)
	if err != nil || again != img {
		t.Error("Second LoadImage should return the cached image")
	}
	if rm.GetImage(path) != img {
		t.Error("GetImage should return the cached image")
	}
}

// TestLoadImage_FailureIsRemembered tests that a failed load is never retried.
func TestLoadImage_FailureIsRemembered(t *testing.T) {
	embedded.Reset()
	path := filepath.Join(t.TempDir(), "missing.png")

	rm := NewResourceManager()
	if _, err := rm.LoadImage(path); err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !rm.HasFailed(path) {
		t.Error("HasFailed should report the failed path")
	}

	// 文件随后出现也不会重新加载
	createTestImage(t, path)
	if _, err := rm.LoadImage(path); err == nil {
		t.Error("A failed path should keep failing without retrying")
	}
	if rm.GetImage(path) != nil {
		t.Error("GetImage should return nil for a failed path")
	}
}

// TestLoadImage_Corrupted tests decoding errors.
func TestLoadImage_Corrupted(t *testing.T) {
	embedded.Reset()
	path := filepath.Join(t.TempDir(), "corrupted.png")
	if err := os.WriteFile(path, []byte("not a png"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	rm := NewResourceManager()
	if _, err := rm.LoadImage(path); err == nil {
		t.Error("Expected decode error for corrupted file")
	}
}

// TestLoadImage_FromEmbedded tests loading assets/ paths from the embedded file system.
func TestLoadImage_FromEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"assets/images/hazard.png": &fstest.MapFile{Data: encodeTestImage(t)},
	}, fstest.MapFS{})
	defer embedded.Reset()

	rm := NewResourceManager()
	if _, err := rm.LoadImage("assets/images/hazard.png"); err != nil {
		t.Fatalf("LoadImage from embedded FS failed: %v", err)
	}
	if _, err := rm.LoadImage("assets/images/missing.png"); err == nil {
		t.Error("Expected error for missing embedded file")
	}
}

// TestPreload tests that Preload attempts every path and reports the first error.
func TestPreload(t *testing.T) {
	embedded.Reset()
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	bad := filepath.Join(dir, "bad.png")
	createTestImage(t, good)

	rm := NewResourceManager()
	if err := rm.Preload(bad, good); err == nil {
		t.Error("Expected Preload to report the missing file")
	}
	if rm.GetImage(good) == nil {
		t.Error("Preload should still load the remaining paths")
	}
	if !rm.HasFailed(bad) {
		t.Error("Preload should remember the failed path")
	}
}
