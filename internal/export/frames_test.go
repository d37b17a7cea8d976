package export

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ivlev/quadimg/internal/quadtree"
)

func buildTestTree(t *testing.T) *quadtree.QuadTree {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8((x * 41) % 256),
				G: uint8((y * 67) % 256),
				B: uint8((x ^ y) * 9 % 256),
				A: 255,
			})
		}
	}

	tree, err := quadtree.Build(img, quadtree.Options{MaxDepth: 3, DetailThreshold: 5})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return tree
}

func TestFrameSequence(t *testing.T) {
	tree := buildTestTree(t)
	dir := t.TempDir()

	if err := FrameSequence(tree, dir, false, 2); err != nil {
		t.Fatalf("FrameSequence failed: %v", err)
	}

	for depth := 0; depth <= tree.MaxDepthReached; depth++ {
		path := FramePath(dir, depth)
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("Missing frame %d: %v", depth, err)
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("Frame %d is not a valid PNG: %v", depth, err)
		}
		if cfg.Width != 32 || cfg.Height != 32 {
			t.Errorf("Frame %d: expected 32x32, got %dx%d", depth, cfg.Width, cfg.Height)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if want := tree.MaxDepthReached + 1; len(entries) != want {
		t.Errorf("Expected %d frames, got %d", want, len(entries))
	}
}

func TestFrameSequenceDefaultWorkers(t *testing.T) {
	tree := buildTestTree(t)
	dir := t.TempDir()

	// Zero workers falls back to the CPU count.
	if err := FrameSequence(tree, dir, true, 0); err != nil {
		t.Fatalf("FrameSequence failed: %v", err)
	}
	if _, err := os.Stat(FramePath(dir, 0)); err != nil {
		t.Errorf("Expected first frame to exist: %v", err)
	}
}

func TestWritePNGCreatesDirectories(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	path := filepath.Join(t.TempDir(), "a", "b", "out.png")

	if err := WritePNG(img, path); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected output file: %v", err)
	}
}
