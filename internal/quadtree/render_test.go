package quadtree

import (
	"bytes"
	"image/color"
	"testing"
)

func TestRenderDepthLimitZero(t *testing.T) {
	// Cutting the render off at depth 0 fills the whole image with the
	// root's average color, whatever the tree looks like below.
	img := noisyImage(17, 9)

	tree, err := Build(img, Options{MaxDepth: 4, DetailThreshold: 0})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	out := tree.Render(0, false)
	if out.Bounds() != img.Bounds() {
		t.Fatalf("Expected output bounds %v, got %v", img.Bounds(), out.Bounds())
	}

	want := tree.Root.Color
	for y := 0; y < 9; y++ {
		for x := 0; x < 17; x++ {
			if got := out.RGBAAt(x, y); got != want {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestRenderFullResolution(t *testing.T) {
	// With no depth limit, every leaf paints its own region: a solid
	// image renders back to itself.
	c := color.RGBA{R: 12, G: 34, B: 56, A: 255}
	img := solidImage(6, 6, c)

	tree, err := Build(img, DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	out := tree.Render(NoDepthLimit, false)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if got := out.RGBAAt(x, y); got != c {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, got, c)
			}
		}
	}
}

func TestRenderBoundaries(t *testing.T) {
	img := solidImage(8, 8, color.RGBA{R: 200, G: 200, B: 200, A: 255})

	tree, err := Build(img, DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	out := tree.Render(NoDepthLimit, true)

	black := color.RGBA{A: 255}
	corners := [][2]int{{0, 0}, {7, 0}, {0, 7}, {7, 7}}
	for _, p := range corners {
		if got := out.RGBAAt(p[0], p[1]); got != black {
			t.Errorf("Corner (%d,%d): expected boundary color, got %v", p[0], p[1], got)
		}
	}

	// Interior pixels keep the fill color.
	if got := out.RGBAAt(4, 4); got.R != 200 {
		t.Errorf("Interior pixel should keep the fill color, got %v", got)
	}
}

func TestRenderIsPure(t *testing.T) {
	img := noisyImage(32, 32)

	tree, err := Build(img, Options{MaxDepth: 5, DetailThreshold: 6})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	a := tree.Render(2, true)
	b := tree.Render(NoDepthLimit, false)
	c := tree.Render(2, true)

	if !bytes.Equal(a.Pix, c.Pix) {
		t.Error("Repeated renders with the same arguments differ")
	}
	if bytes.Equal(a.Pix, b.Pix) {
		t.Error("Depth-limited render should differ from the full render for a noisy image")
	}
}

func TestRenderedImageRebuildsNoDeeper(t *testing.T) {
	// Rebuilding from an already-flattened render must not force
	// further splitting: flat regions stay flat.
	img := noisyImage(48, 48)
	opts := Options{MaxDepth: 5, DetailThreshold: 10}

	tree, err := Build(img, opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	flattened := tree.Render(NoDepthLimit, false)
	rebuilt, err := Build(flattened, opts)
	if err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}

	if rebuilt.MaxDepthReached > tree.MaxDepthReached {
		t.Errorf("Rebuilt tree got deeper: %d > %d", rebuilt.MaxDepthReached, tree.MaxDepthReached)
	}
}

func TestRenderInto(t *testing.T) {
	img := noisyImage(20, 20)

	tree, err := Build(img, Options{MaxDepth: 3, DetailThreshold: 4})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	direct := tree.Render(1, false)

	// A dirty recycled buffer must come out identical: every pixel is
	// overwritten.
	dirty := tree.Render(NoDepthLimit, true)
	tree.RenderInto(dirty, 1, false)

	if !bytes.Equal(direct.Pix, dirty.Pix) {
		t.Error("RenderInto over a dirty buffer differs from a fresh render")
	}
}
