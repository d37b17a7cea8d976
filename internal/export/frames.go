// Package export writes rendered trees to disk.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/quadimg/internal/quadtree"
	"github.com/ivlev/quadimg/internal/system"
)

// WritePNG encodes img to path, creating parent directories as needed.
func WritePNG(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// FrameSequence renders one frame per refinement depth, from the bare
// root fill at depth 0 up to the deepest leaf, and writes them as
// numbered PNGs into dir. Rendering is a pure read of the tree, so
// frames are produced concurrently on up to workers goroutines.
func FrameSequence(tree *quadtree.QuadTree, dir string, drawBoundaries bool, workers int) error {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	pool := system.NewFramePool(tree.Root.Rect)

	var g errgroup.Group
	g.SetLimit(workers)

	for depth := 0; depth <= tree.MaxDepthReached; depth++ {
		g.Go(func() error {
			frame := pool.Get()
			defer pool.Put(frame)

			tree.RenderInto(frame, depth, drawBoundaries)
			return WritePNG(frame, FramePath(dir, depth))
		})
	}

	return g.Wait()
}

// FramePath names the frame rendered at the given depth cutoff.
func FramePath(dir string, depth int) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%03d.png", depth))
}
