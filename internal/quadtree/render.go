package quadtree

import (
	"image"
	"image/color"
	"image/draw"
)

// NoDepthLimit disables the render-time depth cutoff: every leaf renders
// at its natural stopping depth.
const NoDepthLimit = -1

var boundaryColor = color.RGBA{A: 255}

// Render reconstructs the piecewise-constant approximation of the source
// image. A quadrant is filled with its average color when it is a leaf or
// when its depth equals depthLimit; internal quadrants above the cutoff
// recurse instead. With drawBoundaries set, each filled region gets a
// 1-pixel black outline.
//
// Rendering never mutates the tree and may be repeated with different
// arguments, e.g. to animate progressive refinement.
func (t *QuadTree) Render(depthLimit int, drawBoundaries bool) *image.RGBA {
	dst := image.NewRGBA(t.Root.Rect)
	t.RenderInto(dst, depthLimit, drawBoundaries)
	return dst
}

// RenderInto renders into a caller-supplied buffer, which must share the
// root's bounds. Every pixel of the buffer is overwritten, so recycled
// buffers need no clearing.
func (t *QuadTree) RenderInto(dst *image.RGBA, depthLimit int, drawBoundaries bool) {
	t.render(dst, t.Root, depthLimit, drawBoundaries)
}

func (t *QuadTree) render(dst *image.RGBA, q *Quadrant, depthLimit int, drawBoundaries bool) {
	if q.IsLeaf() || q.Depth == depthLimit {
		draw.Draw(dst, q.Rect, image.NewUniform(q.Color), image.Point{}, draw.Src)
		if drawBoundaries {
			outline(dst, q.Rect)
		}
		return
	}
	for _, child := range q.children {
		t.render(dst, child, depthLimit, drawBoundaries)
	}
}

func outline(dst *image.RGBA, r image.Rectangle) {
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.SetRGBA(x, r.Min.Y, boundaryColor)
		dst.SetRGBA(x, r.Max.Y-1, boundaryColor)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.SetRGBA(r.Min.X, y, boundaryColor)
		dst.SetRGBA(r.Max.X-1, y, boundaryColor)
	}
}
